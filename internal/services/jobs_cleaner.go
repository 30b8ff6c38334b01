package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type jobCleanupRepository interface {
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

// JobsCleaner closes service requests whose end date has passed, so they stop
// collecting applications and stop matching.
type JobsCleaner struct {
	jobs jobCleanupRepository
	cron *cron.Cron
}

func NewJobsCleaner(jobs jobCleanupRepository) (*JobsCleaner, error) {

	if jobs == nil {
		return nil, errors.New("jobs repository is required")
	}

	jc := &JobsCleaner{
		jobs: jobs,
		cron: cron.New(),
	}

	_, err := jc.cron.AddFunc("0 0 * * *", jc.closeExpiredJobs)
	if err != nil {
		return nil, err
	}

	jc.cron.Start()
	log.Info("jobs cleaner started")
	return jc, nil
}

func (jc *JobsCleaner) Stop() {
	jc.cron.Stop()
}

func (jc *JobsCleaner) closeExpiredJobs() {
	rowsAffected, err := jc.jobs.CloseExpired(context.Background(), time.Now())
	if err != nil {
		log.Errorf("Failed to close expired jobs: %v", err)
	} else {
		log.Infof("Expired jobs closed at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
