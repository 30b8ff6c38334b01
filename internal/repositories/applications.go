package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

// CreateAdmitted inserts the application and recounts the job's rows inside
// the same transaction; the (n+1)th concurrent insert is rolled back. The
// unique index on (job_id, freelancer_clerk_id) catches duplicates. Both are
// the source of truth; service-level pre-checks are advisory only.
func (repo *Applications) CreateAdmitted(ctx context.Context, app *entities.Application, maxPerJob int) error {

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&entities.Application{}).
			Where("job_id = ?", app.JobID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > int64(maxPerJob) {
			return domain.ErrCapacityReached
		}
		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (repo *Applications) GetByID(ctx context.Context, ID int) (*entities.Application, error) {

	var app entities.Application
	if err := repo.db.WithContext(ctx).First(&app, "id = ?", ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (repo *Applications) GetByJob(ctx context.Context, jobID int) ([]entities.Application, error) {

	var apps []entities.Application
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&apps, "job_id = ?", jobID).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (repo *Applications) GetByFreelancer(ctx context.Context, clerkID string) ([]entities.Application, error) {

	var apps []entities.Application
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&apps, "freelancer_clerk_id = ?", clerkID).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (repo *Applications) CountByJob(ctx context.Context, jobID int) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Applications) UpdateStatus(ctx context.Context, ID int, status entities.ApplicationStatus) (*entities.Application, error) {

	res := repo.db.WithContext(ctx).Model(&entities.Application{}).Where("id = ?", ID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrApplicationNotFound
	}

	return repo.GetByID(ctx, ID)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
