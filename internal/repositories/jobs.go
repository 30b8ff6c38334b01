package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *entities.ServiceRequest) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, ID int) (*entities.ServiceRequest, error) {

	var job entities.ServiceRequest
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) Get(ctx context.Context, limit int, offset int) ([]entities.ServiceRequest, error) {

	var jobs []entities.ServiceRequest
	if err := repo.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetByOwner(ctx context.Context, clerkID string) ([]entities.ServiceRequest, error) {

	var jobs []entities.ServiceRequest
	if err := repo.db.WithContext(ctx).Find(&jobs, "clerk_id = ?", clerkID).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&entities.ServiceRequest{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", entities.JobOpen, now).
		Update("status", entities.JobClosed)
	return res.RowsAffected, res.Error
}
