package repositories

import (
	"context"
	"errors"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"gorm.io/gorm"
)

type Notifications struct {
	db *gorm.DB
}

func NewNotificationsRepository(db *gorm.DB) *Notifications {
	return &Notifications{db: db}
}

func (repo *Notifications) Create(ctx context.Context, userID string, jobID int, message string) (*entities.Notification, error) {

	notification := entities.Notification{
		UserID:  userID,
		JobID:   jobID,
		Message: message,
	}
	if err := repo.db.WithContext(ctx).Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (repo *Notifications) GetByUser(ctx context.Context, userID string) ([]entities.Notification, error) {

	var notifications []entities.Notification
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&notifications, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead is idempotent: marking an already-read notification succeeds and
// changes nothing observable.
func (repo *Notifications) MarkRead(ctx context.Context, ID int) (*entities.Notification, error) {

	var notification entities.Notification
	if err := repo.db.WithContext(ctx).First(&notification, "id = ?", ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}

	if notification.Read {
		return &notification, nil
	}

	if err := repo.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", ID).
		Update("read", true).Error; err != nil {
		return nil, err
	}

	notification.Read = true
	return &notification, nil
}

func (repo *Notifications) MarkAllReadByUser(ctx context.Context, userID string) (int64, error) {

	res := repo.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}
