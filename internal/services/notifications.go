package services

import (
	"context"

	"github.com/FlatBushZombies/quickhands/internal/entities"
)

type notificationRepository interface {
	Create(ctx context.Context, userID string, jobID int, message string) (*entities.Notification, error)
	GetByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, ID int) (*entities.Notification, error)
	MarkAllReadByUser(ctx context.Context, userID string) (int64, error)
}

type NotificationService struct {
	notifications notificationRepository
}

func NewNotificationService(notifications notificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	return s.notifications.GetByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, ID int) (*entities.Notification, error) {
	return s.notifications.MarkRead(ctx, ID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.notifications.MarkAllReadByUser(ctx, userID)
}
