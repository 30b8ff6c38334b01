package services

import (
	"context"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/pkg/errors"
)

type userRepository interface {
	GetByClerkID(ctx context.Context, clerkID string) (*entities.User, error)
	Upsert(ctx context.Context, user *entities.User) error
}

type UserService struct {
	users userRepository
}

func NewUserService(users userRepository) *UserService {
	return &UserService{users: users}
}

// Upsert creates the profile on first contact and updates it afterwards. The
// skills text is what the matcher scans, so this is how a freelancer starts
// (or stops) hearing about new jobs.
func (s *UserService) Upsert(ctx context.Context, user *entities.User) (*entities.User, error) {

	if user.ClerkID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "user id is required")
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user profile")
	}

	return s.users.GetByClerkID(ctx, user.ClerkID)
}

func (s *UserService) GetByClerkID(ctx context.Context, clerkID string) (*entities.User, error) {

	user, err := s.users.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
