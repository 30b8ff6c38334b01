package repositories

import (
	"context"
	"errors"

	"github.com/FlatBushZombies/quickhands/internal/entities"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) GetByClerkID(ctx context.Context, clerkID string) (*entities.User, error) {

	var user entities.User
	err := repo.db.WithContext(ctx).First(&user, "clerk_id = ?", clerkID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetWithSkills returns every user whose skill profile is filled in; these are
// the only candidates the matcher considers.
func (repo *Users) GetWithSkills(ctx context.Context) ([]entities.User, error) {

	var users []entities.User
	if err := repo.db.WithContext(ctx).
		Find(&users, "skills IS NOT NULL AND skills != ''").Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *Users) Upsert(ctx context.Context, user *entities.User) error {

	existing, err := repo.GetByClerkID(ctx, user.ClerkID)
	if err != nil {
		return err
	}
	if existing == nil {
		return repo.db.WithContext(ctx).Create(user).Error
	}

	user.ID = existing.ID
	return repo.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", existing.ID).
		Updates(map[string]any{
			"name":             user.Name,
			"email":            user.Email,
			"skills":           user.Skills,
			"telegram_chat_id": user.TelegramChatID,
		}).Error
}
