package repositories

import (
	"context"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type skillProfileRepository interface {
	GetWithSkills(ctx context.Context) ([]entities.User, error)
}

const skillProfilesKey = "skill_profiles"

// CachedUsers keeps the full-table skill-profile scan off the hot path of
// every job posting. Stale entries only delay when a new profile starts
// matching, which is acceptable.
type CachedUsers struct {
	repo  skillProfileRepository
	cache *gocache.Cache
}

func NewCachedUsers(repo skillProfileRepository) *CachedUsers {
	return &CachedUsers{repo: repo, cache: gocache.New(1*time.Minute, 5*time.Minute)}
}

func (c *CachedUsers) GetWithSkills(ctx context.Context) ([]entities.User, error) {
	if value, found := c.cache.Get(skillProfilesKey); found {
		return value.([]entities.User), nil
	}

	users, err := c.repo.GetWithSkills(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Set(skillProfilesKey, users, gocache.DefaultExpiration)
	return users, nil
}
