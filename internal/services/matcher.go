package services

import (
	"context"
	"strings"

	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/samber/lo"
)

// Matcher computes which users should hear about a new job. Kept behind an
// interface so the substring scan can later be swapped for an indexed search
// without touching the dispatcher.
type Matcher interface {
	MatchUsers(ctx context.Context, job entities.ServiceRequest) ([]entities.User, error)
}

type skillProfiles interface {
	GetWithSkills(ctx context.Context) ([]entities.User, error)
}

// SkillMatcher does a permissive substring match of the job's normalized
// terms against each user's free-text skills. False positives are fine,
// missing a user over minor phrasing differences is not.
type SkillMatcher struct {
	users skillProfiles
}

func NewSkillMatcher(users skillProfiles) *SkillMatcher {
	return &SkillMatcher{users: users}
}

func (m *SkillMatcher) MatchUsers(ctx context.Context, job entities.ServiceRequest) ([]entities.User, error) {

	terms := queryTerms(job)
	if len(terms) == 0 {
		return []entities.User{}, nil
	}

	profiles, err := m.users.GetWithSkills(ctx)
	if err != nil {
		return nil, err
	}

	var matched []entities.User
	seen := make(map[string]struct{})

	for _, profile := range profiles {
		if _, ok := seen[profile.ClerkID]; ok {
			continue
		}

		skills := strings.ToLower(profile.Skills)
		for _, term := range terms {
			if strings.Contains(skills, term) {
				matched = append(matched, profile)
				seen[profile.ClerkID] = struct{}{}
				break
			}
		}
	}

	return matched, nil
}

func queryTerms(job entities.ServiceRequest) []string {

	base := append([]string{job.ServiceType}, job.SelectedServicesAsArray()...)

	normalized := lo.Map(base, func(term string, _ int) string {
		return strings.ToLower(strings.TrimSpace(term))
	})

	return lo.Uniq(lo.Filter(normalized, func(term string, _ int) bool {
		return term != ""
	}))
}
