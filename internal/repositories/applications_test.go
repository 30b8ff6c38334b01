package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDb(t *testing.T) *DbContext {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	dbContext, err := NewDbContext(path + "?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	require.NoError(t, err)
	require.NoError(t, dbContext.Migrate())

	t.Cleanup(func() { _ = dbContext.Close() })
	return dbContext
}

func newApplication(jobID int, clerkID string) *entities.Application {
	return &entities.Application{
		JobID:             jobID,
		FreelancerClerkID: clerkID,
		FreelancerName:    "Freelancer",
		Status:            entities.ApplicationPending,
	}
}

func Test_CreateAdmitted_EnforcesCapacity(t *testing.T) {

	repo := NewApplicationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	for i := 0; i < entities.MaxApplicationsPerJob; i++ {
		err := repo.CreateAdmitted(ctx, newApplication(1, fmt.Sprintf("user_%d", i)), entities.MaxApplicationsPerJob)
		assert.NoError(t, err)
	}

	err := repo.CreateAdmitted(ctx, newApplication(1, "user_late"), entities.MaxApplicationsPerJob)
	assert.ErrorIs(t, err, domain.ErrCapacityReached)

	count, err := repo.CountByJob(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(entities.MaxApplicationsPerJob), count)
}

func Test_CreateAdmitted_UnderConcurrentSubmissions_NeverExceedsCapacity(t *testing.T) {

	repo := NewApplicationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	const attempts = 12

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// errors are expected for the losers; only the row count matters
			_ = repo.CreateAdmitted(ctx, newApplication(1, fmt.Sprintf("user_%d", i)), entities.MaxApplicationsPerJob)
		}(i)
	}
	wg.Wait()

	count, err := repo.CountByJob(ctx, 1)
	assert.NoError(t, err)
	assert.LessOrEqual(t, count, int64(entities.MaxApplicationsPerJob))
}

func Test_CreateAdmitted_DuplicateApplicant_ReturnsDuplicateAndCreatesNoRow(t *testing.T) {

	repo := NewApplicationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	require.NoError(t, repo.CreateAdmitted(ctx, newApplication(1, "user_b"), entities.MaxApplicationsPerJob))

	err := repo.CreateAdmitted(ctx, newApplication(1, "user_b"), entities.MaxApplicationsPerJob)
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)

	count, err := repo.CountByJob(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func Test_CreateAdmitted_SameApplicantDifferentJobs_IsAllowed(t *testing.T) {

	repo := NewApplicationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	assert.NoError(t, repo.CreateAdmitted(ctx, newApplication(1, "user_b"), entities.MaxApplicationsPerJob))
	assert.NoError(t, repo.CreateAdmitted(ctx, newApplication(2, "user_b"), entities.MaxApplicationsPerJob))
}

func Test_UpdateStatus_WhenApplicationMissing_ReturnsNotFound(t *testing.T) {

	repo := NewApplicationsRepository(newTestDb(t).DB)

	_, err := repo.UpdateStatus(context.Background(), 999, entities.ApplicationAccepted)
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func Test_UpdateStatus_PersistsNewStatus(t *testing.T) {

	repo := NewApplicationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	app := newApplication(1, "user_b")
	require.NoError(t, repo.CreateAdmitted(ctx, app, entities.MaxApplicationsPerJob))

	updated, err := repo.UpdateStatus(ctx, app.ID, entities.ApplicationAccepted)
	assert.NoError(t, err)
	assert.Equal(t, entities.ApplicationAccepted, updated.Status)
}
