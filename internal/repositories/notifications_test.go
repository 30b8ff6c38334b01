package repositories

import (
	"context"
	"testing"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetByUser_ReturnsMostRecentFirst(t *testing.T) {

	repo := NewNotificationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	first, err := repo.Create(ctx, "user_a", 1, "first")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "user_a", 1, "second")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "user_b", 1, "other user")
	require.NoError(t, err)

	notifications, err := repo.GetByUser(ctx, "user_a")
	assert.NoError(t, err)
	require.Len(t, notifications, 2)

	ids := []int{notifications[0].ID, notifications[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.False(t, notifications[0].CreatedAt.Before(notifications[1].CreatedAt))
}

func Test_Create_DefaultsToUnread(t *testing.T) {

	repo := NewNotificationsRepository(newTestDb(t).DB)

	notification, err := repo.Create(context.Background(), "user_a", 1, "hello")
	assert.NoError(t, err)
	assert.False(t, notification.Read)
	assert.NotZero(t, notification.ID)
}

func Test_MarkRead_IsIdempotent(t *testing.T) {

	repo := NewNotificationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, "user_a", 1, "hello")
	require.NoError(t, err)

	once, err := repo.MarkRead(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, once.Read)

	twice, err := repo.MarkRead(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, twice.Read)
	assert.Equal(t, once.CreatedAt, twice.CreatedAt)
}

func Test_MarkRead_WhenMissing_ReturnsNotFound(t *testing.T) {

	repo := NewNotificationsRepository(newTestDb(t).DB)

	_, err := repo.MarkRead(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func Test_MarkAllReadByUser_OnlyTouchesUnread(t *testing.T) {

	repo := NewNotificationsRepository(newTestDb(t).DB)
	ctx := context.Background()

	first, err := repo.Create(ctx, "user_a", 1, "one")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "user_a", 1, "two")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "user_b", 1, "someone else")
	require.NoError(t, err)

	_, err = repo.MarkRead(ctx, first.ID)
	require.NoError(t, err)

	count, err := repo.MarkAllReadByUser(ctx, "user_a")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	again, err := repo.MarkAllReadByUser(ctx, "user_a")
	assert.NoError(t, err)
	assert.Zero(t, again)
}
