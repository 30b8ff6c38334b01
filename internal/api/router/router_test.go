package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/api/handler"
	"github.com/FlatBushZombies/quickhands/internal/config"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/FlatBushZombies/quickhands/internal/realtime"
	"github.com/FlatBushZombies/quickhands/internal/repositories"
	"github.com/FlatBushZombies/quickhands/internal/services"
	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.DbContext) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbContext, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	require.NoError(t, dbContext.Migrate())
	t.Cleanup(func() { _ = dbContext.Close() })

	jobs := repositories.NewJobsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	notifications := repositories.NewNotificationsRepository(dbContext.DB)
	users := repositories.NewUsersRepository(dbContext.DB)

	bus := EventBus.New()
	hub := realtime.NewHub()

	_, err = services.NewDispatcher(bus, services.NewSkillMatcher(users), notifications, hub, users, nil)
	require.NoError(t, err)

	deps := &handler.Dependencies{
		Jobs:          services.NewJobService(bus, jobs),
		Applications:  services.NewApplicationService(bus, jobs, applications),
		Notifications: services.NewNotificationService(notifications),
		Users:         services.NewUserService(users),
		Hub:           hub,
	}

	return SetupRouter(deps, config.ServerConfig{Port: 3000}), dbContext
}

func doJSON(r *gin.Engine, method, path, clerkID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if clerkID != "" {
		req.Header.Set("X-Clerk-User-Id", clerkID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createJob(t *testing.T, r *gin.Engine, owner string) int {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/jobs", owner, map[string]any{
		"serviceType": "Plumbing",
		"userName":    "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func Test_CreateJob_WithoutIdentity_Returns401(t *testing.T) {

	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/jobs", "", map[string]any{"serviceType": "Plumbing"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_CreateJob_WithoutServiceType_Returns400(t *testing.T) {

	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/jobs", "user_a", map[string]any{"userName": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_ApplyToJob_HappyPath_Returns201(t *testing.T) {

	r, _ := newTestRouter(t)
	jobID := createJob(t, r, "user_a")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_b",
		map[string]any{"userName": "Bob"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Application submitted successfully")
}

func Test_ApplyToJob_Twice_ReturnsAlreadyAppliedSuccess(t *testing.T) {

	r, _ := newTestRouter(t)
	jobID := createJob(t, r, "user_a")

	first := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_b",
		map[string]any{"userName": "Bob"})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_b",
		map[string]any{"userName": "Bob"})

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), `"alreadyApplied":true`)
}

func Test_ApplyToJob_OwnJob_Returns400(t *testing.T) {

	r, _ := newTestRouter(t)
	jobID := createJob(t, r, "user_a")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_a",
		map[string]any{"userName": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot apply to your own job")
}

func Test_ApplyToJob_WhenFull_ReturnsLimitReached(t *testing.T) {

	r, _ := newTestRouter(t)
	jobID := createJob(t, r, "user_a")

	for i := 0; i < entities.MaxApplicationsPerJob; i++ {
		w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID),
			fmt.Sprintf("user_%d", i), map[string]any{"userName": "Bob"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_late",
		map[string]any{"userName": "Zed"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"limitReached":true`)
}

func Test_ApplyToJob_AfterJobExpiresAndCloses_Returns400(t *testing.T) {

	r, dbContext := newTestRouter(t)
	jobID := createJob(t, r, "user_a")

	past := time.Now().Add(-time.Hour)
	require.NoError(t, dbContext.DB.Model(&entities.ServiceRequest{}).
		Where("id = ?", jobID).
		Update("end_date", past).Error)

	closed, err := repositories.NewJobsRepository(dbContext.DB).CloseExpired(context.Background(), time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(1), closed)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_b",
		map[string]any{"userName": "Bob"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no longer accepting applications")
}

func Test_ApplyToJob_MissingJob_Returns404(t *testing.T) {

	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/jobs/999/apply", "user_b", map[string]any{"userName": "Bob"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_UpdateApplicationStatus_ByNonOwner_Returns403(t *testing.T) {

	r, dbContext := newTestRouter(t)
	jobID := createJob(t, r, "user_a")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_b",
		map[string]any{"userName": "Bob"})
	require.Equal(t, http.StatusCreated, w.Code)

	apps, err := repositories.NewApplicationsRepository(dbContext.DB).GetByJob(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", apps[0].ID), "user_c",
		map[string]any{"status": "accepted"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_Notifications_ReadAll_ReturnsUpdatedCount(t *testing.T) {

	r, dbContext := newTestRouter(t)

	notifications := repositories.NewNotificationsRepository(dbContext.DB)
	_, err := notifications.Create(context.Background(), "user_a", 1, "one")
	require.NoError(t, err)
	_, err = notifications.Create(context.Background(), "user_a", 1, "two")
	require.NoError(t, err)

	w := doJSON(r, http.MethodPatch, "/api/notifications/read-all", "user_a", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updatedCount":2`)
}

func Test_GetJobApplications_ByOwner_ReturnsApplications(t *testing.T) {

	r, _ := newTestRouter(t)
	jobID := createJob(t, r, "user_a")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), "user_b",
		map[string]any{"userName": "Bob"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/jobs/%d/applications", jobID), "user_a", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_b")

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/jobs/%d/applications", jobID), "user_b", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_UpsertUser_WithoutIdentity_Returns401(t *testing.T) {

	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", "", map[string]any{"name": "Bob"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_UpsertUser_ThenGet_RoundTripsProfile(t *testing.T) {

	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", "user_b", map[string]any{
		"name":   "Bob",
		"skills": "plumbing, tiling",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/users/user_b", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "plumbing, tiling")

	// second post updates in place
	w = doJSON(r, http.MethodPost, "/api/users", "user_b", map[string]any{
		"name":   "Bob",
		"skills": "carpentry",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/users/user_b", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carpentry")
	assert.NotContains(t, w.Body.String(), "tiling")
}

func Test_GetUser_WhenMissing_Returns404(t *testing.T) {

	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/users/ghost", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_UpsertUser_ProfileFeedsTheMatcher(t *testing.T) {

	r, dbContext := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", "user_b", map[string]any{
		"name":   "Bob",
		"skills": "plumbing",
	})
	require.Equal(t, http.StatusOK, w.Code)

	jobID := createJob(t, r, "user_a")

	notifications, err := repositories.NewNotificationsRepository(dbContext.DB).
		GetByUser(context.Background(), "user_b")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, jobID, notifications[0].JobID)
}

func Test_ListJobs_NegativeOffset_IsClamped(t *testing.T) {

	r, _ := newTestRouter(t)
	createJob(t, r, "user_a")

	w := doJSON(r, http.MethodGet, "/api/jobs?offset=-5&limit=-1", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plumbing")
}
