package submissions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	user     *models.User
	team     *models.Team
	category *models.Category
}

func setupFixture(t *testing.T, status string) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	user := &models.User{
		Email:     "owner@test.dev",
		Password:  "hashed",
		Firstname: "Test",
		Lastname:  "User",
		Role:      models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(user).Error)

	h := &models.Hackathon{
		Name:    "spring-hack",
		Slug:    "spring-hack",
		Status:  status,
		StartAt: time.Now().Add(-time.Hour),
		EndAt:   time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(h).Error)

	category := &models.Category{HackathonID: h.ID, Name: "AI"}
	require.NoError(t, database.DB.Create(category).Error)

	team := &models.Team{
		HackathonID: h.ID,
		Name:        "builders",
		Slug:        "builders",
		CreatedBy:   user.ID,
	}
	require.NoError(t, services.CreateTeamWithOwner(team))

	return &fixture{user: user, team: team, category: category}
}

func newTestRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("currentUser", user)
		c.Next()
	})
	group := r.Group("/api/v1")
	group.GET("/teams/:id/submission", GetTeamSubmission)
	group.PUT("/teams/:id/submission", UpsertTeamSubmission)
	group.POST("/submissions/:id/submit", SubmitProject)
	return r
}

func (f *fixture) saveSubmission(t *testing.T, r *gin.Engine, name string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(UpsertSubmissionRequest{
		CategoryID: f.category.ID,
		Name:       name,
		RepoURL:    "https://example.com/repo",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/teams/"+f.team.ID+"/submission", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTeamSubmissionNone(t *testing.T) {
	f := setupFixture(t, models.HackathonStatusStarted)
	r := newTestRouter(f.user)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/"+f.team.ID+"/submission", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// A team without a submission yet gets null, not an error
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestUpsertSubmissionCreatesThenUpdates(t *testing.T) {
	f := setupFixture(t, models.HackathonStatusStarted)
	r := newTestRouter(f.user)

	w := f.saveSubmission(t, r, "Project X")
	require.Equal(t, http.StatusOK, w.Code)

	w = f.saveSubmission(t, r, "Project X v2")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Submission{}).Where("team_id = ?", f.team.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var saved models.Submission
	require.NoError(t, database.DB.Where("team_id = ?", f.team.ID).First(&saved).Error)
	assert.Equal(t, "Project X v2", saved.Name)
	assert.Equal(t, models.SubmissionStatusDraft, saved.Status)
}

func TestUpsertSubmissionClosedWindow(t *testing.T) {
	f := setupFixture(t, models.HackathonStatusOpen)
	r := newTestRouter(f.user)

	w := f.saveSubmission(t, r, "Project X")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpsertSubmissionNonMember(t *testing.T) {
	f := setupFixture(t, models.HackathonStatusStarted)

	stranger := &models.User{
		Email:     "stranger@test.dev",
		Password:  "hashed",
		Firstname: "Other",
		Lastname:  "User",
		Role:      models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(stranger).Error)

	r := newTestRouter(stranger)
	w := f.saveSubmission(t, r, "Project X")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubmitProjectStampsTime(t *testing.T) {
	f := setupFixture(t, models.HackathonStatusStarted)
	r := newTestRouter(f.user)

	w := f.saveSubmission(t, r, "Project X")
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Submission
	require.NoError(t, database.DB.Where("team_id = ?", f.team.ID).First(&saved).Error)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/"+saved.ID+"/submit", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.Where("team_id = ?", f.team.ID).First(&saved).Error)
	assert.Equal(t, models.SubmissionStatusSubmitted, saved.Status)
	require.NotNil(t, saved.LastSubmittedAt)
	first := *saved.LastSubmittedAt

	// Submitting again is allowed and refreshes the timestamp
	time.Sleep(10 * time.Millisecond)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/submissions/"+saved.ID+"/submit", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.Where("team_id = ?", f.team.ID).First(&saved).Error)
	require.NotNil(t, saved.LastSubmittedAt)
	assert.True(t, saved.LastSubmittedAt.After(first))
}
