package hackathons

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

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

// newTestRouter wires the hackathon routes with the given user injected as
// the authenticated caller, bypassing the JWT middleware
func newTestRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set("currentUser", user)
			c.Next()
		})
	}
	group := r.Group("/api/v1")
	group.GET("/hackathons/active", GetActiveHackathon)
	group.PUT("/hackathons/:id/status", UpdateHackathonStatus)
	group.PUT("/hackathons/:id/activate", ActivateHackathon)
	group.POST("/hackathons/:id/registration", RegisterForHackathon)
	group.DELETE("/hackathons/:id", DeleteHackathon)
	return r
}

func createAdmin(t *testing.T) *models.User {
	t.Helper()
	admin := &models.User{
		Email:     "admin@test.dev",
		Password:  "hashed",
		Firstname: "Admin",
		Lastname:  "User",
		Role:      models.RoleAdmin,
	}
	require.NoError(t, database.DB.Create(admin).Error)
	return admin
}

func createHackathon(t *testing.T, name, status string, active bool) *models.Hackathon {
	t.Helper()
	h := &models.Hackathon{
		Name:     name,
		Slug:     name,
		Status:   status,
		IsActive: active,
		StartAt:  time.Now().Add(-time.Hour),
		EndAt:    time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(h).Error)
	return h
}

func TestActivateHackathonDeactivatesOthers(t *testing.T) {
	setupTestDB(t)
	admin := createAdmin(t)

	first := createHackathon(t, "spring-hack", models.HackathonStatusOpen, true)
	second := createHackathon(t, "winter-hack", models.HackathonStatusOpen, false)

	r := newTestRouter(admin)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/hackathons/"+second.ID+"/activate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var activeCount int64
	database.DB.Model(&models.Hackathon{}).Where("is_active = ?", true).Count(&activeCount)
	assert.Equal(t, int64(1), activeCount)

	var reloaded models.Hackathon
	require.NoError(t, database.DB.First(&reloaded, "id = ?", first.ID).Error)
	assert.False(t, reloaded.IsActive)
}

func TestActivateHackathonRequiresAdmin(t *testing.T) {
	setupTestDB(t)
	participant := &models.User{
		Email:     "user@test.dev",
		Password:  "hashed",
		Firstname: "Plain",
		Lastname:  "User",
		Role:      models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(participant).Error)
	h := createHackathon(t, "spring-hack", models.HackathonStatusOpen, false)

	r := newTestRouter(participant)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/hackathons/"+h.ID+"/activate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetActiveHackathonNone(t *testing.T) {
	setupTestDB(t)
	createHackathon(t, "spring-hack", models.HackathonStatusOpen, false)

	r := newTestRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hackathons/active", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// No active hackathon is a valid state, not an error
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestUpdateHackathonStatusRejectsUnknownValue(t *testing.T) {
	setupTestDB(t)
	admin := createAdmin(t)
	h := createHackathon(t, "spring-hack", models.HackathonStatusOpen, false)

	body, _ := json.Marshal(gin.H{"status": "PAUSED"})
	r := newTestRouter(admin)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/hackathons/"+h.ID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateHackathonStatusTransition(t *testing.T) {
	setupTestDB(t)
	admin := createAdmin(t)
	h := createHackathon(t, "spring-hack", models.HackathonStatusOpen, false)

	body, _ := json.Marshal(gin.H{"status": models.HackathonStatusStarted})
	r := newTestRouter(admin)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/hackathons/"+h.ID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Hackathon
	require.NoError(t, database.DB.First(&reloaded, "id = ?", h.ID).Error)
	assert.Equal(t, models.HackathonStatusStarted, reloaded.Status)
}

func TestRegisterForHackathonClosedStatus(t *testing.T) {
	setupTestDB(t)
	admin := createAdmin(t)
	h := createHackathon(t, "spring-hack", models.HackathonStatusFinished, false)

	r := newTestRouter(admin)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hackathons/"+h.ID+"/registration", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterForHackathonDuplicate(t *testing.T) {
	setupTestDB(t)
	admin := createAdmin(t)
	h := createHackathon(t, "spring-hack", models.HackathonStatusOpen, false)

	r := newTestRouter(admin)
	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/hackathons/"+h.ID+"/registration", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equalf(t, want, w.Code, "request %d", i+1)
	}
}

func TestDeleteHackathonRemovesSubtree(t *testing.T) {
	setupTestDB(t)
	admin := createAdmin(t)
	h := createHackathon(t, "spring-hack", models.HackathonStatusStarted, false)

	owner := &models.User{
		Email:     "owner@test.dev",
		Password:  "hashed",
		Firstname: "Test",
		Lastname:  "User",
		Role:      models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(owner).Error)

	category := &models.Category{HackathonID: h.ID, Name: "AI"}
	require.NoError(t, database.DB.Create(category).Error)
	criterion := &models.JudgingCriterion{HackathonID: h.ID, Name: "Innovation", Weight: 100}
	require.NoError(t, database.DB.Create(criterion).Error)

	team := &models.Team{
		HackathonID: h.ID,
		Name:        "builders",
		Slug:        "builders",
		CreatedBy:   owner.ID,
	}
	require.NoError(t, services.CreateTeamWithOwner(team))
	_, err := services.CreateInvite(team.ID, owner.ID, "friend@test.dev")
	require.NoError(t, err)

	submission := &models.Submission{
		TeamID:      team.ID,
		HackathonID: h.ID,
		CategoryID:  category.ID,
		Name:        "Project X",
		RepoURL:     "https://example.com/repo",
	}
	require.NoError(t, database.DB.Create(submission).Error)

	participant := &models.Participant{HackathonID: h.ID, UserID: owner.ID}
	require.NoError(t, database.DB.Create(participant).Error)

	r := newTestRouter(admin)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/hackathons/"+h.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Nothing referencing the hackathon or its teams may survive
	counts := map[string]interface{}{
		"hackathon":   &models.Hackathon{},
		"category":    &models.Category{},
		"criterion":   &models.JudgingCriterion{},
		"participant": &models.Participant{},
		"team":        &models.Team{},
		"member":      &models.TeamMember{},
		"invite":      &models.TeamInvite{},
		"submission":  &models.Submission{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, database.DB.Model(model).Count(&count).Error)
		assert.Equalf(t, int64(0), count, "%s rows left behind", name)
	}
}
