package teams

import (
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

func newTestRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("currentUser", user)
		c.Next()
	})
	group := r.Group("/api/v1")
	group.DELETE("/teams/:id", DeleteTeam)
	return r
}

func TestDeleteTeamRemovesDependents(t *testing.T) {
	setupTestDB(t)

	owner := &models.User{
		Email:     "owner@test.dev",
		Password:  "hashed",
		Firstname: "Test",
		Lastname:  "User",
		Role:      models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(owner).Error)

	judge := &models.User{
		Email:     "judge@test.dev",
		Password:  "hashed",
		Firstname: "Judge",
		Lastname:  "User",
		Role:      models.RoleJudge,
	}
	require.NoError(t, database.DB.Create(judge).Error)

	h := &models.Hackathon{
		Name:    "spring-hack",
		Slug:    "spring-hack",
		Status:  models.HackathonStatusStarted,
		StartAt: time.Now().Add(-time.Hour),
		EndAt:   time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(h).Error)

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

	assignment := &models.JudgeAssignment{HackathonID: h.ID, JudgeID: judge.ID, TeamID: team.ID}
	require.NoError(t, database.DB.Create(assignment).Error)
	require.NoError(t, services.UpsertJudgingScore(&models.JudgingScore{
		HackathonID: h.ID,
		TeamID:      team.ID,
		JudgeID:     judge.ID,
		CriterionID: criterion.ID,
		Score:       8,
	}))

	r := newTestRouter(owner)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/teams/"+team.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Every row referencing the team must be gone, or the delete would
	// violate an FK on postgres
	counts := map[string]interface{}{
		"team":       &models.Team{},
		"member":     &models.TeamMember{},
		"invite":     &models.TeamInvite{},
		"submission": &models.Submission{},
		"assignment": &models.JudgeAssignment{},
		"score":      &models.JudgingScore{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, database.DB.Model(model).Count(&count).Error)
		assert.Equalf(t, int64(0), count, "%s rows left behind", name)
	}
}

func TestDeleteTeamNonOwnerForbidden(t *testing.T) {
	setupTestDB(t)

	owner := &models.User{
		Email:     "owner@test.dev",
		Password:  "hashed",
		Firstname: "Test",
		Lastname:  "User",
		Role:      models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(owner).Error)

	stranger := &models.User{
		Email:     "stranger@test.dev",
		Password:  "hashed",
		Firstname: "Other",
		Lastname:  "User",
		Role:      models.RoleParticipant,
	}
	require.NoError(t, database.DB.Create(stranger).Error)

	h := &models.Hackathon{
		Name:    "spring-hack",
		Slug:    "spring-hack",
		Status:  models.HackathonStatusOpen,
		StartAt: time.Now().Add(-time.Hour),
		EndAt:   time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(h).Error)

	team := &models.Team{
		HackathonID: h.ID,
		Name:        "builders",
		Slug:        "builders",
		CreatedBy:   owner.ID,
	}
	require.NoError(t, services.CreateTeamWithOwner(team))

	r := newTestRouter(stranger)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/teams/"+team.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	database.DB.Model(&models.Team{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
