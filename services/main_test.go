package services

import (
	"testing"
	"time"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database and points the package-level
// connection at it for the duration of the test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

func createTestUser(t *testing.T, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "hashed",
		Firstname: "Test",
		Lastname:  "User",
		Role:      role,
	}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

func createTestHackathon(t *testing.T, name, status string) *models.Hackathon {
	t.Helper()
	h := &models.Hackathon{
		Name:    name,
		Slug:    name,
		Status:  status,
		StartAt: time.Now().Add(-time.Hour),
		EndAt:   time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, database.DB.Create(h).Error)
	return h
}

func createTestTeam(t *testing.T, hackathonID string, owner *models.User, name string) *models.Team {
	t.Helper()
	team := &models.Team{
		HackathonID: hackathonID,
		Name:        name,
		Slug:        name,
		CreatedBy:   owner.ID,
	}
	require.NoError(t, CreateTeamWithOwner(team))
	return team
}
