package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomaspozo/hackathon-platform/config"
	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	config.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1")
	RegisterRoutes(group)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterThenLogin(t *testing.T) {
	r := setupAuthTest(t)

	w := postJSON(t, r, "/api/v1/auth/register", RegisterRequest{
		Email:     "new@test.dev",
		Password:  "password123",
		Firstname: "New",
		Lastname:  "User",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RoleParticipant, created.Role)
	assert.NotEmpty(t, created.Token)

	w = postJSON(t, r, "/api/v1/auth/login", LoginRequest{
		Email:    "new@test.dev",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var logged AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.Equal(t, created.UserID, logged.UserID)
	assert.NotNil(t, logged.LastConnected)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupAuthTest(t)

	payload := RegisterRequest{
		Email:     "dup@test.dev",
		Password:  "password123",
		Firstname: "Dup",
		Lastname:  "User",
	}
	w := postJSON(t, r, "/api/v1/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/v1/auth/register", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAuthTest(t)

	w := postJSON(t, r, "/api/v1/auth/register", RegisterRequest{
		Email:     "someone@test.dev",
		Password:  "password123",
		Firstname: "Some",
		Lastname:  "One",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/v1/auth/login", LoginRequest{
		Email:    "someone@test.dev",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThrottleEscalation(t *testing.T) {
	r := setupAuthTest(t)
	throttle.reset("hammered@test.dev")

	for i := 0; i < config.DefaultRateLimitConfig.AttemptsThreshold1; i++ {
		w := postJSON(t, r, "/api/v1/auth/login", LoginRequest{
			Email:    "hammered@test.dev",
			Password: "nope",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// Threshold reached: the next attempt is rejected before credentials
	// are even checked
	w := postJSON(t, r, "/api/v1/auth/login", LoginRequest{
		Email:    "hammered@test.dev",
		Password: "nope",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	throttle.reset("hammered@test.dev")
}
