package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/tomaspozo/hackathon-platform/config"
	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loginThrottle tracks failed login attempts per email with escalating cooldowns
type loginThrottle struct {
	mu       sync.Mutex
	attempts map[string]*loginAttempts
	cfg      config.RateLimitConfig
}

type loginAttempts struct {
	count       int
	blockedTill time.Time
}

var throttle = &loginThrottle{
	attempts: make(map[string]*loginAttempts),
	cfg:      config.DefaultRateLimitConfig,
}

func (t *loginThrottle) blocked(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.attempts[email]
	return ok && time.Now().Before(a.blockedTill)
}

func (t *loginThrottle) fail(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.attempts[email]
	if !ok {
		a = &loginAttempts{}
		t.attempts[email] = a
	}
	a.count++
	switch {
	case a.count >= t.cfg.AttemptsThreshold2:
		a.blockedTill = time.Now().Add(t.cfg.CooldownDuration2)
	case a.count >= t.cfg.AttemptsThreshold1:
		a.blockedTill = time.Now().Add(t.cfg.CooldownDuration1)
	}
}

func (t *loginThrottle) reset(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, email)
}

// Login authenticates a user with email and password
// @Summary Login
// @Description Authenticate with email and password, sets the auth cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400,401,403,429 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if throttle.blocked(req.Email) {
		response.Error(c, http.StatusTooManyRequests, ErrTooManyAttempts)
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		throttle.fail(req.Email)
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		throttle.fail(req.Email)
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if user.Blocked {
		response.Error(c, http.StatusForbidden, ErrAccountBlocked)
		return
	}

	throttle.reset(req.Email)

	token, err := middleware.GenerateToken(user.ID, req.RememberMe)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	now := time.Now()
	database.DB.Model(&user).Update("last_connected", now)
	setCookieToken(c, token, req.RememberMe)

	c.JSON(http.StatusOK, AuthResponse{
		Token:         token,
		UserID:        user.ID,
		Email:         user.Email,
		Firstname:     user.Firstname,
		Lastname:      user.Lastname,
		Role:          user.Role,
		LastConnected: &now,
		Blocked:       user.Blocked,
	})
}

// RegisterUser creates a new participant account
// @Summary Register
// @Description Create a new account with the participant role
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400,409,500 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		response.Error(c, http.StatusConflict, ErrEmailInUse)
		return
	} else if err != gorm.ErrRecordNotFound {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Role:      models.RoleParticipant,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	token, err := middleware.GenerateToken(user.ID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}
	setCookieToken(c, token, false)

	c.JSON(http.StatusCreated, AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Role:      user.Role,
	})
}

// CheckAuth validates the current session and returns the user
// @Summary Check authentication
// @Description Validate the auth token and return the associated account
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
func CheckAuth(c *gin.Context) {
	cookie, err := c.Cookie("auth_token")
	if err != nil || cookie == "" {
		response.Error(c, http.StatusUnauthorized, ErrNoTokenProvided)
		return
	}

	userID, err := middleware.ParseToken(cookie)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidExpiredToken)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrUserNotFound)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:         cookie,
		UserID:        user.ID,
		Email:         user.Email,
		Firstname:     user.Firstname,
		Lastname:      user.Lastname,
		Role:          user.Role,
		LastConnected: user.LastConnected,
		Blocked:       user.Blocked,
	})
}

// Logout clears the auth cookie
// @Summary Logout
// @Description Clear the authentication cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": MsgLogoutSuccess})
}
