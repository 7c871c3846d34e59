package v1

import (
	"github.com/tomaspozo/hackathon-platform/handlers/auth"
	"github.com/tomaspozo/hackathon-platform/handlers/hackathons"
	"github.com/tomaspozo/hackathon-platform/handlers/judging"
	"github.com/tomaspozo/hackathon-platform/handlers/submissions"
	"github.com/tomaspozo/hackathon-platform/handlers/teams"
	"github.com/tomaspozo/hackathon-platform/handlers/users"
	"github.com/tomaspozo/hackathon-platform/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	RegisterSupportRoutes(v1)
	auth.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	hackathons.RegisterRoutes(v1)
	teams.RegisterRoutes(v1)
	submissions.RegisterRoutes(v1)
	judging.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}

// RegisterPingRoutes registers the liveness probe
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
