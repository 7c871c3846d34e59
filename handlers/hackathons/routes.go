package hackathons

import (
	"github.com/tomaspozo/hackathon-platform/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to hackathons
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.GET("/hackathons/open", GetOpenHackathons)
	r.GET("/hackathons/active", GetActiveHackathon)

	hackathons := r.Group("/hackathons")
	hackathons.Use(middleware.AuthMiddleware())
	{
		// Hackathon management routes
		hackathons.GET("/", GetAllHackathons)
		hackathons.GET("/registered", GetMyHackathons)
		hackathons.GET("/:id", GetHackathon)
		hackathons.POST("/", CreateHackathon)
		hackathons.PUT("/:id", UpdateHackathon)
		hackathons.DELETE("/:id", DeleteHackathon)
		hackathons.PUT("/:id/status", UpdateHackathonStatus)
		hackathons.PUT("/:id/activate", ActivateHackathon)

		// Category management routes
		hackathons.GET("/:id/categories", GetHackathonCategories)
		hackathons.POST("/:id/categories", CreateCategory)
		hackathons.PUT("/:id/categories/:category_id", UpdateCategory)
		hackathons.DELETE("/:id/categories/:category_id", DeleteCategory)

		// Judging criteria management routes
		hackathons.GET("/:id/criteria", GetHackathonCriteria)
		hackathons.POST("/:id/criteria", CreateCriterion)
		hackathons.PUT("/:id/criteria/:criterion_id", UpdateCriterion)
		hackathons.DELETE("/:id/criteria/:criterion_id", DeleteCriterion)

		// Registration routes
		hackathons.GET("/:id/registration", CheckIfRegistered)
		hackathons.POST("/:id/registration", RegisterForHackathon)
		hackathons.DELETE("/:id/registration", LeaveHackathon)
	}
}
