package submissions

import (
	"github.com/tomaspozo/hackathon-platform/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to project submissions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("/:id/submission", GetTeamSubmission)
		teams.PUT("/:id/submission", UpsertTeamSubmission)
	}

	submissions := r.Group("/submissions")
	submissions.Use(middleware.AuthMiddleware())
	{
		submissions.POST("/:id/submit", SubmitProject)
	}
}
