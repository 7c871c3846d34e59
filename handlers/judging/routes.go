package judging

import (
	"github.com/tomaspozo/hackathon-platform/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to judging and leaderboards
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// WebSocket endpoint performs its own handshake, outside the auth middleware
	r.GET("/hackathons/:id/leaderboard/ws", LeaderboardWebSocket)

	hackathons := r.Group("/hackathons")
	hackathons.Use(middleware.AuthMiddleware())
	{
		hackathons.GET("/:id/assignments", GetHackathonAssignments)
		hackathons.POST("/:id/assignments", CreateAssignment)
		hackathons.GET("/:id/scores/my", GetMyScores)
		hackathons.GET("/:id/leaderboard", GetLeaderboard)
		hackathons.GET("/:id/leaderboard/export", ExportLeaderboard)
	}

	judgingGroup := r.Group("/judging")
	judgingGroup.Use(middleware.AuthMiddleware())
	{
		judgingGroup.PUT("/scores", UpsertScore)
		judgingGroup.DELETE("/scores/:id", DeleteScore)
		judgingGroup.DELETE("/assignments/:id", DeleteAssignment)
	}
}
