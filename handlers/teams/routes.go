package teams

import (
	"github.com/tomaspozo/hackathon-platform/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to teams and invites
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public route: invite links resolve without authentication
	r.GET("/invites/token/:token", GetInviteByToken)

	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		// Team lifecycle routes
		teams.POST("/", CreateTeam)
		teams.GET("/my", GetMyTeam)
		teams.GET("/:id", GetTeam)
		teams.PUT("/:id", UpdateTeam)
		teams.DELETE("/:id", DeleteTeam)

		// Membership routes
		teams.GET("/:id/members", GetTeamMembers)
		teams.POST("/:id/leave", LeaveTeam)
		teams.DELETE("/:id/members/:user_id", RemoveTeamMember)

		// Invite routes
		teams.GET("/:id/invites", GetTeamInvites)
		teams.POST("/:id/invites", InviteTeamMember)
	}

	invites := r.Group("/invites")
	invites.Use(middleware.AuthMiddleware())
	{
		invites.GET("/", GetMyInvites)
		invites.POST("/:id/respond", RespondToInvite)
	}
}
