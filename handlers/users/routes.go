package users

import (
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to user profiles and administration
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/user")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("/profile", GetUserProfile)
		profile.PUT("/profile", UpdateUserProfile)
		profile.PUT("/password", ChangePassword)
	}

	admin := r.Group("/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/", GetAllUsers)
		admin.PUT("/:id/role", ChangeUserRole)
		admin.PUT("/:id/block", ToggleBlockUser)
		admin.DELETE("/:id", DeleteUser)
	}
}
