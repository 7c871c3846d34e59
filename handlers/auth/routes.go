package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to authentication and
// password recovery
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", RegisterUser)
		auth.POST("/login", Login)
		auth.POST("/logout", Logout)
		auth.GET("/check", CheckAuth)
		auth.POST("/request-reset", RequestPasswordReset)
		auth.POST("/reset-password", ResetPassword)
	}
}
