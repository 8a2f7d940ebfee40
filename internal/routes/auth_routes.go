package routes

import (
	"github.com/gin-gonic/gin"

	"forklift_tracker/internal/middleware"
)

func AuthRoutes(r *gin.Engine, ctrl Controllers) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/register", middleware.RequireAuthWithRole("admin"), ctrl.Auth.Register)
		auth.POST("/logout", middleware.RequireAuth(), ctrl.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(), ctrl.Auth.Me)
		auth.PUT("/change-password", middleware.RequireAuth(), ctrl.Auth.ChangePassword)
	}
}
