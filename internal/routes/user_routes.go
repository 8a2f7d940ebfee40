package routes

import (
	"github.com/gin-gonic/gin"

	"forklift_tracker/internal/middleware"
)

func UserRoutes(r *gin.Engine, ctrl Controllers) {
	users := r.Group("/api/users")
	users.Use(middleware.RequireAuthWithRole("admin"))
	{
		users.GET("/", ctrl.Users.List)
		users.PUT("/:id", ctrl.Users.Update)
		users.DELETE("/:id", ctrl.Users.Delete)
	}
}
