package routes

import (
	"github.com/gin-gonic/gin"

	"forklift_tracker/internal/middleware"
)

func ForkliftRoutes(r *gin.Engine, ctrl Controllers) {
	forklifts := r.Group("/api/forklifts")
	forklifts.Use(middleware.RequireAuth())
	{
		forklifts.GET("/", ctrl.Forklifts.List)
		forklifts.GET("/:forkliftId", ctrl.Forklifts.Get)
		forklifts.POST("/", middleware.RequireAuthWithRole("admin", "operator"), ctrl.Forklifts.Create)
		forklifts.PUT("/:forkliftId", middleware.RequireAuthWithRole("admin", "operator"), ctrl.Forklifts.Update)
		forklifts.DELETE("/:forkliftId", middleware.RequireAuthWithRole("admin"), ctrl.Forklifts.Delete)
	}
}
