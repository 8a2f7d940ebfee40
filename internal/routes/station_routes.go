package routes

import (
	"github.com/gin-gonic/gin"

	"forklift_tracker/internal/middleware"
)

func StationRoutes(r *gin.Engine, ctrl Controllers) {
	stations := r.Group("/api/stations")
	stations.Use(middleware.RequireAuth())
	{
		stations.GET("/", ctrl.Stations.List)
		stations.GET("/:stationId", ctrl.Stations.Get)
		stations.POST("/", middleware.RequireAuthWithRole("admin", "operator"), ctrl.Stations.Create)
		stations.PUT("/:stationId", middleware.RequireAuthWithRole("admin", "operator"), ctrl.Stations.Update)
		stations.DELETE("/:stationId", middleware.RequireAuthWithRole("admin", "operator"), ctrl.Stations.Delete)
	}
}
