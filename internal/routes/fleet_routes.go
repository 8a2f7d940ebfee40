package routes

import (
	"github.com/gin-gonic/gin"

	"forklift_tracker/internal/middleware"
)

func FleetRoutes(r *gin.Engine, ctrl Controllers) {
	fleet := r.Group("/api/fleet")
	fleet.Use(middleware.RequireAuth())
	{
		fleet.GET("/snapshot", ctrl.Fleet.Snapshot)
	}
}
