package routes

import (
	"github.com/gin-gonic/gin"

	"forklift_tracker/internal/middleware"
)

func TelemetryRoutes(r *gin.Engine, ctrl Controllers) {
	tel := r.Group("/api/telemetry")
	{
		// Ingest is open to devices; the vehicle modules carry no user
		// credentials, same trust model as the previous deployment.
		tel.POST("/", ctrl.Telemetry.Ingest)

		tel.GET("/:forkliftId/latest", middleware.RequireAuth(), ctrl.Telemetry.Latest)
		tel.GET("/:forkliftId/history", middleware.RequireAuth(), ctrl.Telemetry.History)
	}
}
