package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"forklift_tracker/internal/controllers"
)

// Controllers bundles every handler group the router mounts. All of them
// hold their own DB handle; nothing here is global.
type Controllers struct {
	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Forklifts *controllers.ForkliftController
	Stations  *controllers.StationController
	Telemetry *controllers.TelemetryController
	Fleet     *controllers.FleetController
	Live      *controllers.LiveController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	r.GET("/", ctrl.Fleet.Index)
	r.GET("/health", ctrl.Fleet.Health)

	AuthRoutes(r, ctrl)
	UserRoutes(r, ctrl)
	ForkliftRoutes(r, ctrl)
	StationRoutes(r, ctrl)
	TelemetryRoutes(r, ctrl)
	FleetRoutes(r, ctrl)
	WebSocketRoutes(r, ctrl)

	return r
}
