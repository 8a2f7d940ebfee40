package main

import (
	"context"
	"log"
	"net/http"

	"forklift_tracker/internal/config"
	"forklift_tracker/internal/controllers"
	"forklift_tracker/internal/logger"
	"forklift_tracker/internal/middleware"
	"forklift_tracker/internal/retention"
	"forklift_tracker/internal/routes"
	"forklift_tracker/internal/telemetry"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	hub := controllers.NewLiveHub()
	svc := telemetry.NewService(db, cfg.Thresholds, hub)

	ctrl := routes.Controllers{
		Auth:      &controllers.AuthController{DB: db},
		Users:     &controllers.UserController{DB: db},
		Forklifts: &controllers.ForkliftController{DB: db},
		Stations:  &controllers.StationController{DB: db},
		Telemetry: &controllers.TelemetryController{DB: db, Svc: svc},
		Fleet:     controllers.NewFleetController(db, cfg.Thresholds),
		Live:      &controllers.LiveController{Hub: hub},
	}

	r := routes.SetupRouter(ctrl)

	// Telemetry retention sweep runs for the life of the process
	sweeper := retention.NewSweeper(db, cfg.SweepInterval)
	go sweeper.Run(context.Background())

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("server running at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
