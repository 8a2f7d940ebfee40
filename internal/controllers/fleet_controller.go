package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"forklift_tracker/internal/activity"
	"forklift_tracker/internal/fleet"
	"forklift_tracker/internal/models"
)

// FleetController serves the derived fleet-wide views. Snapshots are
// computed fresh on every request from the current forklift rows.
type FleetController struct {
	DB         *gorm.DB
	Thresholds activity.Thresholds

	startedAt time.Time
}

func NewFleetController(db *gorm.DB, th activity.Thresholds) *FleetController {
	return &FleetController{DB: db, Thresholds: th, startedAt: time.Now()}
}

// Snapshot aggregates every forklift into one point-in-time view.
func (f *FleetController) Snapshot(c *gin.Context) {
	var forklifts []models.Forklift
	if err := f.DB.Order("forklift_id").Find(&forklifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "error loading fleet"})
		return
	}

	snap := fleet.Aggregate(forklifts, f.Thresholds, time.Now())

	c.JSON(http.StatusOK, gin.H{"success": true, "data": snap})
}

// Health reports process and database liveness.
func (f *FleetController) Health(c *gin.Context) {
	dbStatus := "connected"
	if sqlDB, err := f.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(f.startedAt).String(),
		"database":  dbStatus,
	})
}

// Index is the root route: service banner plus the endpoint map.
func (f *FleetController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Forklift Fleet Tracking API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": gin.H{
			"auth":      "/api/auth",
			"telemetry": "/api/telemetry",
			"forklifts": "/api/forklifts",
			"stations":  "/api/stations",
			"fleet":     "/api/fleet",
			"live":      "/ws/live",
			"health":    "/health",
		},
	})
}
