package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"forklift_tracker/internal/models"
	"forklift_tracker/internal/retention"
	"forklift_tracker/internal/telemetry"
)

const defaultHistoryLimit = 100

// TelemetryController is the device-facing ingest endpoint plus the
// read-only history/latest queries.
type TelemetryController struct {
	DB  *gorm.DB
	Svc *telemetry.Service
}

// Ingest accepts one sensor report, runs the full pipeline and answers
// with the classified record. Validation failures name the offending
// fields; nothing is partially applied.
func (t *TelemetryController) Ingest(c *gin.Context) {
	var raw telemetry.RawReading
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":  false,
			"accepted": false,
			"error":    "malformed telemetry payload: " + err.Error(),
		})
		return
	}

	rec, err := t.Svc.Ingest(raw)
	if err != nil {
		var verr *telemetry.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":  false,
				"accepted": false,
				"error":    "telemetry rejected",
				"fields":   verr.Fields,
			})
			return
		}
		logrus.WithError(err).Error("telemetry ingest failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false, "accepted": false, "error": "failed to save telemetry",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"accepted": true,
		"message":  "telemetry received",
		"data":     rec,
	})
}

// Latest returns the newest reading for one forklift.
func (t *TelemetryController) Latest(c *gin.Context) {
	id := c.Param("forkliftId")

	var rec models.Telemetry
	err := t.DB.Where("forklift_id = ?", id).Order("timestamp DESC").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "no telemetry for this forklift"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// History returns readings for a time range, newest first. Pass-through:
// records are served as stored, not transformed. History never reaches
// past the retention horizon because swept rows are gone.
func (t *TelemetryController) History(c *gin.Context) {
	id := c.Param("forkliftId")

	q := t.DB.Where("forklift_id = ?", id)

	if start := c.Query("startDate"); start != "" {
		ts, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "startDate must be RFC3339"})
			return
		}
		q = q.Where("timestamp >= ?", ts)
	}
	if end := c.Query("endDate"); end != "" {
		ts, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "endDate must be RFC3339"})
			return
		}
		q = q.Where("timestamp <= ?", ts)
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	var recs []models.Telemetry
	if err := q.Order("timestamp DESC").Limit(limit).Find(&recs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"count":             len(recs),
		"retention_horizon": retention.Horizon.String(),
		"data":              recs,
	})
}
