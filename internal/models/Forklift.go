package models

import (
	"time"

	"gorm.io/gorm"

	"forklift_tracker/internal/activity"
)

// Forklift is one physical unit of the fleet. Its current* fields mirror
// the latest accepted telemetry reading; only the ingestion pipeline and
// administrative edits touch this row.
type Forklift struct {
	gorm.Model
	ForkliftID    string `json:"forklift_id" gorm:"uniqueIndex"`
	Name          string `json:"name"`
	ForkliftModel string `json:"forklift_model" gorm:"column:forklift_model"`
	SerialNumber  string `json:"serial_number"`
	Status        string `json:"status" gorm:"default:active;index"` // "active", "inactive", "maintenance"

	LastSeen         time.Time      `json:"last_seen"`
	CurrentLatitude  float64        `json:"current_latitude"`
	CurrentLongitude float64        `json:"current_longitude"`
	CurrentActivity  activity.State `json:"current_activity" gorm:"default:UNKNOWN"`
	BatteryLevel     float64        `json:"battery_level"` // percent, 0-100
}
