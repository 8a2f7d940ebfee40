package models

import (
	"time"

	"gorm.io/gorm"

	"forklift_tracker/internal/activity"
)

// ActivityResult is the classifier output stored alongside each reading.
type ActivityResult struct {
	State     activity.State     `json:"state" gorm:"default:UNKNOWN"`
	ForkState activity.ForkState `json:"fork_state" gorm:"default:UNKNOWN"`
	EngineOn  bool               `json:"engine_on"`
	InMotion  bool               `json:"in_motion"`
}

// Telemetry is one accepted sensor report. Rows older than the retention
// horizon are swept; see internal/retention.
type Telemetry struct {
	gorm.Model
	ForkliftID string    `json:"forklift_id" gorm:"index:idx_telemetry_forklift_ts,priority:1"`
	Timestamp  time.Time `json:"timestamp" gorm:"index;index:idx_telemetry_forklift_ts,priority:2,sort:desc"`

	GPS           activity.GPSData           `json:"gps" gorm:"embedded;embeddedPrefix:gps_"`
	Accelerometer activity.AccelerometerData `json:"accelerometer" gorm:"embedded;embeddedPrefix:accel_"`
	Ultrasonic    activity.UltrasonicData    `json:"ultrasonic" gorm:"embedded;embeddedPrefix:ultrasonic_"`
	RFID          activity.RFIDData          `json:"rfid" gorm:"embedded;embeddedPrefix:rfid_"`

	Activity ActivityResult `json:"activity" gorm:"embedded;embeddedPrefix:activity_"`
}
