package telemetry

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"forklift_tracker/internal/activity"
)

// FieldError names one offending field of a rejected reading.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError rejects a raw reading before classification. It is the
// only failure the pipeline produces; everything downstream is total.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "invalid telemetry: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// RawGPS uses pointers for the coordinates so an absent fix can be told
// apart from 0,0 (a real place in the Gulf of Guinea, not in our
// warehouse).
type RawGPS struct {
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Altitude   float64  `json:"altitude"`
	Speed      float64  `json:"speed"`
	Satellites int      `json:"satellites"`
	Valid      bool     `json:"valid"`
}

// RawReading is the ingest payload as devices send it. Sub-objects are
// optional; a missing block reads as "not detected".
type RawReading struct {
	ForkliftID    string                      `json:"forklift_id"`
	Timestamp     time.Time                   `json:"timestamp"`
	BatteryLevel  *float64                    `json:"battery_level"`
	GPS           *RawGPS                     `json:"gps"`
	Accelerometer *activity.AccelerometerData `json:"accelerometer"`
	Ultrasonic    *activity.UltrasonicData    `json:"ultrasonic"`
	RFID          *activity.RFIDData          `json:"rfid"`
}

// UnmarshalJSON tolerates device timestamps without a timezone suffix by
// assuming UTC, the same quirk the vehicle firmware has always had.
func (r *RawReading) UnmarshalJSON(data []byte) error {
	type alias RawReading
	aux := &struct {
		Timestamp string `json:"timestamp"`
		*alias
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Timestamp == "" {
		r.Timestamp = time.Time{}
		return nil
	}

	ts := aux.Timestamp
	if !(strings.HasSuffix(ts, "Z") || (len(ts) >= 6 && strings.ContainsAny(ts[len(ts)-6:], "+-"))) {
		ts += "Z"
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", aux.Timestamp, err)
	}
	r.Timestamp = t
	return nil
}

// Reading is the canonical record after normalization.
type Reading struct {
	ForkliftID   string
	Timestamp    time.Time
	BatteryLevel *float64
	Sensors      activity.Reading
}

// Normalize validates and coerces a raw payload into a canonical Reading.
// Pure transform: persistence belongs to the caller. Unknown forklift IDs
// are not an error here; the ingest path auto-registers them.
func Normalize(raw RawReading, now time.Time) (Reading, error) {
	verr := &ValidationError{}

	id := strings.TrimSpace(raw.ForkliftID)
	if id == "" {
		verr.add("forklift_id", "required")
	}

	if raw.GPS == nil {
		verr.add("gps", "required")
	} else {
		if raw.GPS.Latitude == nil {
			verr.add("gps.latitude", "required")
		} else if math.Abs(*raw.GPS.Latitude) > 90 || !isFinite(*raw.GPS.Latitude) {
			verr.add("gps.latitude", "must be within [-90, 90]")
		}
		if raw.GPS.Longitude == nil {
			verr.add("gps.longitude", "required")
		} else if math.Abs(*raw.GPS.Longitude) > 180 || !isFinite(*raw.GPS.Longitude) {
			verr.add("gps.longitude", "must be within [-180, 180]")
		}
		checkFinite(verr, "gps.altitude", raw.GPS.Altitude)
		checkFinite(verr, "gps.speed", raw.GPS.Speed)
	}

	if raw.Accelerometer != nil {
		checkFinite(verr, "accelerometer.vibration_magnitude", raw.Accelerometer.VibrationMagnitude)
		checkFinite(verr, "accelerometer.tilt_angle", raw.Accelerometer.TiltAngle)
	}

	if raw.Ultrasonic != nil {
		checkFinite(verr, "ultrasonic.fork_height", raw.Ultrasonic.ForkHeight)
		if raw.Ultrasonic.ForkHeight < 0 {
			verr.add("ultrasonic.fork_height", "must not be negative")
		}
	}

	if raw.BatteryLevel != nil {
		if !isFinite(*raw.BatteryLevel) || *raw.BatteryLevel < 0 || *raw.BatteryLevel > 100 {
			verr.add("battery_level", "must be within [0, 100]")
		}
	}

	if len(verr.Fields) > 0 {
		return Reading{}, verr
	}

	r := Reading{
		ForkliftID:   id,
		Timestamp:    raw.Timestamp,
		BatteryLevel: raw.BatteryLevel,
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = now
	}

	r.Sensors.GPS = activity.GPSData{
		Latitude:   *raw.GPS.Latitude,
		Longitude:  *raw.GPS.Longitude,
		Altitude:   raw.GPS.Altitude,
		Speed:      raw.GPS.Speed,
		Satellites: raw.GPS.Satellites,
		Valid:      raw.GPS.Valid,
	}
	if raw.Accelerometer != nil {
		r.Sensors.Accelerometer = *raw.Accelerometer
	}
	if raw.Ultrasonic != nil {
		r.Sensors.Ultrasonic = *raw.Ultrasonic
	}
	if raw.RFID != nil {
		r.Sensors.RFID = *raw.RFID
	}

	return r, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkFinite(verr *ValidationError, field string, v float64) {
	if !isFinite(v) {
		verr.add(field, "must be finite")
	}
}
