package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"forklift_tracker/internal/activity"
	"forklift_tracker/internal/models"
)

func reading(ts time.Time, battery *float64) Reading {
	return Reading{
		ForkliftID:   "FL-007",
		Timestamp:    ts,
		BatteryLevel: battery,
		Sensors: activity.Reading{
			GPS: activity.GPSData{Latitude: 60.17, Longitude: 24.94, Speed: 4.0},
		},
	}
}

func TestAutoRegisteredForkliftShape(t *testing.T) {
	f := newAutoRegistered("FL-NEW")

	assert.Equal(t, "FL-NEW", f.ForkliftID)
	assert.Equal(t, "FL-NEW", f.Name)
	assert.Equal(t, "active", f.Status)
	assert.Equal(t, activity.StateUnknown, f.CurrentActivity)
	assert.Zero(t, f.BatteryLevel)
}

func TestApplyReadingUpdatesCurrentState(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	f := models.Forklift{ForkliftID: "FL-007", BatteryLevel: 55}
	act := activity.ActivityState{State: activity.StateDriving, ForkState: activity.ForkDown, EngineOn: true, InMotion: true}

	applyReading(&f, reading(ts, f64(72)), act)

	assert.Equal(t, ts, f.LastSeen)
	assert.Equal(t, 60.17, f.CurrentLatitude)
	assert.Equal(t, 24.94, f.CurrentLongitude)
	assert.Equal(t, activity.StateDriving, f.CurrentActivity)
	assert.Equal(t, 72.0, f.BatteryLevel)
}

func TestApplyReadingCarriesBatteryForwardWhenAbsent(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	f := models.Forklift{ForkliftID: "FL-007", BatteryLevel: 55}

	applyReading(&f, reading(ts, nil), activity.ActivityState{State: activity.StateIdle})

	assert.Equal(t, 55.0, f.BatteryLevel)
}

func TestApplyReadingIsLastWriterWins(t *testing.T) {
	// An older reading arriving late still overwrites; out-of-order
	// telemetry is not reconciled.
	newer := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-10 * time.Minute)

	f := models.Forklift{ForkliftID: "FL-007"}
	applyReading(&f, reading(newer, f64(80)), activity.ActivityState{State: activity.StateWorking})
	applyReading(&f, reading(older, f64(40)), activity.ActivityState{State: activity.StateIdle})

	assert.Equal(t, older, f.LastSeen)
	assert.Equal(t, activity.StateIdle, f.CurrentActivity)
	assert.Equal(t, 40.0, f.BatteryLevel)
}

func f64(v float64) *float64 { return &v }
