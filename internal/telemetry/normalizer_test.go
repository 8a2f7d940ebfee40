package telemetry

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forklift_tracker/internal/activity"
)

var ingestedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func f(v float64) *float64 { return &v }

func validRaw() RawReading {
	return RawReading{
		ForkliftID: "FL-001",
		GPS:        &RawGPS{Latitude: f(60.17), Longitude: f(24.94), Speed: 3.5, Valid: true},
	}
}

func TestNormalizeAcceptsMinimalReading(t *testing.T) {
	r, err := Normalize(validRaw(), ingestedAt)

	require.NoError(t, err)
	assert.Equal(t, "FL-001", r.ForkliftID)
	assert.Equal(t, 60.17, r.Sensors.GPS.Latitude)
	// Missing sub-objects default to zero values, i.e. "not detected".
	assert.False(t, r.Sensors.RFID.TagDetected)
	assert.False(t, r.Sensors.Ultrasonic.LoadDetected)
}

func TestNormalizeDefaultsTimestampToIngestionTime(t *testing.T) {
	r, err := Normalize(validRaw(), ingestedAt)

	require.NoError(t, err)
	assert.Equal(t, ingestedAt, r.Timestamp)
}

func TestNormalizeKeepsProvidedTimestamp(t *testing.T) {
	raw := validRaw()
	raw.Timestamp = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	r, err := Normalize(raw, ingestedAt)

	require.NoError(t, err)
	assert.Equal(t, raw.Timestamp, r.Timestamp)
}

func TestNormalizeRejectsMissingForkliftID(t *testing.T) {
	raw := validRaw()
	raw.ForkliftID = "   "

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "forklift_id", verr.Fields[0].Field)
}

func TestNormalizeRejectsMissingGPS(t *testing.T) {
	raw := validRaw()
	raw.GPS = nil

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gps", verr.Fields[0].Field)
}

func TestNormalizeRejectsCoordinatesOutOfRange(t *testing.T) {
	raw := validRaw()
	raw.GPS.Latitude = f(91)
	raw.GPS.Longitude = f(-181)

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "gps.latitude", verr.Fields[0].Field)
	assert.Equal(t, "gps.longitude", verr.Fields[1].Field)
}

func TestNormalizeRejectsAbsentCoordinates(t *testing.T) {
	raw := validRaw()
	raw.GPS = &RawGPS{}

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := []string{verr.Fields[0].Field, verr.Fields[1].Field}
	assert.Contains(t, fields, "gps.latitude")
	assert.Contains(t, fields, "gps.longitude")
}

func TestNormalizeRejectsNonFiniteValues(t *testing.T) {
	raw := validRaw()
	raw.GPS.Speed = math.NaN()

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gps.speed", verr.Fields[0].Field)
}

func TestNormalizeRejectsNegativeForkHeight(t *testing.T) {
	raw := validRaw()
	raw.Ultrasonic = &activity.UltrasonicData{ForkHeight: -3}

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ultrasonic.fork_height", verr.Fields[0].Field)
}

func TestNormalizeRejectsBatteryOutOfRange(t *testing.T) {
	raw := validRaw()
	raw.BatteryLevel = f(120)

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "battery_level", verr.Fields[0].Field)
}

func TestValidationErrorCollectsAllFields(t *testing.T) {
	raw := RawReading{}

	_, err := Normalize(raw, ingestedAt)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Fields), 2)
	assert.Contains(t, verr.Error(), "forklift_id")
	assert.Contains(t, verr.Error(), "gps")
}

func TestRawReadingUnmarshalAssumesUTCWithoutZone(t *testing.T) {
	payload := `{"forklift_id":"FL-001","timestamp":"2026-03-14T08:30:00",
		"gps":{"latitude":60.17,"longitude":24.94}}`

	var raw RawReading
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	assert.Equal(t, time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC), raw.Timestamp)
}

func TestRawReadingUnmarshalRejectsNonBooleanFlag(t *testing.T) {
	payload := `{"forklift_id":"FL-001",
		"gps":{"latitude":60.17,"longitude":24.94},
		"rfid":{"tag_detected":"yes"}}`

	var raw RawReading
	assert.Error(t, json.Unmarshal([]byte(payload), &raw))
}
