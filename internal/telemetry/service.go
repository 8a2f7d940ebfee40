package telemetry

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"forklift_tracker/internal/activity"
	"forklift_tracker/internal/models"
)

// LiveUpdate is what dashboard websocket clients receive after each
// accepted reading.
type LiveUpdate struct {
	ForkliftID   string                 `json:"forklift_id"`
	Activity     activity.ActivityState `json:"activity"`
	BatteryLevel float64                `json:"battery_level"`
	Latitude     float64                `json:"latitude"`
	Longitude    float64                `json:"longitude"`
	Timestamp    time.Time              `json:"timestamp"`
}

// Broadcaster fans an update out to live subscribers. The websocket hub
// implements it; a nil Broadcaster disables fan-out.
type Broadcaster interface {
	PublishUpdate(LiveUpdate)
}

// Service runs the ingest pipeline: normalize, resolve the RFID station,
// classify, append the record, update the forklift row, broadcast.
type Service struct {
	db         *gorm.DB
	thresholds activity.Thresholds
	hub        Broadcaster
	now        func() time.Time
}

func NewService(db *gorm.DB, th activity.Thresholds, hub Broadcaster) *Service {
	return &Service{db: db, thresholds: th, hub: hub, now: time.Now}
}

// Ingest processes one raw reading end to end. A *ValidationError return
// means nothing was persisted; any other error is a storage failure.
func (s *Service) Ingest(raw RawReading) (*models.Telemetry, error) {
	reading, err := Normalize(raw, s.now())
	if err != nil {
		return nil, err
	}

	stationType := s.resolveStationType(reading.Sensors.RFID)
	act := activity.Classify(reading.Sensors, stationType, s.thresholds)

	rec := models.Telemetry{
		ForkliftID:    reading.ForkliftID,
		Timestamp:     reading.Timestamp,
		GPS:           reading.Sensors.GPS,
		Accelerometer: reading.Sensors.Accelerometer,
		Ultrasonic:    reading.Sensors.Ultrasonic,
		RFID:          reading.Sensors.RFID,
		Activity: models.ActivityResult{
			State:     act.State,
			ForkState: act.ForkState,
			EngineOn:  act.EngineOn,
			InMotion:  act.InMotion,
		},
	}

	forklift, err := s.applyToForklift(reading, act, &rec)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.PublishUpdate(LiveUpdate{
			ForkliftID:   forklift.ForkliftID,
			Activity:     act,
			BatteryLevel: forklift.BatteryLevel,
			Latitude:     reading.Sensors.GPS.Latitude,
			Longitude:    reading.Sensors.GPS.Longitude,
			Timestamp:    reading.Timestamp,
		})
	}

	return &rec, nil
}

// resolveStationType maps the reading's RFID scan to a station type.
// Prefers the reported station_id, falls back to the tag itself. Unmatched
// scans resolve to "" and the classifier carries on without the station
// rule.
func (s *Service) resolveStationType(rfid activity.RFIDData) string {
	if !rfid.TagDetected {
		return ""
	}

	var station models.Station
	q := s.db.Where("active = ?", true)
	switch {
	case rfid.StationID != "":
		q = q.Where("station_id = ?", rfid.StationID)
	case rfid.TagID != "":
		q = q.Where("rfid_tag_id = ?", rfid.TagID)
	default:
		return ""
	}

	if err := q.First(&station).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Warn("station lookup failed, classifying without station context")
		}
		return ""
	}
	return station.Type
}

// newAutoRegistered is the forklift row created for a unit that reports
// telemetry before being provisioned. Unknown units are accepted, not
// rejected; an operator can rename the placeholder later.
func newAutoRegistered(forkliftID string) models.Forklift {
	return models.Forklift{
		ForkliftID:      forkliftID,
		Name:            forkliftID,
		Status:          "active",
		CurrentActivity: activity.StateUnknown,
	}
}

// applyReading folds one accepted reading into the forklift row.
// Last-writer-wins: the reading's values overwrite regardless of its
// timestamp, out-of-order readings are not reconciled. Battery level is
// carried forward when the reading omits it.
func applyReading(f *models.Forklift, reading Reading, act activity.ActivityState) {
	f.LastSeen = reading.Timestamp
	f.CurrentLatitude = reading.Sensors.GPS.Latitude
	f.CurrentLongitude = reading.Sensors.GPS.Longitude
	f.CurrentActivity = act.State
	if reading.BatteryLevel != nil {
		f.BatteryLevel = *reading.BatteryLevel
	}
}

// applyToForklift appends the telemetry record and updates the forklift
// row in one transaction: register-if-absent, then update.
func (s *Service) applyToForklift(reading Reading, act activity.ActivityState, rec *models.Telemetry) (*models.Forklift, error) {
	var forklift models.Forklift

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}

		err := tx.Where("forklift_id = ?", reading.ForkliftID).First(&forklift).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			forklift = newAutoRegistered(reading.ForkliftID)
			if err := tx.Create(&forklift).Error; err != nil {
				return err
			}
			logrus.WithField("forklift_id", reading.ForkliftID).
				Info("auto-registered forklift on first telemetry")
		} else if err != nil {
			return err
		}

		applyReading(&forklift, reading, act)
		return tx.Save(&forklift).Error
	})
	if err != nil {
		return nil, err
	}
	return &forklift, nil
}
