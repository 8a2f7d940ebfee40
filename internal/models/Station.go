package models

import (
	"encoding/binary"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"gorm.io/gorm"
)

// Station is a fixed warehouse location a forklift can scan into via RFID.
// Reference data for the classifier's station rule; the ingestion pipeline
// never mutates it.
type Station struct {
	gorm.Model

	StationID string `json:"station_id" gorm:"uniqueIndex" binding:"required"`
	Name      string `json:"name" binding:"required"`
	// "loading", "unloading", "storage", "charging", "maintenance",
	// "production", "other"
	Type      string  `json:"type" gorm:"index" binding:"required"`
	RFIDTagID *string `json:"rfid_tag_id,omitempty" gorm:"uniqueIndex"`

	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Floor       string  `json:"floor"`
	Zone        string  `json:"zone"`
	Description string  `json:"description"`

	// Point geometry kept in sync from Latitude/Longitude, stored as WKB
	// (SRID 4326). API input/output is GeoJSON.
	Geometry []byte `json:"-" gorm:"type:bytea"`

	Active bool `json:"active" gorm:"default:true"`
}

// PointWKB encodes a lat/lng pair as an SRID 4326 point in WKB, the
// encoding Station.Geometry is stored in. Every writer of the column
// goes through this so API-created and seeded rows are shaped the same.
func PointWKB(lat, lng float64) ([]byte, error) {
	p := geom.NewPointFlat(geom.XY, []float64{lng, lat}).SetSRID(4326)
	return wkb.Marshal(p, binary.LittleEndian)
}
