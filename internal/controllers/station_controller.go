package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"forklift_tracker/internal/models"
)

// StationController owns the station reference-data CRUD. Stations feed
// the classifier's charging rule, so type and RFID tag handling matter
// more than the descriptive fields.
type StationController struct {
	DB *gorm.DB
}

// StationResponse mirrors models.Station with the WKB geometry rendered
// as a GeoJSON string for API consumers.
type StationResponse struct {
	models.Station
	Geometry string `json:"geometry,omitempty"`
}

func toStationResponse(s models.Station) StationResponse {
	geoJSON, _ := convertWKBToGeoJSON(s.Geometry)
	return StationResponse{Station: s, Geometry: geoJSON}
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string.
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *StationController) List(c *gin.Context) {
	q := s.DB.Order("station_id")
	if stationType := c.Query("type"); stationType != "" {
		q = q.Where("type = ?", stationType)
	}

	var stations []models.Station
	if err := q.Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "error listing stations"})
		return
	}

	out := make([]StationResponse, 0, len(stations))
	for _, st := range stations {
		out = append(out, toStationResponse(st))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(out), "data": out})
}

func (s *StationController) Get(c *gin.Context) {
	id := c.Param("stationId")

	var station models.Station
	if err := s.DB.Where("station_id = ?", id).First(&station).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "station not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toStationResponse(station)})
}

func (s *StationController) Create(c *gin.Context) {
	var input models.Station
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid station input: " + err.Error()})
		return
	}

	if !validStationType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid station type"})
		return
	}

	wkbGeom, err := models.PointWKB(input.Latitude, input.Longitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid location: " + err.Error()})
		return
	}
	input.Geometry = wkbGeom
	input.Active = true

	if err := s.DB.Create(&input).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "station_id or rfid_tag_id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create station: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toStationResponse(input)})
}

func (s *StationController) Update(c *gin.Context) {
	id := c.Param("stationId")

	var station models.Station
	if err := s.DB.Where("station_id = ?", id).First(&station).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "station not found"})
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Type        *string  `json:"type"`
		RFIDTagID   *string  `json:"rfid_tag_id"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		Floor       *string  `json:"floor"`
		Zone        *string  `json:"zone"`
		Description *string  `json:"description"`
		Active      *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if input.Name != nil {
		station.Name = *input.Name
	}
	if input.Type != nil {
		if !validStationType(*input.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid station type"})
			return
		}
		station.Type = *input.Type
	}
	if input.RFIDTagID != nil {
		station.RFIDTagID = input.RFIDTagID
	}
	if input.Latitude != nil {
		station.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		station.Longitude = *input.Longitude
	}
	if input.Floor != nil {
		station.Floor = *input.Floor
	}
	if input.Zone != nil {
		station.Zone = *input.Zone
	}
	if input.Description != nil {
		station.Description = *input.Description
	}
	if input.Active != nil {
		station.Active = *input.Active
	}

	if input.Latitude != nil || input.Longitude != nil {
		wkbGeom, err := models.PointWKB(station.Latitude, station.Longitude)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid location: " + err.Error()})
			return
		}
		station.Geometry = wkbGeom
	}

	if err := s.DB.Save(&station).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "rfid_tag_id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update station"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toStationResponse(station)})
}

func (s *StationController) Delete(c *gin.Context) {
	id := c.Param("stationId")

	var station models.Station
	if err := s.DB.Where("station_id = ?", id).First(&station).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "station not found"})
		return
	}

	if err := s.DB.Delete(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete station"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "station deleted"})
}

func validStationType(t string) bool {
	switch t {
	case "loading", "unloading", "storage", "charging", "maintenance", "production", "other":
		return true
	}
	return false
}
