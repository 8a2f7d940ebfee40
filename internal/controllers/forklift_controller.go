package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"forklift_tracker/internal/models"
)

// ForkliftController owns the forklift CRUD surface. Note that telemetry
// ingest also creates forklift rows (auto-registration), so Create here is
// for pre-provisioning units with proper names before they first report.
type ForkliftController struct {
	DB *gorm.DB
}

func (f *ForkliftController) List(c *gin.Context) {
	var forklifts []models.Forklift
	if err := f.DB.Order("forklift_id").Find(&forklifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "error listing forklifts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(forklifts), "data": forklifts})
}

func (f *ForkliftController) Get(c *gin.Context) {
	id := c.Param("forkliftId")

	var forklift models.Forklift
	if err := f.DB.Where("forklift_id = ?", id).First(&forklift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "forklift not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": forklift})
}

func (f *ForkliftController) Create(c *gin.Context) {
	var input struct {
		ForkliftID    string `json:"forklift_id" binding:"required"`
		Name          string `json:"name" binding:"required"`
		ForkliftModel string `json:"forklift_model"`
		SerialNumber  string `json:"serial_number"`
		Status        string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid forklift input: " + err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = "active"
	}
	if !validForkliftStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status must be active, inactive or maintenance"})
		return
	}

	forklift := models.Forklift{
		ForkliftID:    input.ForkliftID,
		Name:          input.Name,
		ForkliftModel: input.ForkliftModel,
		SerialNumber:  input.SerialNumber,
		Status:        status,
	}

	if err := f.DB.Create(&forklift).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "forklift_id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create forklift: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": forklift})
}

// Update applies administrative edits only. Activity, battery, location
// and last-seen belong to the ingestion pipeline and are not writable
// here.
func (f *ForkliftController) Update(c *gin.Context) {
	id := c.Param("forkliftId")

	var forklift models.Forklift
	if err := f.DB.Where("forklift_id = ?", id).First(&forklift).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "forklift not found"})
		return
	}

	var input struct {
		Name          *string `json:"name"`
		ForkliftModel *string `json:"forklift_model"`
		SerialNumber  *string `json:"serial_number"`
		Status        *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid update"})
		return
	}

	if input.Name != nil {
		forklift.Name = *input.Name
	}
	if input.ForkliftModel != nil {
		forklift.ForkliftModel = *input.ForkliftModel
	}
	if input.SerialNumber != nil {
		forklift.SerialNumber = *input.SerialNumber
	}
	if input.Status != nil {
		if !validForkliftStatus(*input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status must be active, inactive or maintenance"})
			return
		}
		forklift.Status = *input.Status
	}

	if err := f.DB.Save(&forklift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update forklift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": forklift})
}

func (f *ForkliftController) Delete(c *gin.Context) {
	id := c.Param("forkliftId")

	var forklift models.Forklift
	if err := f.DB.Where("forklift_id = ?", id).First(&forklift).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "forklift not found"})
		return
	}

	if err := f.DB.Delete(&forklift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete forklift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "forklift deleted"})
}

func validForkliftStatus(s string) bool {
	switch s {
	case "active", "inactive", "maintenance":
		return true
	}
	return false
}
