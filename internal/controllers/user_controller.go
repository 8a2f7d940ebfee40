package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"forklift_tracker/internal/models"
)

// UserController is the admin user-management surface.
type UserController struct {
	DB *gorm.DB
}

func (u *UserController) List(c *gin.Context) {
	var users []models.User
	if err := u.DB.Order("username").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "error listing users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "data": users})
}

func (u *UserController) Update(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := u.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}

	var input struct {
		FullName *string `json:"full_name"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		role, err := validateAndNormalizeRole(*input.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		user.Role = role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := u.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (u *UserController) Delete(c *gin.Context) {
	id := c.Param("id")
	requesterID := c.MustGet("user_id").(uint)

	var user models.User
	if err := u.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}

	if user.ID == requesterID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cannot delete your own account"})
		return
	}

	if err := u.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "user deleted"})
}
