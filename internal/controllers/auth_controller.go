package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"forklift_tracker/internal/middleware"
	"forklift_tracker/internal/models"
)

// AuthController owns authentication and account self-service endpoints.
type AuthController struct {
	DB *gorm.DB
}

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

// Register creates a new account. Admin only; freshly created accounts are
// not logged in automatically.
func (a *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	role, err := validateAndNormalizeRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if msg, ok := passwordStrength(input.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not hash password"})
		return
	}

	user := models.User{
		Username: strings.ToLower(strings.TrimSpace(input.Username)),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hash),
		FullName: input.FullName,
		Role:     role,
		IsActive: true,
	}

	if err := a.DB.Create(&user).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "username or email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create user: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// Login authenticates by username or email and returns a bearer token.
func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	handle := strings.ToLower(strings.TrimSpace(body.Username))

	var user models.User
	err := a.DB.Where("username = ? OR email = ?", handle, handle).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid username or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database error"})
		}
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "account has been deactivated"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid username or password"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not generate token"})
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := a.DB.Model(&user).Update("last_login", now).Error; err != nil {
		logrus.WithError(err).Warn("failed to record last login")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// Me returns the authenticated user.
func (a *AuthController) Me(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := a.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ChangePassword verifies the old password and stores a new one.
func (a *AuthController) ChangePassword(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var body struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if msg, ok := passwordStrength(body.NewPassword); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	var user models.User
	if err := a.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.OldPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "old password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not hash password"})
		return
	}

	if err := a.DB.Model(&user).Update("password", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated"})
}

// Logout acknowledges the request; the client discards its token.
func (a *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logout successful"})
}

func validateAndNormalizeRole(roleInput string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(roleInput))
	if role == "" {
		role = "viewer"
	}
	switch role {
	case "admin", "operator", "viewer":
		return role, nil
	default:
		return "", errors.New("invalid role")
	}
}

// passwordStrength enforces the minimum policy: 8+ chars with at least one
// letter and one digit.
func passwordStrength(password string) (string, bool) {
	if len(password) < 8 {
		return "password must be at least 8 characters", false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return "password must contain at least one letter and one digit", false
	}
	return "", true
}
