package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string     `json:"username" gorm:"uniqueIndex"`
	Email     string     `json:"email" gorm:"uniqueIndex"`
	Password  string     `json:"-"` // bcrypt hash, never serialized
	FullName  string     `json:"full_name"`
	Role      string     `json:"role" gorm:"default:viewer"` // "admin", "operator", "viewer"
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
