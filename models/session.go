package models

import (
	"time"
)

// Session binds an opaque bearer token to a user. Rows are deactivated on
// logout or detected user inactivity, never deleted.
type Session struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Token        string    `gorm:"uniqueIndex;not null" json:"token"`
	UserID       uint      `gorm:"not null" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}
