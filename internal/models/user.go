// Package models contains data structures for the JavaConnect domain.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered JavaConnect user. The JSON field names are the
// wire contract consumed by the frontend and must not change.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserName string `gorm:"uniqueIndex;not null" json:"userName"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	// Blocked users may not log in; moderation sets this server-side.
	Blocked bool `gorm:"default:false" json:"blocked"`
	// Token is issued on login/register and never persisted.
	Token     string         `gorm:"-" json:"token,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
