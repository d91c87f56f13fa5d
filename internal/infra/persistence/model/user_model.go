// Package model contains the GORM persistence models.
// Models mirror the database schema; mapping to and from domain entities
// happens in the repository layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the persisted shape of an account. Email and referral code
// carry the only uniqueness constraints in the system.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	FullName     string    `gorm:"size:255"`
	Phone        string    `gorm:"size:64"`
	Country      string    `gorm:"size:128"`
	City         string    `gorm:"size:128"`
	ZipCode      string    `gorm:"size:32"`
	ReferralCode string    `gorm:"size:32;uniqueIndex;not null"`
	ReferredBy   string    `gorm:"size:32;index"`
	Balance      float64   `gorm:"not null;default:0"`
	Points       int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "users"
}
