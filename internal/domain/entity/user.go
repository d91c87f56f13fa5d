// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity in the system, representing one registered account.
// PasswordHash is never serialized to API responses; delivery maps the entity
// to a redacted view before writing it out.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The account's login identifier. Unique across all accounts.
	PasswordHash string    // One-way bcrypt hash of the account's password.
	FullName     string
	Phone        string
	Country      string
	City         string
	ZipCode      string
	ReferralCode string    // System-generated sponsorship code. Unique, assigned once at creation.
	ReferredBy   string    // Sponsor's referral code supplied at registration. Empty if none. Never mutated.
	Balance      float64   // Commission balance. Mutated only by another account's registration.
	Points       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
