// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"patron/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// ReferralCode, when present, names the sponsor entitled to the commission.
type RegisterInput struct {
	Email        string `json:"email" validate:"required"`
	Password     string `json:"password" validate:"required"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Country      string `json:"country"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	ReferralCode string `json:"referralCode"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the issued token and the new account's referral code.
type RegisterOutput struct {
	Token        string
	ReferralCode string
	User         *entity.User
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
