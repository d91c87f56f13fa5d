package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the identity carried by a bearer token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed token bound to the given account identity.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken checks the validity of a token string and decodes its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
