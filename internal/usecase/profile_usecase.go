// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"patron/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related operations.
type ProfileUsecase interface {
	// GetProfile fetches the account owning the authenticated identity.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
