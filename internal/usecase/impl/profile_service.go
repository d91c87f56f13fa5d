package impl

import (
	"context"
	"log/slog"

	"patron/internal/domain/entity"
	domainerrors "patron/internal/domain/errors"
	"patron/internal/domain/repository"
	"patron/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// GetProfile fetches the account for an authenticated identity. The token can
// outlive the account, so absence maps to a not-found error rather than an
// internal one.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Warn("Profile fetch for vanished account", slog.Any("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile fetch failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}
