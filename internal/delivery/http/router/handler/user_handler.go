package handler

import (
	"log/slog"
	"net/http"
	"time"

	"patron/internal/delivery/http/middleware"
	"patron/internal/domain/entity"
	domainerrors "patron/internal/domain/errors"
	"patron/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the authenticated profile handler.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// profileView is the redacted account record returned by /api/user/me.
// The password hash never appears here.
type profileView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	ZipCode      string    `json:"zipCode"`
	ReferralCode string    `json:"referralCode"`
	ReferredBy   string    `json:"referredBy,omitempty"`
	Balance      float64   `json:"balance"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Me handles the request to get the current account's profile.
func (h *UserHandler) Me(c echo.Context) error {
	userIDVal := c.Get(middleware.ContextKeyUserID)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "no authenticated identity on request")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toProfileView(user))
}

func toProfileView(user *entity.User) profileView {
	return profileView{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Phone:        user.Phone,
		Country:      user.Country,
		City:         user.City,
		ZipCode:      user.ZipCode,
		ReferralCode: user.ReferralCode,
		ReferredBy:   user.ReferredBy,
		Balance:      user.Balance,
		Points:       user.Points,
		CreatedAt:    user.CreatedAt,
	}
}
