// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"patron/internal/delivery/http/response"
	domainerrors "patron/internal/domain/errors"
	"patron/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for registration and login handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Email and password required")
	}

	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrEmailPasswordRequired, "registration input validation failed")
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.RegisterBody{
		Message:      "User registered successfully",
		Token:        output.Token,
		ReferralCode: output.ReferralCode,
	})
}

// Login handles the account login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "Email and password required")
	}

	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrEmailPasswordRequired, "login input validation failed")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.LoginBody{
		Message: "Login successful",
		Token:   output.Token,
	})
}
