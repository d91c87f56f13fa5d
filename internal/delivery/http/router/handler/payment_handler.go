package handler

import (
	"log/slog"
	"net/http"

	"patron/internal/delivery/http/middleware"
	"patron/internal/delivery/http/response"
	domainerrors "patron/internal/domain/errors"
	"patron/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for the payment placeholder endpoint.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Process handles the simulated payment request. The request body is ignored.
func (h *PaymentHandler) Process(c echo.Context) error {
	userIDVal := c.Get(middleware.ContextKeyUserID)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "no authenticated identity on request")
	}

	output, err := h.uc.ProcessPayment(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.MessageBody{Message: output.Message})
}
