package impl

import (
	"context"
	"log/slog"

	"patron/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// paymentSimulatedMessage is the fixed response of the payment placeholder.
const paymentSimulatedMessage = "Payment processed successfully (simulated)"

// paymentService implements the PaymentUsecase interface.
// It performs no monetary movement and validates no payment payload; the
// endpoint exists so the authenticated surface is complete. Never point real
// card data at it.
type paymentService struct {
	logger *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{logger: params.Logger}
}

// ProcessPayment always reports a simulated success.
func (srv *paymentService) ProcessPayment(_ context.Context, userID uuid.UUID) (*usecase.PaymentOutput, error) {
	srv.logger.Info("Simulated payment processed", slog.Any("userID", userID))

	return &usecase.PaymentOutput{Message: paymentSimulatedMessage}, nil
}
