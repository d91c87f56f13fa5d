// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PaymentOutput carries the simulated-success message.
type PaymentOutput struct {
	Message string
}

// PaymentUsecase defines the interface for the payment placeholder.
// There is no gateway behind it; every call reports a simulated success and
// moves no money. Not safe for real card data.
type PaymentUsecase interface {
	ProcessPayment(ctx context.Context, userID uuid.UUID) (*PaymentOutput, error)
}
