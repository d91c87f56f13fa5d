package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"patron/internal/delivery/http/middleware"
	"patron/internal/delivery/http/validator"
	"patron/internal/domain/entity"
	"patron/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance with the production error handler and
// request validator so handler tests observe the same status codes and bodies
// clients see.
func newTestEcho() *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setIdentity simulates the session guard having authenticated the request.
func setIdentity(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyUserID, userID)
			c.Set(middleware.ContextKeyEmail, "alice@example.com")

			return next(c)
		}
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// fakeAccountUsecase returns canned outputs and records the last inputs.
type fakeAccountUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error

	lastRegisterInput *usecase.RegisterInput
	lastLoginInput    *usecase.LoginInput
}

func (f *fakeAccountUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.lastRegisterInput = input
	if f.registerErr != nil {
		return nil, f.registerErr
	}

	return f.registerOutput, nil
}

func (f *fakeAccountUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	f.lastLoginInput = input
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return f.loginOutput, nil
}

// fakeProfileUsecase returns a canned profile or error.
type fakeProfileUsecase struct {
	user *entity.User
	err  error

	lastUserID uuid.UUID
}

func (f *fakeProfileUsecase) GetProfile(_ context.Context, userID uuid.UUID) (*entity.User, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}

	return f.user, nil
}

// fakePaymentUsecase returns a canned payment result.
type fakePaymentUsecase struct {
	output *usecase.PaymentOutput
	err    error

	lastUserID uuid.UUID
}

func (f *fakePaymentUsecase) ProcessPayment(_ context.Context, userID uuid.UUID) (*usecase.PaymentOutput, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}

	return f.output, nil
}
