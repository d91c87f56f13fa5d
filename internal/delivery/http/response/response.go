package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error payload: a single "error" field carrying the
// user-facing message.
type ErrorBody struct {
	Error string `json:"error"`
}

// RegisterBody is the success payload of POST /api/auth/register.
type RegisterBody struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	ReferralCode string `json:"referralCode"`
}

// LoginBody is the success payload of POST /api/auth/login.
type LoginBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageBody is a bare message payload, used by the payment stub.
type MessageBody struct {
	Message string `json:"message"`
}

// Error writes the uniform error payload with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// InternalServerError is a 500 error.
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
