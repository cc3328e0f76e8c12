package http

import (
	"errors"
	"net/http"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/otp"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	// ErrNotAuthenticated is returned when a request carries no valid principal.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the principal's role may not use the route.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidRequestBody is returned when a body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MissingFieldsResponse lists the fields a client must fill in.
type MissingFieldsResponse struct {
	Error
	Fields []string `json:"fields"`
}

// CodeResponse answers code verification requests.
type CodeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RedirectResponse tells the delivery client which screen to show.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
	Status   string `json:"status,omitempty"`
	Message  string `json:"message,omitempty"`
}

// statusOf maps an application error to its HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, agent.ErrInvalidCode), errors.Is(err, otp.ErrCodeMismatch), errors.Is(err, otp.ErrCodeNotIssued):
		return http.StatusUnauthorized
	case errors.Is(err, otp.ErrCodeExpired):
		return http.StatusGone
	case errors.Is(err, agent.ErrOrderSheetNotFound), errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, agent.ErrAgentIsBusy),
		errors.Is(err, agent.ErrNoActiveDelivery),
		errors.Is(err, agent.ErrOrderIsNotActive),
		errors.Is(err, order.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, cart.ErrCartIsEmpty),
		errors.Is(err, ErrInvalidRequestBody),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with the status statusOf assigns to it. Internal
// errors are not echoed back to the client.
func writeError(ctx echo.Context, err error) error {
	code := statusOf(err)

	switch {
	case errors.Is(err, agent.ErrInvalidCode), errors.Is(err, otp.ErrCodeMismatch), errors.Is(err, otp.ErrCodeNotIssued):
		return ctx.JSON(code, CodeResponse{Success: false, Message: err.Error()})
	case errors.Is(err, agent.ErrOrderSheetNotFound):
		return ctx.JSON(code, RedirectResponse{Redirect: "home", Message: err.Error()})
	}

	var missing *errs.MissingFieldsError
	if errors.As(err, &missing) {
		return ctx.JSON(code, MissingFieldsResponse{
			Error:  Error{Code: code, Message: err.Error()},
			Fields: missing.Fields,
		})
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}
