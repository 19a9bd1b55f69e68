package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"spenzly/internal/errors"
	"spenzly/internal/services"
	"spenzly/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through two helpers only:
//
//	SendError       client and business errors (4xx) with a registered code
//	SendSystemError internal failures (5xx); the cause is logged, never returned
//
// sendLedgerError translates service sentinels into one of the two.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendValidationError reports struct validation failures field by field.
func sendValidationError(c echo.Context, err error) error {
	if fields, ok := validation.FieldErrors(err); ok {
		traceID := getTraceID(c)
		errorResponse := errors.NewValidationError(fields, traceID)
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

// sendLedgerError maps a ledger service error onto the HTTP error contract.
func sendLedgerError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrUnauthenticated):
		return SendError(c, errors.AuthUnauthenticated)
	case stderrors.Is(err, services.ErrUserNotFound):
		return SendError(c, errors.UserNotFound)
	case stderrors.Is(err, services.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidAccountName):
		return SendError(c, errors.AccountInvalidName, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidAccountType):
		return SendError(c, errors.AccountInvalidType, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrInvalidTransaction):
		return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
	case stderrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.SystemRequestTimeout)
	default:
		return SendSystemError(c, err)
	}
}
