package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"customer-insights/internal/errors"
	"customer-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and lookup misses (4xx responses)
//    Use cases:
//    - Malformed body: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Missing identifier: SendError(c, errors.ValidationRequiredField)
//    - Not found errors: SendError(c, errors.CustomerNotFound)
//
// 2. SendServiceError - For errors returned by the query services
//    Maps every service error kind to its code; unknown errors become SendSystemError.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//    Unexpected errors that should not expose internal details to client
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

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
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("Internal error while handling request",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError converts a query service error into its standardized response
func SendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidFormat):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrMissingField):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrBatchNotFound):
		return SendError(c, errors.TransactionBatchNotFound, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case stderrors.Is(err, services.ErrDecode):
		logDataError(c, err)
		return SendError(c, errors.PredictionDecodeFailed)
	case stderrors.Is(err, services.ErrSchemaMismatch):
		logDataError(c, err)
		return SendError(c, errors.PredictionSchemaMismatch)
	case stderrors.Is(err, services.ErrDatasetUnavailable):
		traceID := getTraceID(c)
		errorResponse, internalErr := errors.WrapDatasetError(err, traceID)
		slog.Error("Dataset unavailable",
			"trace_id", traceID,
			"path", c.Request().URL.Path,
			"error", internalErr,
		)
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	default:
		return SendSystemError(c, err)
	}
}

// logDataError records corrupt stored data; the client only sees the error code
func logDataError(c echo.Context, err error) {
	slog.Error("Stored dataset row is invalid",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"error", err,
	)
}
