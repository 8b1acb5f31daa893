package handlers

import (
	"context"
	"net/http"
	"time"

	"customer-insights/internal/errors"

	"github.com/labstack/echo/v4"
)

// RootMessage is the plain-text liveness body of the API root
const RootMessage = "App is running.."

// DatasetPinger reports whether the dataset source can be reached
type DatasetPinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the liveness and health check endpoints
type HealthCheckHandler struct {
	source DatasetPinger
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(source DatasetPinger) *HealthCheckHandler {
	return &HealthCheckHandler{source: source}
}

// Root answers the API base path
// @Summary Liveness
// @Tags Health
// @Produce plain
// @Success 200 {string} string "App is running.."
// @Router / [get]
func (h *HealthCheckHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, RootMessage)
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and dataset source availability
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (dataset source unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.source.Ping(ctx); err != nil {
		traceID := getTraceIDFromContext(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Dataset source unavailable"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		if tid, ok := c.Get(TraceIDContextKey).(string); ok {
			traceID = tid
		}
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
