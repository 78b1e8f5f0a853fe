package handlers

import (
	"net/http"
	"time"

	"shelby-dashboard/internal/config"
	"shelby-dashboard/internal/errors"
	"shelby-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	cfg     *config.Config
	breaker services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(cfg *config.Config, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{cfg: cfg, breaker: breaker}
}

// HealthCheck reports service liveness and spreadsheet upstream status
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "healthy"
//   - fetch_mode: api, csv or sample
//   - upstream: breaker state (closed, open, half-open)
//   - time: ISO 8601 timestamp
//
// Returns 503 with SYSTEM_002 while the circuit breaker is open.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.breaker.IsOpen() {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Spreadsheet upstream circuit breaker is open"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":     "healthy",
		"fetch_mode": h.cfg.Sheets.FetchMode,
		"upstream":   h.breaker.GetState().String(),
		"time":       time.Now().UTC().Format(time.RFC3339),
	})
}
