package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// healthCheck is one dependency probed by /status.
type healthCheck struct {
	name string
	ping func(ctx context.Context) error
}

func (h *HealthHandler) checks() []healthCheck {
	var checks []healthCheck

	if h.server.DB != nil {
		checks = append(checks, healthCheck{name: "database", ping: h.server.DB.Ping})
	}
	if h.server.Redis != nil {
		checks = append(checks, healthCheck{name: "redis", ping: func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}})
	}
	if h.server.Storage != nil {
		checks = append(checks, healthCheck{name: "storage", ping: h.server.Storage.Ping})
	}

	return checks
}

// CheckHealth pings every enabled dependency. Any failure turns the
// response into a 503.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	observability := h.server.Config.Observability
	timeout := 5 * time.Second
	if observability != nil && observability.HealthChecks.Timeout > 0 {
		timeout = observability.HealthChecks.Timeout
	}

	results := make(map[string]any)
	isHealthy := true

	for _, check := range h.checks() {
		if observability != nil && !observability.HealthCheckEnabled(check.name) {
			continue
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()

		if err != nil {
			isHealthy = false
			results[check.name] = map[string]any{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			h.recordFailure(check.name, err, time.Since(checkStart))
			continue
		}

		results[check.name] = map[string]any{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      results,
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(name string, err error, elapsed time.Duration) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       name,
		"operation":        "health_check",
		"error_type":       name + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
