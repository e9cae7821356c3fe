package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/lazy-virtuoso/internal/middleware"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AliveMessage is returned by the root liveness endpoint.
const AliveMessage = "THE LAZY VIRTUOSO backend is alive"

// HealthHandler serves the liveness, store report and dependency
// health endpoints.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Root answers GET / so load balancers can tell the process is up.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": AliveMessage})
}

// StoreReport answers GET /test with the document store report. It is
// always 200: a missing or failing store shows up in the body. The store
// gets the health check timeout, so an unreachable server is reported
// well before the HTTP write deadline.
func (h *HealthHandler) StoreReport(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	return c.JSON(http.StatusOK, h.server.DB.HealthCheck(ctx))
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// CheckHealth answers GET /status: 200 when every required dependency
// answers, 503 otherwise. Redis only backs the email jobs, so a failing
// Redis is reported without failing the check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]checkResult)
	isHealthy := true

	if cfg.HealthCheckEnabled("database") {
		result := h.runCheck(c.Request().Context(), &logger, "database", h.server.DB.Ping)
		checks["database"] = result
		if result.Status != "healthy" {
			isHealthy = false
		}
	}

	if h.server.Redis != nil && cfg.HealthCheckEnabled("redis") {
		checks["redis"] = h.runCheck(c.Request().Context(), &logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(ctx context.Context, logger *zerolog.Logger, name string, ping func(context.Context) error) checkResult {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":       name,
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]any) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	attrs["operation"] = "health_check"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}
