package handlers

import (
	"context"
	"net/http"
	"time"

	"spenzly/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// DatabaseChecker is satisfied by *database.DB.
type DatabaseChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    DatabaseChecker
	redis redis.Cmdable
}

// NewHealthCheckHandler creates a new health check handler. redisClient may
// be nil when the invalidation stream is disabled.
func NewHealthCheckHandler(db DatabaseChecker, redisClient redis.Cmdable) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, redis: redisClient}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API, database and invalidation stream connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,redis=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	body := map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}

	// The stream only carries cache hints, so an outage degrades instead of failing.
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			body["status"] = "degraded"
			body["redis"] = "unavailable"
		} else {
			body["redis"] = "ok"
		}
	}

	return c.JSON(http.StatusOK, body)
}
