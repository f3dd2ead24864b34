package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/shared/logger"
)

const healthTimeout = 2 * time.Second

// HealthCheck pings one backing service.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks  map[string]HealthCheck
	version string
	logger  logger.Interface
}

func NewHealthHandler(checks map[string]HealthCheck, version string, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		checks:  checks,
		version: version,
		logger:  logger,
	}
}

// Health handles GET /health. Any failing check turns the response into a 503.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warnw("health check failed", "check", name, "error", err)
			results[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "up"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{
		"status":  overall,
		"version": h.version,
		"checks":  results,
	})
}
