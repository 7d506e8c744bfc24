package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
)

// HealthChecker is satisfied by the storage backend
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and storage readiness
type HealthHandler struct {
	checker HealthChecker
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.checker.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
