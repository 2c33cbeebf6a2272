package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
	"github.com/padgame/pad_backend/internal/middleware"
)

// healthHandler reports service and database health.
type healthHandler struct {
	healthRepo  portsrepo.HealthRepository
	serviceName string
}

// RegisterHealthRoutes registers the health endpoint under the given
// service name.
func RegisterHealthRoutes(r gin.IRouter, healthRepo portsrepo.HealthRepository, serviceName string) {
	h := &healthHandler{healthRepo: healthRepo, serviceName: serviceName}
	r.GET("/health", h.getHealth)
}

// getHealth godoc
// @Summary Health check
// @Description Confirms database connectivity with a trivial query
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string "Service is healthy"
// @Failure 500 {object} map[string]string "Database unreachable"
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.healthRepo.Check(c.Request.Context()); err != nil {
		logger.Error("Health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "ERROR",
			"service": h.serviceName,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   h.serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
