package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness, readiness, and API health endpoints.
type HealthHandler struct {
	gatewayName string
	mockMode    bool
}

// NewHealthHandler creates a health handler reporting the active gateway.
func NewHealthHandler(gatewayName string, mockMode bool) *HealthHandler {
	return &HealthHandler{gatewayName: gatewayName, mockMode: mockMode}
}

// HandleHealth returns the liveness status of the service.
// Used for Cloud Run liveness probe.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"gateway":   h.gatewayName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleReadiness returns whether the service is ready to accept traffic.
// Used for Cloud Run startup probe.
func (h *HealthHandler) HandleReadiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"gateway": h.gatewayName,
	})
}

// HandleAPIHealth reports the operating mode to API clients.
func (h *HealthHandler) HandleAPIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"mock_mode": h.mockMode,
	})
}
