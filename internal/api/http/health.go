package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Relay     string    `json:"relay"`
}

type HealthHandler struct {
	serviceName     string
	version         string
	relayConfigured bool
}

func NewHealthHandler(serviceName, version string, relayConfigured bool) *HealthHandler {
	return &HealthHandler{
		serviceName:     serviceName,
		version:         version,
		relayConfigured: relayConfigured,
	}
}

// HealthCheck never calls the external endpoint; it only reports whether one is set.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	relayStatus := "not_configured"
	if h.relayConfigured {
		relayStatus = "configured"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Relay:     relayStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
