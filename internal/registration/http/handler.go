package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sofia-hackathon/registration/internal/logging"
	"github.com/sofia-hackathon/registration/internal/registration/domain"
)

// GenericFailure is the only error text the relay returns to the form
const GenericFailure = "Failed to submit form"

// Forwarder delivers a record to the external endpoint
type Forwarder interface {
	Forward(ctx context.Context, rec domain.FormRecord) error
}

// Handler serves the form submission route
type Handler struct {
	relay Forwarder
}

func New(relay Forwarder) *Handler {
	return &Handler{relay: relay}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/submit", h.Submit)
}

// SubmitResponse is the success body
type SubmitResponse struct {
	Success bool `json:"success"`
}

// Submit relays the posted FormRecord. The record is not validated here.
func (h *Handler) Submit(c *gin.Context) {
	logger := logging.New(c.Request.Context())

	var rec domain.FormRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		logger.LogWarnf("submit", "invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.relay.Forward(c.Request.Context(), rec); err != nil {
		logger.LogErrorf("submit", "relay failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": GenericFailure})
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{Success: true})
}
