package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/lunchledger/internal/storage"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	store storage.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /healthz. It pings the database so a wedged storage
// backend shows up as unhealthy.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
