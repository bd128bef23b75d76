package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labelprint/backend/internal/interfaces/http/dto"
)

// HealthHandler reports process liveness
type HealthHandler struct {
	BaseHandler
	name      string
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(name string) *HealthHandler {
	return &HealthHandler{
		name:      name,
		startTime: time.Now(),
	}
}

// Healthz responds 200 while the process is serving
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:    "ok",
		Name:      h.name,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	}))
}
