package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"natal-chart-service/internal/api/dto"
)

// HealthHandler serves liveness probes and the public status banner.
type HealthHandler struct {
	ServiceName string
	Version     string
}

// Status provides a minimal liveness check endpoint.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Service:   h.ServiceName,
		Version:   h.Version,
		Timestamp: time.Now().UTC(),
	})
}

// Root answers the bare path with the running banner that existing clients
// still poll.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "Astrology API is running!"})
}
