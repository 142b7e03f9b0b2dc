package handlers

import (
	"net/http"
	"time"

	"tagalog-nlp-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler exposes the aggregated request log.
type MonitoringHandler struct {
	service *services.MonitoringService
}

// NewMonitoringHandler creates the handler.
func NewMonitoringHandler(service *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{service: service}
}

// GetLogs returns the request-log snapshot for a period (1h, 24h, 7d).
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	var period time.Duration
	switch c.DefaultQuery("period", "24h") {
	case "1h":
		period = time.Hour
	case "7d":
		period = 7 * 24 * time.Hour
	default:
		period = 24 * time.Hour
	}

	c.JSON(http.StatusOK, h.service.Snapshot(period))
}
