package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// metricsHandler handles GET /api/v1/events/metrics.
func (s *Server) metricsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}

// sessionMetricsHandler handles GET /api/v1/events/metrics/session/:id.
func (s *Server) sessionMetricsHandler(c *gin.Context) {
	sessionID := c.Param("id")
	snap, ok := s.sessionMetrics.Snapshot(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, newErrorResponse("not_found", "no metrics recorded for session"))
		return
	}

	c.JSON(http.StatusOK, snap)
}
