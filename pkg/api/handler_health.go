package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/switchyard-ai/switchyard/pkg/services"
	"github.com/switchyard-ai/switchyard/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Unauthenticated by design so
// orchestration platforms can probe it; only the database is checked,
// never the LLM service, so an upstream outage does not trigger restarts.
// Active system warnings degrade the status but keep the 200, for the
// same reason.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy
	dbHealth, err := s.db.Health(reqCtx)
	if err != nil {
		status = healthStatusUnhealthy
	}

	var warnings []*services.SystemWarning
	if s.warnings != nil {
		warnings = s.warnings.GetWarnings()
	}
	if status == healthStatusHealthy && len(warnings) > 0 {
		status = healthStatusDegraded
	}

	resp := &HealthResponse{
		Status:   status,
		Version:  version.Full(),
		Database: dbHealth,
		Warnings: warnings,
	}
	if s.bus != nil {
		stats := s.bus.Stats()
		resp.EventBus = &stats
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}
