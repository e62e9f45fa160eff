package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/ragweave/maestro/pkg/database"
	"github.com/ragweave/maestro/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /healthz.
// Only maestro's own backing stores are checked. Externals (model provider,
// vector index) are excluded so their outages cannot restart the control
// plane.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if err := s.store.Ping(reqCtx); err != nil {
		status = healthStatusUnhealthy
		checks["task_store"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["task_store"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.dbClient != nil {
		if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["archive"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["archive"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	code := http.StatusOK
	if status == healthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, &HealthResponse{Status: status, Version: version.Full(), Checks: checks})
}
