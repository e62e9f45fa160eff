package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

const defaultAnalyticsWindow = 24 * time.Hour

// parseWindow reads the ?window= query parameter (Go duration syntax).
func parseWindow(c *echo.Context) (time.Duration, error) {
	v := c.QueryParam("window")
	if v == "" {
		return defaultAnalyticsWindow, nil
	}
	window, err := time.ParseDuration(v)
	if err != nil || window <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid window: must be a positive duration like 24h")
	}
	return window, nil
}

// taskAnalyticsHandler handles GET /api/v1/analytics/tasks?window=24h.
func (s *Server) taskAnalyticsHandler(c *echo.Context) error {
	if s.archive == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "analytics not available")
	}
	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	stats, err := s.archive.TaskAnalytics(c.Request().Context(), window)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// agentAnalyticsHandler handles GET /api/v1/analytics/agents?window=24h.
func (s *Server) agentAnalyticsHandler(c *echo.Context) error {
	if s.archive == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "analytics not available")
	}
	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	stats, err := s.archive.AgentAnalytics(c.Request().Context(), window)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
