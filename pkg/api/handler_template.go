package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listTemplatesHandler handles GET /api/v1/templates.
func (s *Server) listTemplatesHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.registry.List())
}
