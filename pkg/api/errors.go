package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ragweave/maestro/pkg/coordinator"
	"github.com/ragweave/maestro/pkg/models"
)

// mapServiceError maps coordinator-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	switch coordinator.Classify(err) {
	case models.ErrKindInvalidInput:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case models.ErrKindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	case models.ErrKindConflict:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case models.ErrKindBrokerUnavailable, models.ErrKindStoreUnavailable:
		return echo.NewHTTPError(http.StatusServiceUnavailable, "backend unavailable")
	default:
		slog.Error("Unexpected service error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
