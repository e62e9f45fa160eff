package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	userID := req.UserID
	if userID == "" {
		userID = extractUser(c)
	}

	taskID, err := s.coordinator.CreateTask(c.Request().Context(), userID, req.Query, req.Template)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &CreateTaskResponse{TaskID: taskID})
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	rec, err := s.coordinator.GetStatus(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, statusResponse(rec))
}

// getProgressHandler handles GET /api/v1/tasks/:id/progress?since=RFC3339.
func (s *Server) getProgressHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var since time.Time
	if v := c.QueryParam("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since: must be RFC3339")
		}
		since = t
	}

	events, err := s.coordinator.GetProgress(c.Request().Context(), taskID, since)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, events)
}

// abortTaskHandler handles POST /api/v1/tasks/:id/abort. Aborting an
// already-terminal task is not an error; the current status is returned
// either way.
func (s *Server) abortTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	status, err := s.coordinator.Abort(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &AbortResponse{TaskID: taskID, Status: string(status)})
}

// recentTasksHandler handles GET /api/v1/users/:id/tasks.
func (s *Server) recentTasksHandler(c *echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	taskIDs, err := s.store.RecentTasks(c.Request().Context(), userID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &RecentTasksResponse{UserID: userID, TaskIDs: taskIDs})
}
