package api

import (
	"time"

	"github.com/ragweave/maestro/pkg/models"
)

// contextExcerptLimit bounds the context excerpt in status responses; the
// full accumulated context stays internal to the pipeline.
const contextExcerptLimit = 512

// CreateTaskRequest is the body of POST /api/v1/tasks.
type CreateTaskRequest struct {
	Query    string `json:"query"`
	UserID   string `json:"user_id,omitempty"`
	Template string `json:"template,omitempty"`
}

// CreateTaskResponse is returned by POST /api/v1/tasks.
type CreateTaskResponse struct {
	TaskID string `json:"task_id"`
}

// AbortResponse is returned by POST /api/v1/tasks/:id/abort.
type AbortResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskStatusResponse is the trimmed task record returned by
// GET /api/v1/tasks/:id.
type TaskStatusResponse struct {
	TaskID          string            `json:"task_id"`
	UserID          string            `json:"user_id"`
	Query           string            `json:"query"`
	TemplateName    string            `json:"template_name"`
	Plan            []string          `json:"plan"`
	CompletedStages []string          `json:"completed_stages"`
	CurrentStage    string            `json:"current_stage,omitempty"`
	Status          models.TaskStatus `json:"status"`
	ContextExcerpt  string            `json:"context_excerpt,omitempty"`
	HitCount        int               `json:"hit_count"`
	Response        *models.Response  `json:"response,omitempty"`
	Error           *models.TaskError `json:"error,omitempty"`
	StartedAt       time.Time         `json:"started_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// statusResponse trims a live record for the public API: the context is cut
// to an excerpt and retrieval hits collapse to a count.
func statusResponse(rec *models.TaskRecord) *TaskStatusResponse {
	excerpt := rec.Context
	if len(excerpt) > contextExcerptLimit {
		excerpt = excerpt[:contextExcerptLimit]
	}
	return &TaskStatusResponse{
		TaskID:          rec.TaskID,
		UserID:          rec.UserID,
		Query:           rec.Query,
		TemplateName:    rec.TemplateName,
		Plan:            rec.Plan,
		CompletedStages: rec.CompletedStages,
		CurrentStage:    rec.CurrentStage,
		Status:          rec.Status,
		ContextExcerpt:  excerpt,
		HitCount:        len(rec.RetrievalHits),
		Response:        rec.Response,
		Error:           rec.Error,
		StartedAt:       rec.StartedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

// RecentTasksResponse is returned by GET /api/v1/users/:id/tasks.
type RecentTasksResponse struct {
	UserID  string   `json:"user_id"`
	TaskIDs []string `json:"task_ids"`
}

// HealthCheck is one component's health in the /healthz response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
