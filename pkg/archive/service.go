// Package archive persists finished tasks, stage transitions, and agent
// performance samples to PostgreSQL, and serves the analytics queries over
// them. Writes are idempotent so the coordinator can call them best-effort.
package archive

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/ragweave/maestro/ent"
	"github.com/ragweave/maestro/ent/stagetransition"
	"github.com/ragweave/maestro/ent/taskhistory"
	"github.com/ragweave/maestro/pkg/coordinator"
	"github.com/ragweave/maestro/pkg/models"
)

// maxSummaryLength bounds the response excerpt stored with a task history
// row. The full response lives in the task store until its TTL expires.
const maxSummaryLength = 1024

// Service writes the relational archive. It satisfies coordinator.Archiver.
type Service struct {
	client *ent.Client
}

// NewService creates an archive service on an Ent client.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

var _ coordinator.Archiver = (*Service)(nil)

// ArchiveTask writes the durable record of a finished task. A repeat call
// for the same (task, status) is a no-op, so retries and the abort/complete
// race both archive exactly one row.
func (s *Service) ArchiveTask(ctx context.Context, rec *models.TaskRecord, progress []models.ProgressEvent) error {
	status, err := historyStatus(rec.Status)
	if err != nil {
		return err
	}

	completedAt := rec.UpdatedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	builder := s.client.TaskHistory.Create().
		SetTaskID(rec.TaskID).
		SetUserID(rec.UserID).
		SetQuery(rec.Query).
		SetTemplateName(rec.TemplateName).
		SetPlan(rec.Plan).
		SetCompletedStages(rec.CompletedStages).
		SetStatus(status).
		SetStartedAt(rec.StartedAt).
		SetCompletedAt(completedAt).
		SetDurationMs(completedAt.Sub(rec.StartedAt).Milliseconds())

	if rec.Response != nil {
		builder.
			SetResponseSummary(truncate(rec.Response.Content, maxSummaryLength)).
			SetConfidence(rec.Response.Confidence)
	}
	if rec.Error != nil {
		builder.
			SetErrorKind(string(rec.Error.Kind)).
			SetErrorMessage(rec.Error.Message)
		if rec.Error.Stage != "" {
			builder.SetErrorStage(rec.Error.Stage)
		}
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Already archived under this status.
			return nil
		}
		return fmt.Errorf("failed to archive task %s: %w", rec.TaskID, err)
	}

	slog.Debug("Archived task",
		"task_id", rec.TaskID,
		"status", status,
		"progress_events", len(progress))
	return nil
}

// RecordTransition appends one stage attempt row.
func (s *Service) RecordTransition(ctx context.Context, tr coordinator.TransitionRecord) error {
	outcome, err := transitionOutcome(tr.Outcome)
	if err != nil {
		return err
	}

	_, err = s.client.StageTransition.Create().
		SetTaskID(tr.TaskID).
		SetStage(tr.Stage).
		SetAttempt(tr.Attempt).
		SetOutcome(outcome).
		SetStartedAt(tr.StartedAt).
		SetDurationMs(tr.Duration.Milliseconds()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record transition for task %s stage %s: %w", tr.TaskID, tr.Stage, err)
	}
	return nil
}

// RecordAgentPerformance appends one execution sample for an agent.
func (s *Service) RecordAgentPerformance(ctx context.Context, agent, stage string, duration time.Duration, success bool) error {
	_, err := s.client.AgentPerformance.Create().
		SetAgent(agent).
		SetStage(stage).
		SetDurationMs(duration.Milliseconds()).
		SetSuccess(success).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record agent performance for %s: %w", agent, err)
	}
	return nil
}

// SearchTasks performs full-text search over archived queries and response
// summaries, newest first.
func (s *Service) SearchTasks(ctx context.Context, query string, limit int) ([]*ent.TaskHistory, error) {
	if limit <= 0 {
		limit = 20
	}

	histories, err := s.client.TaskHistory.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', query) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(response_summary, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Order(ent.Desc(taskhistory.FieldCompletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return histories, nil
}

// TaskTransitions returns the recorded stage attempts of one task in order.
func (s *Service) TaskTransitions(ctx context.Context, taskID string) ([]*ent.StageTransition, error) {
	transitions, err := s.client.StageTransition.Query().
		Where(stagetransition.TaskIDEQ(taskID)).
		Order(ent.Asc(stagetransition.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transitions for task %s: %w", taskID, err)
	}
	return transitions, nil
}

func historyStatus(status models.TaskStatus) (taskhistory.Status, error) {
	switch status {
	case models.StatusComplete:
		return taskhistory.StatusComplete, nil
	case models.StatusFailed:
		return taskhistory.StatusFailed, nil
	case models.StatusAborted:
		return taskhistory.StatusAborted, nil
	case models.StatusTimedOut:
		return taskhistory.StatusTimedOut, nil
	default:
		return "", fmt.Errorf("cannot archive non-terminal status %q", status)
	}
}

func transitionOutcome(outcome string) (stagetransition.Outcome, error) {
	switch outcome {
	case "complete":
		return stagetransition.OutcomeComplete, nil
	case "failed":
		return stagetransition.OutcomeFailed, nil
	case "timed_out":
		return stagetransition.OutcomeTimedOut, nil
	case "broker_unavailable":
		return stagetransition.OutcomeBrokerUnavailable, nil
	case "canceled":
		return stagetransition.OutcomeCanceled, nil
	default:
		return "", fmt.Errorf("unknown transition outcome %q", outcome)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
