package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/metrics"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/taskstore"
)

// outcomeKind classifies one stage attempt from the loop's point of view.
type outcomeKind int

const (
	outcomeComplete outcomeKind = iota
	outcomeFailed
	outcomeTimedOut
	outcomeBrokerDown
	outcomeCanceled
)

type stageOutcome struct {
	kind    outcomeKind
	result  map[string]any
	errKind models.ErrorKind
	message string
}

// softFailStages proceed with empty results instead of failing the task
// when their attempts are exhausted.
var softFailStages = map[string]bool{
	models.StageRetrieval:       true,
	models.StageWebAugmentation: true,
}

// execute drives one task through its plan until a terminal status. It is
// the only writer of completed_stages and current_stage; agents only merge
// data deltas.
func (c *Coordinator) execute(ctx context.Context, taskID string) {
	log := slog.With("task_id", taskID)
	attempts := make(map[string]int)

	for {
		if ctx.Err() != nil {
			log.Info("Execute loop canceled")
			return
		}
		rec, err := c.store.Get(ctx, taskID)
		if err != nil {
			if errors.Is(err, taskstore.ErrNotFound) {
				log.Warn("Task record expired mid-execution")
			} else {
				log.Error("Failed to load task record, stopping loop", "error", err)
			}
			return
		}
		if rec.Status.Terminal() {
			c.finish(rec)
			return
		}

		stage := rec.CurrentStage
		if stage == models.StageResponsePackaging {
			if err := c.packageResponse(ctx, rec); err != nil {
				log.Error("Response packaging failed", "error", err)
				c.failTask(ctx, taskID, stage, models.ErrKindInternal, err.Error())
			}
			continue
		}

		attempts[stage]++
		attempt := attempts[stage]
		started := time.Now()
		outcome := c.runStage(ctx, rec, stage, attempt)
		c.recordTransitionAsync(TransitionRecord{
			TaskID:    taskID,
			Stage:     stage,
			Attempt:   attempt,
			Outcome:   outcomeName(outcome.kind),
			StartedAt: started.UTC(),
			Duration:  time.Since(started),
		})

		switch outcome.kind {
		case outcomeCanceled:
			log.Info("Stage wait canceled", "stage", stage)
			return

		case outcomeComplete:
			next, err := c.advance(ctx, taskID, stage, outcome.result)
			if err != nil {
				log.Error("Failed to advance plan", "stage", stage, "error", err)
				return
			}
			// A moderation rewind re-opens reasoning; give the second pass a
			// fresh attempt budget.
			if stage == models.StageModeration && next.CurrentStage == models.StageReasoning {
				delete(attempts, models.StageReasoning)
				delete(attempts, models.StageModeration)
				log.Info("Moderation requested a reasoning retry")
			}
			c.emitProgress(ctx, models.NewProgress(taskID, stage, models.PhaseProgress,
				fmt.Sprintf("advanced past %s", stage)))

		case outcomeFailed, outcomeTimedOut, outcomeBrokerDown:
			if attempt <= c.cfg.MaxStageRetries {
				metrics.StageRetries.WithLabelValues(stage).Inc()
				log.Warn("Retrying stage", "stage", stage, "attempt", attempt, "reason", outcome.message)
				continue
			}
			if softFailStages[stage] && outcome.kind != outcomeBrokerDown {
				log.Warn("Stage exhausted retries, proceeding with empty result", "stage", stage)
				if _, err := c.advance(ctx, taskID, stage, nil); err != nil {
					log.Error("Failed to advance past soft-failed stage", "stage", stage, "error", err)
					return
				}
				continue
			}
			c.failTask(ctx, taskID, stage, outcome.errKind, outcome.message)
		}
	}
}

// runStage dispatches one attempt and awaits its completion or failure.
// The event subscription is opened before the publish so the completion
// cannot be missed.
func (c *Coordinator) runStage(ctx context.Context, rec *models.TaskRecord, stage string, attempt int) stageOutcome {
	sub, err := c.broker.SubscribeEvents(
		broker.StageCompleteSubject(rec.TaskID, stage),
		broker.StageFailedSubject(rec.TaskID, stage),
	)
	if err != nil {
		return stageOutcome{kind: outcomeBrokerDown, errKind: models.ErrKindBrokerUnavailable, message: err.Error()}
	}
	defer sub.Close()

	msg := &models.StageMessage{
		TaskID:                rec.TaskID,
		Stage:                 stage,
		Attempt:               attempt,
		IssuedAt:              time.Now().UTC(),
		Query:                 rec.Query,
		UserID:                rec.UserID,
		ContextSnapshot:       rec.Context,
		RetrievalHitsSnapshot: rec.RetrievalHits,
		StageArgs:             c.stageArgs(rec, stage),
	}
	if err := c.broker.PublishStage(ctx, msg); err != nil {
		return stageOutcome{kind: outcomeBrokerDown, errKind: models.ErrKindBrokerUnavailable, message: err.Error()}
	}

	actx, cancel := context.WithTimeout(ctx, c.cfg.StageTimeout)
	defer cancel()
	for {
		evt, err := sub.Next(actx)
		if err != nil {
			if ctx.Err() != nil {
				return stageOutcome{kind: outcomeCanceled}
			}
			return stageOutcome{
				kind:    outcomeTimedOut,
				errKind: models.ErrKindStageTimeout,
				message: fmt.Sprintf("stage %s exceeded its %s budget", stage, c.cfg.StageTimeout),
			}
		}

		switch {
		case strings.HasPrefix(evt.Subject, "evt.stage.complete."):
			var ce models.StageCompleteEvent
			if err := json.Unmarshal(evt.Data, &ce); err != nil {
				slog.Warn("Undecodable stage completion event", "task_id", rec.TaskID, "error", err)
				continue
			}
			if ce.TaskID == rec.TaskID && ce.Stage == stage {
				return stageOutcome{kind: outcomeComplete, result: ce.Result}
			}

		case strings.HasPrefix(evt.Subject, "evt.stage.failed."):
			var fe models.StageFailedEvent
			if err := json.Unmarshal(evt.Data, &fe); err != nil {
				slog.Warn("Undecodable stage failure event", "task_id", rec.TaskID, "error", err)
				continue
			}
			if fe.TaskID == rec.TaskID && fe.Stage == stage && fe.Attempt == attempt {
				return stageOutcome{kind: outcomeFailed, errKind: fe.Kind, message: fe.Message}
			}
		}
	}
}

// stageArgs builds per-stage dispatch arguments from the task's template.
func (c *Coordinator) stageArgs(rec *models.TaskRecord, stage string) map[string]any {
	if stage != models.StageReasoning {
		return nil
	}
	tmpl, err := c.registry.Get(rec.TemplateName)
	if err != nil || tmpl.ReasoningMaxTokens <= 0 {
		return nil
	}
	// Matches the float64 representation stage args take after a JSON
	// round trip through the broker.
	return map[string]any{"reasoning_max_tokens": float64(tmpl.ReasoningMaxTokens)}
}

// advance commits a stage completion: appends the stage, applies the
// one-shot control signals and moves current_stage to the next plan entry.
func (c *Coordinator) advance(ctx context.Context, taskID, stage string, result map[string]any) (*models.TaskRecord, error) {
	return c.store.Mutate(ctx, taskID, func(next *models.TaskRecord) error {
		if next.StageCompleted(stage) {
			// Duplicate completion (broker redelivery); already advanced.
			return nil
		}
		next.Status = models.StatusInProgress
		next.CompletedStages = append(next.CompletedStages, stage)

		if stage == models.StageModeration && !next.ReasoningRetryUsed && boolSignal(result, models.ResultKeyRetryReasoning) {
			if idx := slices.Index(next.Plan, models.StageReasoning); idx >= 0 && idx <= len(next.CompletedStages) {
				next.CompletedStages = next.CompletedStages[:idx]
				next.ReasoningRetryUsed = true
			}
		}

		if stage == models.StageIntent && !next.PlanRevised && len(result) > 0 {
			chosen := c.registry.Choose(result)
			if chosen.Name != next.TemplateName {
				revised := slices.Clone(next.CompletedStages)
				for _, s := range chosen.Stages {
					if !slices.Contains(revised, s) {
						revised = append(revised, s)
					}
				}
				next.Plan = revised
				next.TemplateName = chosen.Name
				next.PlanRevised = true
				slog.Info("Plan revised from intent signals", "task_id", taskID, "template", chosen.Name)
			}
		}

		next.CurrentStage = next.NextStage()
		return nil
	})
}

// packageResponse assembles the final response in-process and completes the
// task.
func (c *Coordinator) packageResponse(ctx context.Context, rec *models.TaskRecord) error {
	progress, err := c.store.Progress(ctx, rec.TaskID, time.Time{})
	if err != nil {
		slog.Warn("Failed to read progress for packaging", "task_id", rec.TaskID, "error", err)
	}

	next, err := c.store.Mutate(ctx, rec.TaskID, func(next *models.TaskRecord) error {
		if next.StageCompleted(models.StageResponsePackaging) {
			return nil
		}
		next.CompletedStages = append(next.CompletedStages, models.StageResponsePackaging)
		next.CurrentStage = ""
		next.Status = models.StatusComplete
		next.Response = buildResponse(next, progress)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit packaged response: %w", err)
	}
	if next.Status != models.StatusComplete {
		// An abort won the race; Mutate was a no-op on the terminal record.
		return nil
	}

	c.emitProgress(ctx, models.NewProgress(rec.TaskID, models.StageResponsePackaging, models.PhaseComplete, "response ready"))
	if err := c.broker.PublishEvent(ctx, broker.ResponseReadySubject(rec.TaskID),
		models.ResponseReadyEvent{TaskID: rec.TaskID}); err != nil {
		slog.Debug("Response-ready publish failed", "task_id", rec.TaskID, "error", err)
	}
	return nil
}

// buildResponse derives the packaged answer from accumulated task state:
// content from the reasoning draft, citations from the cited sources or the
// top hits, confidence from the moderation score, steps from the progress
// trail.
func buildResponse(rec *models.TaskRecord, progress []models.ProgressEvent) *models.Response {
	resp := &models.Response{}

	if draft, ok := rec.StageResults[models.StageReasoning][models.ResultKeyDraft].(string); ok && draft != "" {
		resp.Content = draft
		resp.Confidence = 0.5
	} else if len(rec.RetrievalHits) > 0 {
		var sb strings.Builder
		sb.WriteString("Top matches:\n")
		for i, hit := range rec.RetrievalHits {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&sb, "- [doc:%s] %s\n", hit.ID, hit.Snippet)
		}
		resp.Content = sb.String()
		resp.Confidence = 0.6
	} else {
		resp.Content = "No relevant information was found for this query."
		resp.Confidence = 0.1
	}

	if score, ok := rec.StageResults[models.StageModeration][models.ResultKeyScore].(float64); ok {
		resp.Confidence = score
	}

	if sources := stringSignal(rec.StageResults[models.StageReasoning], models.ResultKeySources); len(sources) > 0 {
		resp.Citations = sources
	} else {
		for i, hit := range rec.RetrievalHits {
			if i >= 5 {
				break
			}
			if !slices.Contains(resp.Citations, hit.ID) {
				resp.Citations = append(resp.Citations, hit.ID)
			}
		}
	}

	for _, evt := range progress {
		if evt.Phase == models.PhaseComplete && evt.Stage != "" {
			resp.Steps = append(resp.Steps, evt.Message)
		}
	}
	return resp
}

// failTask commits the non-success terminal status for an exhausted stage.
func (c *Coordinator) failTask(ctx context.Context, taskID, stage string, kind models.ErrorKind, message string) {
	status := models.StatusFailed
	if kind == models.ErrKindStageTimeout {
		status = models.StatusTimedOut
	}
	_, err := c.store.Mutate(ctx, taskID, func(next *models.TaskRecord) error {
		next.Status = status
		next.CurrentStage = ""
		next.Error = &models.TaskError{Kind: kind, Message: message, Stage: stage}
		return nil
	})
	if err != nil {
		slog.Error("Failed to mark task failed", "task_id", taskID, "stage", stage, "error", err)
		return
	}
	c.emitProgress(ctx, models.NewProgress(taskID, stage, models.PhaseFailed, message))
	slog.Warn("Task reached terminal failure", "task_id", taskID, "stage", stage, "kind", kind)
}

// finish records terminal bookkeeping once the loop observes a terminal
// record.
func (c *Coordinator) finish(rec *models.TaskRecord) {
	metrics.TasksFinished.WithLabelValues(string(rec.Status)).Inc()
	c.archiveAsync(rec)
	slog.Info("Task finished", "task_id", rec.TaskID, "status", rec.Status,
		"stages", len(rec.CompletedStages), "template", rec.TemplateName)
}

func outcomeName(kind outcomeKind) string {
	switch kind {
	case outcomeComplete:
		return "complete"
	case outcomeFailed:
		return "failed"
	case outcomeTimedOut:
		return "timed_out"
	case outcomeBrokerDown:
		return "broker_unavailable"
	default:
		return "canceled"
	}
}

// boolSignal reads a boolean control signal from a stage result.
func boolSignal(result map[string]any, key string) bool {
	v, ok := result[key].(bool)
	return ok && v
}

// stringSignal reads a string-slice signal, tolerating the []any shape JSON
// decoding produces.
func stringSignal(result map[string]any, key string) []string {
	if result == nil {
		return nil
	}
	switch v := result[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
