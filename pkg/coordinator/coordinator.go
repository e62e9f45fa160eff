// Package coordinator implements the control plane: task admission, the
// per-task execute loop that drives stages through the broker, response
// packaging and abort handling.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/config"
	"github.com/ragweave/maestro/pkg/metrics"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/taskstore"
	"github.com/ragweave/maestro/pkg/templates"
)

// TransitionRecord captures one stage attempt for the archive.
type TransitionRecord struct {
	TaskID    string
	Stage     string
	Attempt   int
	Outcome   string
	StartedAt time.Time
	Duration  time.Duration
}

// Archiver is the durable sink for finished tasks and stage transitions.
// Calls are made asynchronously and best-effort; pkg/archive implements it.
type Archiver interface {
	ArchiveTask(ctx context.Context, rec *models.TaskRecord, progress []models.ProgressEvent) error
	RecordTransition(ctx context.Context, tr TransitionRecord) error
}

// Coordinator owns task lifecycles. One execute goroutine runs per active
// task, registered so Abort can cancel it and duplicates are refused.
type Coordinator struct {
	cfg      config.CoordinatorConfig
	store    *taskstore.Store
	broker   broker.Broker
	registry *templates.Registry
	archiver Archiver

	mu     sync.Mutex
	active map[string]context.CancelFunc

	rootCtx    context.Context
	rootCancel context.CancelFunc
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New wires a coordinator. archiver may be nil when no archive is attached.
func New(cfg config.CoordinatorConfig, store *taskstore.Store, b broker.Broker, registry *templates.Registry, archiver Archiver) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		store:    store,
		broker:   b,
		registry: registry,
		archiver: archiver,
		active:   make(map[string]context.CancelFunc),
	}
}

// Start establishes the root context all execute loops derive from.
func (c *Coordinator) Start(ctx context.Context) {
	c.rootCtx, c.rootCancel = context.WithCancel(ctx)
	slog.Info("Coordinator started",
		"stage_timeout", c.cfg.StageTimeout, "max_stage_retries", c.cfg.MaxStageRetries)
}

// Stop cancels all execute loops and waits for them to drain.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		if c.rootCancel != nil {
			c.rootCancel()
		}
		c.wg.Wait()
		slog.Info("Coordinator stopped")
	})
}

// CreateTask validates the submission, persists the initial record and
// launches the execute loop. Returns the new task id.
func (c *Coordinator) CreateTask(ctx context.Context, userID, query, templateName string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", NewValidationError("query", "must not be empty")
	}
	if len(query) > models.MaxQueryLength {
		return "", NewValidationError("query",
			fmt.Sprintf("exceeds maximum length of %d characters", models.MaxQueryLength))
	}
	if userID == "" {
		return "", NewValidationError("user_id", "must not be empty")
	}

	// An explicitly requested template must exist; it is never silently
	// substituted. An empty request takes the default.
	name := templateName
	if name == "" {
		name = c.cfg.DefaultTemplate
	}
	tmpl, err := c.registry.Get(name)
	if err != nil {
		if errors.Is(err, templates.ErrUnknownTemplate) {
			return "", NewValidationError("template", fmt.Sprintf("unknown template %q", templateName))
		}
		return "", fmt.Errorf("failed to resolve template: %w", err)
	}

	taskID := uuid.NewString()
	now := time.Now().UTC()
	rec := &models.TaskRecord{
		TaskID:       taskID,
		UserID:       userID,
		Query:        query,
		TemplateName: tmpl.Name,
		Plan:         tmpl.Stages,
		CurrentStage: tmpl.Stages[0],
		Status:       models.StatusPending,
		StartedAt:    now,
		UpdatedAt:    now,
		TTLSeconds:   int(c.cfg.TaskTTL.Seconds()),
	}
	// An explicit template choice pins the plan: the intent stage may only
	// revise plans the platform picked itself.
	if templateName != "" {
		rec.PlanRevised = true
	}
	if err := c.store.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	// The created event must reach the bus before the task is accepted: a
	// broker that cannot carry it will not carry stage dispatch either, so
	// the create fails instead of stranding a pending record.
	createdEvt := models.NewProgress(taskID, "", models.PhaseStarted, "task created")
	c.store.AppendProgress(ctx, taskID, createdEvt)
	if err := c.broker.PublishEvent(ctx, broker.ProgressSubject(taskID), createdEvt); err != nil {
		if _, merr := c.store.Mutate(ctx, taskID, func(next *models.TaskRecord) error {
			next.Status = models.StatusFailed
			next.CurrentStage = ""
			next.Error = &models.TaskError{Kind: models.ErrKindBrokerUnavailable, Message: "broker unavailable at task creation"}
			return nil
		}); merr != nil {
			slog.Warn("Failed to mark task failed after publish error", "task_id", taskID, "error", merr)
		}
		return "", fmt.Errorf("failed to publish task creation for %s: %w", taskID, err)
	}
	metrics.TasksCreated.Inc()

	if err := c.launch(taskID); err != nil {
		return "", err
	}
	slog.Info("Task created", "task_id", taskID, "user_id", userID, "template", tmpl.Name)
	return taskID, nil
}

// launch registers and starts the execute loop for a task.
func (c *Coordinator) launch(taskID string) error {
	c.mu.Lock()
	if _, exists := c.active[taskID]; exists {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskActive, taskID)
	}
	loopCtx, cancel := context.WithCancel(c.rootCtx)
	c.active[taskID] = cancel
	c.mu.Unlock()

	metrics.ActiveTasks.Inc()
	c.wg.Add(1)
	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.active, taskID)
			c.mu.Unlock()
			cancel()
			metrics.ActiveTasks.Dec()
			c.wg.Done()
		}()
		c.execute(loopCtx, taskID)
	}()
	return nil
}

// Abort moves a live task to aborted and cancels its execute loop. It is
// idempotent: aborting a terminal task returns the current status unchanged.
func (c *Coordinator) Abort(ctx context.Context, taskID string) (models.TaskStatus, error) {
	// The transformation only runs on live records, so transitioned tells a
	// fresh abort apart from an idempotent repeat.
	transitioned := false
	rec, err := c.store.Mutate(ctx, taskID, func(next *models.TaskRecord) error {
		transitioned = true
		next.Status = models.StatusAborted
		next.CurrentStage = ""
		next.Error = &models.TaskError{Kind: models.ErrKindAborted, Message: "aborted by user"}
		return nil
	})
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		return "", fmt.Errorf("failed to abort task %s: %w", taskID, err)
	}

	c.mu.Lock()
	cancel, running := c.active[taskID]
	c.mu.Unlock()
	if running {
		cancel()
	}

	if transitioned && rec.Status == models.StatusAborted {
		c.emitProgress(ctx, models.NewProgress(taskID, "", models.PhaseFailed, "task aborted"))
		// The canceled loop will not run its terminal bookkeeping.
		metrics.TasksFinished.WithLabelValues(string(models.StatusAborted)).Inc()
		c.archiveAsync(rec)
	}
	slog.Info("Task abort requested", "task_id", taskID, "status", rec.Status)
	return rec.Status, nil
}

// GetStatus returns the live record for a task.
func (c *Coordinator) GetStatus(ctx context.Context, taskID string) (*models.TaskRecord, error) {
	rec, err := c.store.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		return nil, err
	}
	return rec, nil
}

// GetProgress returns the ordered progress entries after since. The
// progress list outlives the record, so a recently expired task still
// serves its tail.
func (c *Coordinator) GetProgress(ctx context.Context, taskID string, since time.Time) ([]models.ProgressEvent, error) {
	events, err := c.store.Progress(ctx, taskID, since)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		if _, gerr := c.store.Get(ctx, taskID); errors.Is(gerr, taskstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
	}
	return events, nil
}

// emitProgress appends to the store list and broadcasts on the event bus.
func (c *Coordinator) emitProgress(ctx context.Context, evt models.ProgressEvent) {
	c.store.AppendProgress(ctx, evt.TaskID, evt)
	if err := c.broker.PublishEvent(ctx, broker.ProgressSubject(evt.TaskID), evt); err != nil {
		slog.Debug("Progress publish failed", "task_id", evt.TaskID, "error", err)
	}
}

// archiveAsync hands a finished task to the archiver without blocking the
// execute loop. Failures are logged; the live store remains authoritative.
func (c *Coordinator) archiveAsync(rec *models.TaskRecord) {
	if c.archiver == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		progress, err := c.store.Progress(ctx, rec.TaskID, time.Time{})
		if err != nil {
			slog.Warn("Failed to read progress for archive", "task_id", rec.TaskID, "error", err)
		}
		if err := c.archiver.ArchiveTask(ctx, rec, progress); err != nil {
			slog.Warn("Failed to archive task", "task_id", rec.TaskID, "error", err)
		}
	}()
}

// recordTransitionAsync persists a stage attempt outcome, best-effort.
func (c *Coordinator) recordTransitionAsync(tr TransitionRecord) {
	if c.archiver == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.archiver.RecordTransition(ctx, tr); err != nil {
			slog.Debug("Failed to record stage transition", "task_id", tr.TaskID, "stage", tr.Stage, "error", err)
		}
	}()
}
