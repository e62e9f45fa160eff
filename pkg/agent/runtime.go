// Package agent implements the generic stage-agent runtime: it consumes a
// stage queue, guards against redeliveries, runs the specialist body and
// merges its delta into the task record. Specialist behaviors live in
// pkg/agent/bodies.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/metrics"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/taskstore"
)

// deadlineMargin is subtracted from the stage timeout so the body gives up
// before the coordinator declares the attempt dead.
const deadlineMargin = 5 * time.Second

// Input is the authoritative slice of task state handed to a body.
type Input struct {
	TaskID  string
	Query   string
	Context string
	Hits    []models.RetrievalHit
	Args    map[string]any
}

// Body is a specialist stage implementation. Run must be idempotent and
// respect ctx cancellation; its delta is merged by the runtime.
type Body interface {
	Stage() string
	Run(ctx context.Context, in *Input) (*models.StageDelta, error)
}

// Config tunes one runtime instance.
type Config struct {
	// Name identifies this agent process in heartbeats, e.g. "retrieval-1".
	Name        string
	Concurrency int
	// StageTimeout is the coordinator's per-stage budget; the body runs
	// with a slightly shorter deadline.
	StageTimeout      time.Duration
	HeartbeatInterval time.Duration
}

// Runtime binds a Body to the broker and store.
type Runtime struct {
	cfg    Config
	body   Body
	store  *taskstore.Store
	broker broker.Broker

	consumer broker.StageConsumer
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// NewRuntime wires a runtime; Start begins consumption.
func NewRuntime(cfg Config, body Body, store *taskstore.Store, b broker.Broker) *Runtime {
	if cfg.Name == "" {
		cfg.Name = body.Stage()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Runtime{cfg: cfg, body: body, store: store, broker: b}
}

// Start attaches the stage consumer and launches the heartbeat loop.
func (r *Runtime) Start(ctx context.Context) error {
	rctx, cancel := context.WithCancel(ctx)
	consumer, err := r.broker.ConsumeStage(rctx, r.body.Stage(), r.cfg.Concurrency, r.handle)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to start %s agent: %w", r.body.Stage(), err)
	}
	r.consumer = consumer
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.heartbeatLoop(rctx)
	slog.Info("Agent runtime started",
		"agent", r.cfg.Name, "stage", r.body.Stage(), "concurrency", r.cfg.Concurrency)
	return nil
}

// Stop detaches from the queue and halts the heartbeat.
func (r *Runtime) Stop() {
	r.stopOnce.Do(func() {
		if r.consumer != nil {
			r.consumer.Stop()
		}
		if r.cancel != nil {
			r.cancel()
			<-r.done
		}
		slog.Info("Agent runtime stopped", "agent", r.cfg.Name)
	})
}

func (r *Runtime) heartbeatLoop(ctx context.Context) {
	defer close(r.done)
	interval := r.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evt := models.HeartbeatEvent{
				Agent:     r.cfg.Name,
				Stage:     r.body.Stage(),
				Timestamp: time.Now().UTC(),
			}
			if err := r.broker.PublishEvent(ctx, broker.HeartbeatSubject(r.cfg.Name), evt); err != nil {
				slog.Debug("Heartbeat publish failed", "agent", r.cfg.Name, "error", err)
			}
		}
	}
}

// handle processes one stage message. A nil return acknowledges; an error
// nacks for the single redelivery the consumer allows.
func (r *Runtime) handle(ctx context.Context, msg *models.StageMessage) error {
	stage := r.body.Stage()
	log := slog.With("agent", r.cfg.Name, "task_id", msg.TaskID, "stage", stage, "attempt", msg.Attempt)

	rec, err := r.store.Get(ctx, msg.TaskID)
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			// Record expired or was never created; nothing to do.
			log.Warn("Dropping stage message for unknown task")
			return nil
		}
		return fmt.Errorf("failed to load task: %w", err)
	}
	// Redelivery guard: a terminal task or an already-completed stage means
	// this message was handled before (or the task no longer wants it).
	if rec.Status.Terminal() || rec.StageCompleted(stage) {
		log.Info("Skipping redelivered or stale stage message", "status", rec.Status)
		return nil
	}

	r.emitProgress(ctx, models.NewProgress(msg.TaskID, stage, models.PhaseStarted, stage+" started"))

	timeout := r.cfg.StageTimeout
	if timeout > deadlineMargin*2 {
		timeout -= deadlineMargin
	}
	bctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		bctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	delta, err := r.body.Run(bctx, &Input{
		TaskID:  msg.TaskID,
		Query:   rec.Query,
		Context: rec.Context,
		Hits:    rec.RetrievalHits,
		Args:    msg.StageArgs,
	})
	elapsed := time.Since(start)
	if err != nil {
		metrics.StageDuration.WithLabelValues(stage, "failed").Observe(elapsed.Seconds())
		return r.failStage(ctx, msg, err, log)
	}
	metrics.StageDuration.WithLabelValues(stage, "complete").Observe(elapsed.Seconds())

	if delta == nil {
		delta = &models.StageDelta{}
	}
	if _, err := r.store.Mutate(ctx, msg.TaskID, func(next *models.TaskRecord) error {
		applyDelta(next, stage, delta)
		return nil
	}); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			log.Warn("Task disappeared before delta merge")
			return nil
		}
		return fmt.Errorf("failed to merge stage delta: %w", err)
	}

	evt := models.StageCompleteEvent{
		TaskID:     msg.TaskID,
		Stage:      stage,
		Attempt:    msg.Attempt,
		Result:     delta.Result,
		HitsAdded:  len(delta.Hits),
		DurationMS: elapsed.Milliseconds(),
	}
	if err := r.broker.PublishEvent(ctx, broker.StageCompleteSubject(msg.TaskID, stage), evt); err != nil {
		log.Warn("Failed to publish stage completion", "error", err)
	}
	r.emitProgress(ctx, models.NewProgress(msg.TaskID, stage, models.PhaseComplete, stage+" complete"))
	log.Info("Stage complete", "duration_ms", elapsed.Milliseconds(), "hits_added", len(delta.Hits))
	return nil
}

func (r *Runtime) failStage(ctx context.Context, msg *models.StageMessage, cause error, log *slog.Logger) error {
	stage := r.body.Stage()
	kind := models.ErrKindStageFailed
	if errors.Is(cause, context.DeadlineExceeded) {
		kind = models.ErrKindStageTimeout
	}
	evt := models.StageFailedEvent{
		TaskID:  msg.TaskID,
		Stage:   stage,
		Attempt: msg.Attempt,
		Kind:    kind,
		Message: cause.Error(),
	}
	if err := r.broker.PublishEvent(ctx, broker.StageFailedSubject(msg.TaskID, stage), evt); err != nil {
		log.Warn("Failed to publish stage failure", "error", err)
	}
	r.emitProgress(ctx, models.NewProgress(msg.TaskID, stage, models.PhaseFailed, cause.Error()))
	log.Error("Stage failed", "error", cause)
	return cause
}

func (r *Runtime) emitProgress(ctx context.Context, evt models.ProgressEvent) {
	r.store.AppendProgress(ctx, evt.TaskID, evt)
	if err := r.broker.PublishEvent(ctx, broker.ProgressSubject(evt.TaskID), evt); err != nil {
		slog.Debug("Progress publish failed", "task_id", evt.TaskID, "error", err)
	}
}

// applyDelta merges a stage delta into the record. completed_stages is NOT
// touched here; advancing the plan is the coordinator's transition.
func applyDelta(rec *models.TaskRecord, stage string, delta *models.StageDelta) {
	if delta.ContextDelta != "" {
		if rec.Context != "" && !strings.HasSuffix(rec.Context, "\n") {
			rec.Context += "\n"
		}
		rec.Context += delta.ContextDelta
	}
	rec.RetrievalHits = append(rec.RetrievalHits, delta.Hits...)
	if len(delta.Result) > 0 {
		if rec.StageResults == nil {
			rec.StageResults = make(map[string]map[string]any)
		}
		rec.StageResults[stage] = delta.Result
	}
}
