package archive

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/models"
)

// Recorder listens to stage completion, failure, and heartbeat events and
// turns them into agent performance samples. Heartbeats tell it which agent
// instance currently serves a stage; until one is seen, samples fall back
// to the durable consumer name for the stage.
type Recorder struct {
	service *Service
	broker  broker.Broker

	mu     sync.Mutex
	agents map[string]string // stage -> last agent instance seen

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRecorder creates an agent performance recorder.
func NewRecorder(service *Service, b broker.Broker) *Recorder {
	return &Recorder{
		service: service,
		broker:  b,
		agents:  make(map[string]string),
	}
}

// Start subscribes to the event topics and launches the record loop.
func (r *Recorder) Start(ctx context.Context) error {
	if r.cancel != nil {
		return nil
	}

	sub, err := r.broker.SubscribeEvents(
		broker.StageCompleteWildcard,
		broker.StageFailedWildcard,
		broker.HeartbeatWildcard,
	)
	if err != nil {
		return err
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx, sub)

	slog.Info("Agent performance recorder started")
	return nil
}

// Stop ends the record loop and waits for it to finish.
func (r *Recorder) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

func (r *Recorder) run(ctx context.Context, sub broker.EventSub) {
	defer close(r.done)
	defer sub.Close()

	for {
		ev, err := sub.Next(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Error("Agent recorder subscription ended", "error", err)
			}
			return
		}
		r.handle(ev)
	}
}

func (r *Recorder) handle(ev *broker.Event) {
	switch {
	case strings.HasPrefix(ev.Subject, "evt.agent.heartbeat."):
		var hb models.HeartbeatEvent
		if err := json.Unmarshal(ev.Data, &hb); err != nil {
			return
		}
		r.mu.Lock()
		r.agents[hb.Stage] = hb.Agent
		r.mu.Unlock()

	case strings.HasPrefix(ev.Subject, "evt.stage.complete."):
		var done models.StageCompleteEvent
		if err := json.Unmarshal(ev.Data, &done); err != nil {
			return
		}
		r.record(done.Stage, time.Duration(done.DurationMS)*time.Millisecond, true)

	case strings.HasPrefix(ev.Subject, "evt.stage.failed."):
		var failed models.StageFailedEvent
		if err := json.Unmarshal(ev.Data, &failed); err != nil {
			return
		}
		r.record(failed.Stage, 0, false)
	}
}

func (r *Recorder) record(stage string, duration time.Duration, success bool) {
	r.mu.Lock()
	agent, ok := r.agents[stage]
	r.mu.Unlock()
	if !ok {
		agent = "agent-" + stage
	}

	// Background context with timeout so a shutdown does not drop the write.
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.service.RecordAgentPerformance(writeCtx, agent, stage, duration, success); err != nil {
		slog.Error("Failed to record agent performance", "stage", stage, "error", err)
	}
}
