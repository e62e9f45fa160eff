package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/models"
)

// BrokerBridge forwards broker event topics to the local ConnectionManager.
// One wildcard subscription covers every task, so subscriptions never need
// to be added or torn down as tasks come and go.
type BrokerBridge struct {
	broker  broker.Broker
	manager *ConnectionManager

	cancel context.CancelFunc
	done   chan struct{}
}

// NewBrokerBridge creates a bridge between the broker and the manager.
func NewBrokerBridge(b broker.Broker, manager *ConnectionManager) *BrokerBridge {
	return &BrokerBridge{
		broker:  b,
		manager: manager,
	}
}

// Start subscribes to the progress and response topics and launches the
// forward loop.
func (b *BrokerBridge) Start(ctx context.Context) error {
	if b.cancel != nil {
		return nil
	}

	sub, err := b.broker.SubscribeEvents(
		broker.ProgressWildcard,
		broker.ResponseReadyWildcard,
	)
	if err != nil {
		return err
	}

	ctx, b.cancel = context.WithCancel(ctx)
	b.done = make(chan struct{})

	go b.run(ctx, sub)

	slog.Info("WebSocket broker bridge started")
	return nil
}

// Stop ends the forward loop and waits for it to finish.
func (b *BrokerBridge) Stop() {
	if b.cancel == nil {
		return
	}
	b.cancel()
	<-b.done
	slog.Info("WebSocket broker bridge stopped")
}

func (b *BrokerBridge) run(ctx context.Context, sub broker.EventSub) {
	defer close(b.done)
	defer sub.Close()

	for {
		ev, err := sub.Next(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Error("Broker bridge subscription ended", "error", err)
			}
			return
		}
		b.forward(ev)
	}
}

func (b *BrokerBridge) forward(ev *broker.Event) {
	switch {
	case strings.HasPrefix(ev.Subject, "evt.progress."):
		var evt models.ProgressEvent
		if err := json.Unmarshal(ev.Data, &evt); err != nil {
			return
		}
		payload, err := json.Marshal(progressMessage(&evt))
		if err != nil {
			return
		}
		b.manager.Broadcast(TaskChannel(evt.TaskID), payload)

	case strings.HasPrefix(ev.Subject, "evt.response.ready."):
		var ready models.ResponseReadyEvent
		if err := json.Unmarshal(ev.Data, &ready); err != nil {
			return
		}
		payload, err := json.Marshal(map[string]any{
			"type":    MessageTypeResponseReady,
			"channel": TaskChannel(ready.TaskID),
			"task_id": ready.TaskID,
		})
		if err != nil {
			return
		}
		b.manager.Broadcast(TaskChannel(ready.TaskID), payload)
	}
}
