// Package broker abstracts the messaging fabric: durable per-stage task
// queues with at-least-once delivery, and transient event topics with
// best-effort fan-out. The production implementation runs on NATS
// (JetStream work queues + core subjects); an in-memory implementation
// backs unit tests.
package broker

import (
	"context"
	"errors"

	"github.com/ragweave/maestro/pkg/models"
)

// ErrUnavailable indicates the broker could not accept a durable publish
// within its buffering budget.
var ErrUnavailable = errors.New("broker unavailable")

// StageHandler processes one stage message. Returning nil acknowledges the
// message; returning an error nacks it for redelivery (bounded by the
// consumer's delivery limit).
type StageHandler func(ctx context.Context, msg *models.StageMessage) error

// Event is a transient notification received from an event topic.
type Event struct {
	Subject string
	Data    []byte
}

// EventSub is an active subscription over one or more event subjects.
// Subscriptions are established synchronously: once the constructor
// returns, events published afterwards will be observed. Callers must
// Close when done.
type EventSub interface {
	// Next blocks until an event arrives or ctx is done.
	Next(ctx context.Context) (*Event, error)
	Close()
}

// StageConsumer is a running stage-queue consumer.
type StageConsumer interface {
	Stop()
}

// Broker is the transport contract shared by the coordinator and agents.
type Broker interface {
	// PublishStage durably enqueues a stage message; it returns only after
	// the broker has acknowledged persistence.
	PublishStage(ctx context.Context, msg *models.StageMessage) error

	// ConsumeStage attaches a handler to a stage queue with bounded
	// concurrency. Unacknowledged messages are redelivered once.
	ConsumeStage(ctx context.Context, stage string, concurrency int, handler StageHandler) (StageConsumer, error)

	// PublishEvent broadcasts to a transient topic. Best-effort and
	// non-blocking; loss is acceptable.
	PublishEvent(ctx context.Context, subject string, payload any) error

	// SubscribeEvents opens a subscription on the given subjects. It MUST
	// be called before triggering whatever emits the awaited event, so no
	// wake-up can be lost.
	SubscribeEvents(subjects ...string) (EventSub, error)
}
