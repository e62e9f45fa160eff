package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/ragweave/maestro/pkg/models"
)

// eventBufferSize bounds the per-subscription delivery channel. Transient
// events beyond the buffer are dropped, which the contract permits.
const eventBufferSize = 256

// NATSBroker implements Broker over a NATS connection: JetStream for the
// durable stage queues, core subjects for transient events.
type NATSBroker struct {
	nc      *nats.Conn
	js      jetstream.JetStream
	stream  jetstream.Stream
	ackWait time.Duration
}

// NATSOptions tunes the broker connection.
type NATSOptions struct {
	URL string
	// AckWait is the stage-message redelivery lease.
	AckWait time.Duration
	// Name identifies the connection in NATS monitoring.
	Name string
}

// ConnectNATS dials NATS with infinite reconnection and ensures the stage
// stream exists.
func ConnectNATS(ctx context.Context, opts NATSOptions) (*NATSBroker, error) {
	name := opts.Name
	if name == "" {
		name = "maestro"
	}
	nc, err := nats.Connect(opts.URL,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.ReconnectBufSize(8*1024*1024),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", opts.URL, err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{StageSubjectWildcard},
		Retention: jetstream.WorkQueuePolicy,
		Storage:   jetstream.FileStorage,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", StreamName, err)
	}

	ackWait := opts.AckWait
	if ackWait <= 0 {
		ackWait = 5 * time.Minute
	}
	return &NATSBroker{nc: nc, js: js, stream: stream, ackWait: ackWait}, nil
}

// Close drains the connection, letting in-flight handlers finish.
func (b *NATSBroker) Close() {
	if err := b.nc.Drain(); err != nil {
		slog.Warn("NATS drain failed", "error", err)
		b.nc.Close()
	}
}

// PublishStage durably publishes a stage message; it returns once JetStream
// acknowledges persistence.
func (b *NATSBroker) PublishStage(ctx context.Context, msg *models.StageMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal stage message: %w", err)
	}
	if _, err := b.js.Publish(ctx, StageSubject(msg.Stage), data); err != nil {
		return fmt.Errorf("%w: stage publish to %s: %w", ErrUnavailable, msg.Stage, err)
	}
	return nil
}

// natsConsumer wraps a running JetStream consume loop.
type natsConsumer struct {
	cctx jetstream.ConsumeContext
}

func (c *natsConsumer) Stop() { c.cctx.Stop() }

// ConsumeStage binds a durable work-queue consumer to a stage subject.
// MaxDeliver of 2 gives every message exactly one redelivery after a nack
// or an expired lease; MaxAckPending enforces the prefetch cap.
func (b *NATSBroker) ConsumeStage(ctx context.Context, stage string, concurrency int, handler StageHandler) (StageConsumer, error) {
	cons, err := b.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "agent-" + stage,
		FilterSubject: StageSubject(stage),
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.ackWait,
		MaxDeliver:    2,
		MaxAckPending: concurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer for stage %s: %w", stage, err)
	}

	sem := make(chan struct{}, concurrency)
	cctx, err := cons.Consume(func(m jetstream.Msg) {
		sem <- struct{}{}
		go func() {
			defer func() { <-sem }()

			var msg models.StageMessage
			if err := json.Unmarshal(m.Data(), &msg); err != nil {
				slog.Error("Dropping undecodable stage message", "stage", stage, "error", err)
				_ = m.Term()
				return
			}
			if err := handler(ctx, &msg); err != nil {
				slog.Warn("Stage handler failed, requesting redelivery",
					"stage", stage, "task_id", msg.TaskID, "attempt", msg.Attempt, "error", err)
				_ = m.Nak()
				return
			}
			_ = m.Ack()
		}()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consume loop for stage %s: %w", stage, err)
	}
	return &natsConsumer{cctx: cctx}, nil
}

// PublishEvent broadcasts a transient event over core NATS. Best-effort:
// marshal errors are returned, broker buffering handles the rest.
func (b *NATSBroker) PublishEvent(_ context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", subject, err)
	}
	if err := b.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("%w: event publish to %s: %w", ErrUnavailable, subject, err)
	}
	return nil
}

// natsEventSub fans multiple core subscriptions into one channel.
type natsEventSub struct {
	ch   chan *Event
	subs []*nats.Subscription
}

func (s *natsEventSub) Next(ctx context.Context) (*Event, error) {
	select {
	case evt := <-s.ch:
		return evt, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *natsEventSub) Close() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
}

// SubscribeEvents subscribes to the given subjects. The subscriptions are
// live when this returns; callers subscribe before publishing the action
// that produces the event.
func (b *NATSBroker) SubscribeEvents(subjects ...string) (EventSub, error) {
	es := &natsEventSub{ch: make(chan *Event, eventBufferSize)}
	for _, subject := range subjects {
		subject := subject
		sub, err := b.nc.Subscribe(subject, func(m *nats.Msg) {
			select {
			case es.ch <- &Event{Subject: m.Subject, Data: m.Data}:
			default:
				// Buffer full; transient events may be dropped.
			}
		})
		if err != nil {
			es.Close()
			return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		es.subs = append(es.subs, sub)
	}
	return es, nil
}
