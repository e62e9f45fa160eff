package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/ragweave/maestro/pkg/models"
)

// MemoryBroker is an in-process Broker used by unit tests and single-node
// development. It preserves the delivery semantics that matter to callers:
// per-stage queues with one redelivery after a handler error, and
// subscribe-before-publish event fan-out.
type MemoryBroker struct {
	mu        sync.Mutex
	consumers map[string]*memConsumer
	pending   map[string][]*models.StageMessage
	subs      []*memEventSub
	wg        sync.WaitGroup
	closed    bool
}

// NewMemoryBroker creates an empty in-memory broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		consumers: make(map[string]*memConsumer),
		pending:   make(map[string][]*models.StageMessage),
	}
}

// Close stops delivery and waits for in-flight handlers.
func (b *MemoryBroker) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.wg.Wait()
}

type memConsumer struct {
	broker  *MemoryBroker
	stage   string
	handler StageHandler
	sem     chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
}

func (c *memConsumer) Stop() {
	c.cancel()
	c.broker.mu.Lock()
	if c.broker.consumers[c.stage] == c {
		delete(c.broker.consumers, c.stage)
	}
	c.broker.mu.Unlock()
}

// PublishStage enqueues the message for the stage's consumer, or parks it
// until one attaches.
func (b *MemoryBroker) PublishStage(_ context.Context, msg *models.StageMessage) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrUnavailable
	}
	cons, ok := b.consumers[msg.Stage]
	if !ok {
		b.pending[msg.Stage] = append(b.pending[msg.Stage], msg)
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	b.dispatch(cons, msg)
	return nil
}

// ConsumeStage registers the handler and drains any parked messages.
func (b *MemoryBroker) ConsumeStage(ctx context.Context, stage string, concurrency int, handler StageHandler) (StageConsumer, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	cctx, cancel := context.WithCancel(ctx)
	cons := &memConsumer{
		broker:  b,
		stage:   stage,
		handler: handler,
		sem:     make(chan struct{}, concurrency),
		ctx:     cctx,
		cancel:  cancel,
	}

	b.mu.Lock()
	if _, exists := b.consumers[stage]; exists {
		b.mu.Unlock()
		cancel()
		return nil, fmt.Errorf("stage %s already has a consumer", stage)
	}
	b.consumers[stage] = cons
	backlog := b.pending[stage]
	delete(b.pending, stage)
	b.mu.Unlock()

	for _, msg := range backlog {
		b.dispatch(cons, msg)
	}
	return cons, nil
}

// dispatch runs the handler asynchronously, redelivering once on error to
// mirror the JetStream MaxDeliver=2 configuration.
func (b *MemoryBroker) dispatch(cons *memConsumer, msg *models.StageMessage) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		select {
		case cons.sem <- struct{}{}:
		case <-cons.ctx.Done():
			return
		}
		defer func() { <-cons.sem }()

		for delivery := 1; delivery <= 2; delivery++ {
			if cons.ctx.Err() != nil {
				return
			}
			if err := cons.handler(cons.ctx, msg); err == nil {
				return
			}
		}
	}()
}

// PublishEvent fans the payload out to every matching live subscription.
func (b *MemoryBroker) PublishEvent(_ context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", subject, err)
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrUnavailable
	}
	targets := make([]*memEventSub, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.matches(subject) {
			targets = append(targets, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range targets {
		select {
		case sub.ch <- &Event{Subject: subject, Data: data}:
		default:
			// Best-effort fan-out; a slow subscriber loses events.
		}
	}
	return nil
}

type memEventSub struct {
	broker   *MemoryBroker
	subjects []string
	ch       chan *Event
	once     sync.Once
}

func (s *memEventSub) Next(ctx context.Context) (*Event, error) {
	select {
	case evt := <-s.ch:
		return evt, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *memEventSub) Close() {
	s.once.Do(func() {
		s.broker.mu.Lock()
		for i, sub := range s.broker.subs {
			if sub == s {
				s.broker.subs = append(s.broker.subs[:i], s.broker.subs[i+1:]...)
				break
			}
		}
		s.broker.mu.Unlock()
	})
}

func (s *memEventSub) matches(subject string) bool {
	for _, pattern := range s.subjects {
		if subjectMatches(pattern, subject) {
			return true
		}
	}
	return false
}

// SubscribeEvents registers a live subscription; events published after
// this returns are observed.
func (b *MemoryBroker) SubscribeEvents(subjects ...string) (EventSub, error) {
	sub := &memEventSub{
		broker:   b,
		subjects: subjects,
		ch:       make(chan *Event, eventBufferSize),
	}
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
	return sub, nil
}

// subjectMatches implements NATS-style token matching: "*" matches one
// token, ">" matches the remainder.
func subjectMatches(pattern, subject string) bool {
	pt := strings.Split(pattern, ".")
	st := strings.Split(subject, ".")
	for i, tok := range pt {
		if tok == ">" {
			return i < len(st)
		}
		if i >= len(st) {
			return false
		}
		if tok != "*" && tok != st[i] {
			return false
		}
	}
	return len(pt) == len(st)
}
