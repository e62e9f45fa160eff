// Package taskstore implements the live task-state store on Redis: the
// authoritative task record under a per-task key, an ordered per-task
// progress list, and a per-user index of recent tasks. The durable archive
// lives in pkg/archive; this layer only holds running state with TTLs.
package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ragweave/maestro/pkg/models"
)

// Sentinel errors surfaced by store operations.
var (
	// ErrNotFound indicates no live record exists for the task id.
	ErrNotFound = errors.New("task not found")

	// ErrAlreadyExists indicates a create collided with an existing record.
	ErrAlreadyExists = errors.New("task already exists")

	// ErrConflict indicates an optimistic mutation could not linearize
	// within the retry budget.
	ErrConflict = errors.New("concurrent modification detected")

	// ErrUnavailable indicates Redis could not be reached. Callers map it
	// to the store-unavailable error kind.
	ErrUnavailable = errors.New("task store unavailable")
)

// unavailable tags a Redis transport failure with ErrUnavailable.
func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

const (
	// mutateRetries bounds CAS attempts before giving up with ErrConflict.
	mutateRetries = 5

	// progressCap bounds the per-task progress list. Older entries are
	// trimmed; the archive keeps the durable trail.
	progressCap = 512

	// recentCap bounds the per-user recent-task index.
	recentCap = 50
)

// Store is the Redis-backed live task store.
type Store struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

// New creates a Store around an existing Redis client.
func New(rdb *redis.Client, defaultTTL time.Duration) *Store {
	return &Store{rdb: rdb, defaultTTL: defaultTTL}
}

// Connect dials Redis and verifies the connection.
func Connect(ctx context.Context, addr, password string, db int, defaultTTL time.Duration) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return New(rdb, defaultTTL), nil
}

// Close releases the underlying Redis client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Ping reports store reachability for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func recordKey(taskID string) string   { return "task:" + taskID }
func progressKey(taskID string) string { return "task:" + taskID + ":progress" }
func recentKey(userID string) string   { return "user:" + userID + ":recent" }

// recordTTL resolves the live retention for a record.
func (s *Store) recordTTL(rec *models.TaskRecord) time.Duration {
	if rec.TTLSeconds > 0 {
		return time.Duration(rec.TTLSeconds) * time.Second
	}
	return s.defaultTTL
}

// Create atomically writes the initial record and indexes it for the user.
// Returns ErrAlreadyExists when the task id is taken.
func (s *Store) Create(ctx context.Context, rec *models.TaskRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal task record: %w", err)
	}

	ttl := s.recordTTL(rec)
	ok, err := s.rdb.SetNX(ctx, recordKey(rec.TaskID), data, ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create task %s: %w", rec.TaskID, unavailable(err))
	}
	if !ok {
		return ErrAlreadyExists
	}

	// Best-effort per-user index; record creation already succeeded.
	pipe := s.rdb.Pipeline()
	pipe.LPush(ctx, recentKey(rec.UserID), rec.TaskID)
	pipe.LTrim(ctx, recentKey(rec.UserID), 0, recentCap-1)
	pipe.Expire(ctx, recentKey(rec.UserID), 2*ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to index task for user", "task_id", rec.TaskID, "user_id", rec.UserID, "error", err)
	}
	return nil
}

// Get returns the live record, or ErrNotFound once the TTL has expired or
// the id is unknown.
func (s *Store) Get(ctx context.Context, taskID string) (*models.TaskRecord, error) {
	data, err := s.rdb.Get(ctx, recordKey(taskID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, unavailable(err))
	}
	var rec models.TaskRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode task %s: %w", taskID, err)
	}
	return &rec, nil
}

// Mutate reads the record, applies fn to a copy, validates the result and
// writes it back under an optimistic WATCH transaction. Linearizable per
// task: concurrent mutations retry with jittered backoff up to a small
// bound, then fail with ErrConflict.
//
// Terminal records are immutable: fn is not invoked and the stored record is
// returned unchanged. This is what makes late stage completions and
// redeliveries harmless.
func (s *Store) Mutate(ctx context.Context, taskID string, fn func(*models.TaskRecord) error) (*models.TaskRecord, error) {
	key := recordKey(taskID)

	var out *models.TaskRecord
	ran := false
	txn := func(tx *redis.Tx) error {
		ran = true
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return unavailable(err)
		}
		var current models.TaskRecord
		if err := json.Unmarshal(data, &current); err != nil {
			return fmt.Errorf("failed to decode task %s: %w", taskID, err)
		}

		if current.Status.Terminal() {
			out = &current
			return nil
		}

		next := current.Clone()
		if err := fn(next); err != nil {
			return err
		}
		next.UpdatedAt = time.Now().UTC()
		if err := next.Validate(); err != nil {
			return fmt.Errorf("mutation rejected: %w", err)
		}

		encoded, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal task %s: %w", taskID, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.recordTTL(next))
			return nil
		})
		if err != nil {
			if errors.Is(err, redis.TxFailedErr) {
				return err
			}
			return unavailable(err)
		}
		out = next
		return nil
	}

	for attempt := 0; attempt < mutateRetries; attempt++ {
		ran = false
		err := s.rdb.Watch(ctx, txn, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Another writer touched the key between GET and EXEC.
			sleepJittered(ctx, attempt)
			continue
		}
		if !ran {
			// WATCH itself failed, so the error is transport, not fn's.
			return nil, fmt.Errorf("failed to mutate task %s: %w", taskID, unavailable(err))
		}
		return nil, err
	}
	return nil, ErrConflict
}

// AppendProgress appends an event to the ordered per-task progress list.
// Best-effort: failures are logged, never propagated into task control flow.
func (s *Store) AppendProgress(ctx context.Context, taskID string, evt models.ProgressEvent) {
	data, err := json.Marshal(evt)
	if err != nil {
		slog.Warn("Failed to marshal progress event", "task_id", taskID, "error", err)
		return
	}
	key := progressKey(taskID)
	pipe := s.rdb.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -progressCap, -1)
	// Progress outlives the record so clients can read the tail of a task
	// that just expired.
	pipe.Expire(ctx, key, 2*s.defaultTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to append progress event", "task_id", taskID, "error", err)
	}
}

// Progress returns the ordered progress entries with timestamps strictly
// after since. A zero since returns the full retained list.
func (s *Store) Progress(ctx context.Context, taskID string, since time.Time) ([]models.ProgressEvent, error) {
	raw, err := s.rdb.LRange(ctx, progressKey(taskID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read progress for task %s: %w", taskID, unavailable(err))
	}
	events := make([]models.ProgressEvent, 0, len(raw))
	for _, item := range raw {
		var evt models.ProgressEvent
		if err := json.Unmarshal([]byte(item), &evt); err != nil {
			slog.Warn("Skipping undecodable progress entry", "task_id", taskID, "error", err)
			continue
		}
		if evt.Timestamp.After(since) {
			events = append(events, evt)
		}
	}
	return events, nil
}

// RecentTasks returns the most recent task ids created by a user, newest
// first.
func (s *Store) RecentTasks(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.rdb.LRange(ctx, recentKey(userID), 0, recentCap-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent tasks for user %s: %w", userID, unavailable(err))
	}
	return ids, nil
}

// sleepJittered backs off between CAS retries. Range: [5ms, 5ms+10ms*attempt).
func sleepJittered(ctx context.Context, attempt int) {
	base := 5 * time.Millisecond
	jitter := time.Duration(rand.Int64N(int64(10*time.Millisecond) * int64(attempt+1)))
	select {
	case <-ctx.Done():
	case <-time.After(base + jitter):
	}
}
