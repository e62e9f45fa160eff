package agent

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/taskstore"
)

type scriptedBody struct {
	stage string
	delta *models.StageDelta
	err   error
	runs  atomic.Int64
}

func (b *scriptedBody) Stage() string { return b.stage }

func (b *scriptedBody) Run(_ context.Context, _ *Input) (*models.StageDelta, error) {
	b.runs.Add(1)
	return b.delta, b.err
}

func newHarness(t *testing.T, body Body) (*taskstore.Store, *broker.MemoryBroker, *Runtime) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := taskstore.New(rdb, 10*time.Minute)

	mb := broker.NewMemoryBroker()
	t.Cleanup(mb.Close)

	rt := NewRuntime(Config{Name: "test-agent", Concurrency: 2, StageTimeout: 30 * time.Second}, body, store, mb)
	require.NoError(t, rt.Start(context.Background()))
	t.Cleanup(rt.Stop)
	return store, mb, rt
}

func seedTask(t *testing.T, store *taskstore.Store, stage string) *models.TaskRecord {
	t.Helper()
	now := time.Now().UTC()
	rec := &models.TaskRecord{
		TaskID:       "t1",
		UserID:       "u1",
		Query:        "what is the limit",
		TemplateName: "standard",
		Plan:         []string{stage, models.StageResponsePackaging},
		CurrentStage: stage,
		Status:       models.StatusInProgress,
		StartedAt:    now,
		UpdatedAt:    now,
		TTLSeconds:   600,
	}
	require.NoError(t, store.Create(context.Background(), rec))
	return rec
}

func awaitEvent(t *testing.T, sub broker.EventSub) *broker.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt, err := sub.Next(ctx)
	require.NoError(t, err, "expected event never arrived")
	return evt
}

func TestRuntimeMergesDeltaAndPublishesCompletion(t *testing.T) {
	body := &scriptedBody{
		stage: models.StageRetrieval,
		delta: &models.StageDelta{
			ContextDelta: "found two documents",
			Hits:         []models.RetrievalHit{{ID: "d1", Score: 0.9}, {ID: "d2", Score: 0.5}},
			Result:       map[string]any{models.ResultKeyHitCount: 2},
		},
	}
	store, mb, _ := newHarness(t, body)
	seedTask(t, store, models.StageRetrieval)

	sub, err := mb.SubscribeEvents(broker.StageCompleteSubject("t1", models.StageRetrieval))
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, mb.PublishStage(context.Background(), &models.StageMessage{
		TaskID: "t1", Stage: models.StageRetrieval, Attempt: 1, IssuedAt: time.Now().UTC(), Query: "q",
	}))

	raw := awaitEvent(t, sub)
	var evt models.StageCompleteEvent
	require.NoError(t, json.Unmarshal(raw.Data, &evt))
	assert.Equal(t, 2, evt.HitsAdded)

	rec, err := store.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Contains(t, rec.Context, "found two documents")
	assert.Len(t, rec.RetrievalHits, 2)
	assert.NotNil(t, rec.StageResults[models.StageRetrieval])
	// Plan advancement belongs to the coordinator, not the agent.
	assert.Empty(t, rec.CompletedStages)

	progress, err := store.Progress(context.Background(), "t1", time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, progress)
	assert.Equal(t, models.PhaseStarted, progress[0].Phase)
	assert.Equal(t, models.PhaseComplete, progress[len(progress)-1].Phase)
}

func TestRuntimeSkipsCompletedStage(t *testing.T) {
	body := &scriptedBody{stage: models.StageRetrieval, delta: &models.StageDelta{}}
	store, mb, _ := newHarness(t, body)

	rec := seedTask(t, store, models.StageRetrieval)
	_, err := store.Mutate(context.Background(), rec.TaskID, func(next *models.TaskRecord) error {
		next.CompletedStages = []string{models.StageRetrieval}
		next.CurrentStage = models.StageResponsePackaging
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, mb.PublishStage(context.Background(), &models.StageMessage{
		TaskID: "t1", Stage: models.StageRetrieval, Attempt: 1,
	}))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(0), body.runs.Load(), "redelivered message for a done stage must be skipped")
}

func TestRuntimeSkipsUnknownTask(t *testing.T) {
	body := &scriptedBody{stage: models.StageRetrieval, delta: &models.StageDelta{}}
	_, mb, _ := newHarness(t, body)

	require.NoError(t, mb.PublishStage(context.Background(), &models.StageMessage{
		TaskID: "ghost", Stage: models.StageRetrieval, Attempt: 1,
	}))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(0), body.runs.Load())
}

func TestRuntimeFailurePublishesEventAndRedelivers(t *testing.T) {
	body := &scriptedBody{stage: models.StageReasoning, err: errors.New("synthesis failed")}
	store, mb, _ := newHarness(t, body)
	seedTask(t, store, models.StageReasoning)

	sub, err := mb.SubscribeEvents(broker.StageFailedSubject("t1", models.StageReasoning))
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, mb.PublishStage(context.Background(), &models.StageMessage{
		TaskID: "t1", Stage: models.StageReasoning, Attempt: 1,
	}))

	raw := awaitEvent(t, sub)
	var evt models.StageFailedEvent
	require.NoError(t, json.Unmarshal(raw.Data, &evt))
	assert.Equal(t, models.ErrKindStageFailed, evt.Kind)
	assert.Contains(t, evt.Message, "synthesis failed")

	// The broker redelivers once, so the body runs twice in total.
	assert.Eventually(t, func() bool { return body.runs.Load() == 2 }, 2*time.Second, 20*time.Millisecond)
}

func TestRuntimeHeartbeats(t *testing.T) {
	body := &scriptedBody{stage: models.StageModeration, delta: &models.StageDelta{}}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := taskstore.New(rdb, 10*time.Minute)

	mb := broker.NewMemoryBroker()
	t.Cleanup(mb.Close)

	sub, err := mb.SubscribeEvents(broker.HeartbeatSubject("mod-1"))
	require.NoError(t, err)
	defer sub.Close()

	rt := NewRuntime(Config{Name: "mod-1", HeartbeatInterval: 20 * time.Millisecond}, body, store, mb)
	require.NoError(t, rt.Start(context.Background()))
	t.Cleanup(rt.Stop)

	raw := awaitEvent(t, sub)
	var hb models.HeartbeatEvent
	require.NoError(t, json.Unmarshal(raw.Data, &hb))
	assert.Equal(t, "mod-1", hb.Agent)
	assert.Equal(t, models.StageModeration, hb.Stage)
}
