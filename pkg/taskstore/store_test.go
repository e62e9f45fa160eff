package taskstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, 10*time.Minute), mr
}

func newRecord(taskID string) *models.TaskRecord {
	now := time.Now().UTC()
	return &models.TaskRecord{
		TaskID:       taskID,
		UserID:       "u1",
		Query:        "list templates",
		TemplateName: "simple_lookup",
		Plan:         []string{models.StageRetrieval, models.StageResponsePackaging},
		CurrentStage: models.StageRetrieval,
		Status:       models.StatusPending,
		StartedAt:    now,
		UpdatedAt:    now,
		TTLSeconds:   600,
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	rec := newRecord("t1")
	require.NoError(t, store.Create(ctx, rec))

	got, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, rec.TaskID, got.TaskID)
	assert.Equal(t, rec.Plan, got.Plan)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestCreateDuplicateFails(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newRecord("t1")))
	err := store.Create(ctx, newRecord("t1"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetUnknownTask(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutateAdvancesStage(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("t1")))

	got, err := store.Mutate(ctx, "t1", func(rec *models.TaskRecord) error {
		rec.Status = models.StatusInProgress
		rec.CompletedStages = append(rec.CompletedStages, models.StageRetrieval)
		rec.CurrentStage = models.StageResponsePackaging
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{models.StageRetrieval}, got.CompletedStages)
	assert.Equal(t, models.StageResponsePackaging, got.CurrentStage)
	assert.False(t, got.UpdatedAt.IsZero())

	// The write is visible to a fresh read.
	reread, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, got.CompletedStages, reread.CompletedStages)
}

func TestMutateRejectsInvariantViolations(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("t1")))

	_, err := store.Mutate(ctx, "t1", func(rec *models.TaskRecord) error {
		// completed_stages would no longer be a prefix of plan.
		rec.CompletedStages = []string{models.StageResponsePackaging}
		return nil
	})
	assert.Error(t, err)

	// The stored record is untouched.
	rec, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, rec.CompletedStages)
}

func TestMutateOnTerminalTaskIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("t1")))

	_, err := store.Mutate(ctx, "t1", func(rec *models.TaskRecord) error {
		rec.Status = models.StatusAborted
		rec.CurrentStage = ""
		return nil
	})
	require.NoError(t, err)

	called := false
	got, err := store.Mutate(ctx, "t1", func(rec *models.TaskRecord) error {
		called = true
		rec.Status = models.StatusComplete
		rec.Response = &models.Response{Content: "late"}
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called, "transformation must not run on a terminal record")
	assert.Equal(t, models.StatusAborted, got.Status)
	assert.Nil(t, got.Response)
}

func TestMutateIsDeterministic(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("t1")))

	advance := func(rec *models.TaskRecord) error {
		rec.Status = models.StatusInProgress
		rec.Context = "retrieval notes"
		return nil
	}

	first, err := store.Mutate(ctx, "t1", advance)
	require.NoError(t, err)
	second, err := store.Mutate(ctx, "t1", advance)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Context, second.Context)
	assert.Equal(t, first.CompletedStages, second.CompletedStages)
}

func TestMutateUnknownTask(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Mutate(context.Background(), "missing", func(*models.TaskRecord) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressAppendAndSince(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, phase := range []models.ProgressPhase{models.PhaseStarted, models.PhaseProgress, models.PhaseComplete} {
		store.AppendProgress(ctx, "t1", models.ProgressEvent{
			TaskID:    "t1",
			Stage:     models.StageRetrieval,
			Phase:     phase,
			Message:   "step",
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}

	all, err := store.Progress(ctx, "t1", time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, models.PhaseStarted, all[0].Phase)
	assert.Equal(t, models.PhaseComplete, all[2].Phase)

	tail, err := store.Progress(ctx, "t1", base.Add(500*time.Millisecond))
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, models.PhaseProgress, tail[0].Phase)
}

func TestRecentTasksNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"t1", "t2", "t3"} {
		rec := newRecord(id)
		require.NoError(t, store.Create(ctx, rec))
	}

	ids, err := store.RecentTasks(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2", "t1"}, ids)
}

func TestRecordExpiresWithTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	rec := newRecord("t1")
	rec.TTLSeconds = 1
	require.NoError(t, store.Create(ctx, rec))

	mr.FastForward(2 * time.Second)

	_, err := store.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisOutageReportsUnavailable(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("t1")))

	mr.Close()

	_, err := store.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrUnavailable)

	err = store.Create(ctx, newRecord("t2"))
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.Mutate(ctx, "t1", func(rec *models.TaskRecord) error {
		rec.Status = models.StatusInProgress
		return nil
	})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.Progress(ctx, "t1", time.Time{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.RecentTasks(ctx, "u1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
