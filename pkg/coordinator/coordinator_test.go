package coordinator

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/agent/bodies"
	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/config"
	"github.com/ragweave/maestro/pkg/llm"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/taskstore"
	"github.com/ragweave/maestro/pkg/templates"
)

// memorySearcher serves a tiny fixed corpus.
type memorySearcher struct {
	hits []models.RetrievalHit
	err  error
}

func (s *memorySearcher) Search(context.Context, string, int) ([]models.RetrievalHit, error) {
	return s.hits, s.err
}

type memoryFetcher struct {
	hits []models.RetrievalHit
}

func (f *memoryFetcher) Fetch(context.Context, string) ([]models.RetrievalHit, error) {
	return f.hits, nil
}

// sequenceClient replays canned completions in call order, repeating the
// last one.
type sequenceClient struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (c *sequenceClient) Generate(context.Context, string, string, int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.calls
	c.calls++
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	return c.responses[i], nil
}

func (c *sequenceClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// slowClient blocks for its delay or until the context dies.
type slowClient struct {
	delay time.Duration
	resp  string
}

func (c *slowClient) Generate(ctx context.Context, _, _ string, _ int) (string, error) {
	select {
	case <-time.After(c.delay):
		return c.resp, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// harness wires a full in-process platform: miniredis store, memory broker,
// builtin templates, and whichever agent runtimes the test attaches.
type harness struct {
	store  *taskstore.Store
	broker *broker.MemoryBroker
	coord  *Coordinator
}

type harnessOpts struct {
	stageTimeout    time.Duration
	intentClient    llm.Client
	reasoningClient llm.Client
	moderationCl    llm.Client
	searcher        bodies.VectorSearcher
	fetcher         bodies.Fetcher
	skipStages      map[string]bool
}

func newHarness(t *testing.T, opts harnessOpts) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := taskstore.New(rdb, 10*time.Minute)

	mb := broker.NewMemoryBroker()
	t.Cleanup(mb.Close)

	registry, err := templates.NewRegistry("", "standard")
	require.NoError(t, err)

	if opts.stageTimeout == 0 {
		opts.stageTimeout = 5 * time.Second
	}
	cfg := config.CoordinatorConfig{
		StageTimeout:    opts.stageTimeout,
		TaskTTL:         10 * time.Minute,
		MaxStageRetries: 1,
		DefaultTemplate: "standard",
	}

	coord := New(cfg, store, mb, registry, nil)
	coord.Start(context.Background())
	t.Cleanup(coord.Stop)

	if opts.searcher == nil {
		opts.searcher = &memorySearcher{hits: []models.RetrievalHit{
			{ID: "d1", Score: 0.92, Snippet: "the request limit is 50 per minute"},
			{ID: "d2", Score: 0.71, Snippet: "limits were raised in the v2 release"},
		}}
	}
	if opts.fetcher == nil {
		opts.fetcher = &memoryFetcher{hits: []models.RetrievalHit{
			{ID: "web1", Score: 0.5, Snippet: "fresh web result"},
		}}
	}
	if opts.reasoningClient == nil {
		opts.reasoningClient = &llm.Fake{Default: "The limit is 50 per minute [doc:d1]."}
	}
	if opts.moderationCl == nil {
		opts.moderationCl = &llm.Fake{Default: `{"score": 0.9}`}
	}

	stageBodies := []agent.Body{
		bodies.NewIntent(opts.intentClient),
		bodies.NewRetrieval(opts.searcher),
		bodies.NewWebAugment(opts.fetcher),
		bodies.NewReasoning(opts.reasoningClient, 2048),
		bodies.NewModeration(opts.moderationCl, 0.6),
	}
	for _, body := range stageBodies {
		if opts.skipStages[body.Stage()] {
			continue
		}
		rt := agent.NewRuntime(agent.Config{
			Name:        body.Stage() + "-test",
			Concurrency: 2,
			// Give bodies nearly the full stage budget in tests.
			StageTimeout: opts.stageTimeout,
		}, body, store, mb)
		require.NoError(t, rt.Start(context.Background()))
		t.Cleanup(rt.Stop)
	}

	return &harness{store: store, broker: mb, coord: coord}
}

func (h *harness) awaitTerminal(t *testing.T, taskID string) *models.TaskRecord {
	t.Helper()
	var rec *models.TaskRecord
	require.Eventually(t, func() bool {
		var err error
		rec, err = h.store.Get(context.Background(), taskID)
		return err == nil && rec.Status.Terminal()
	}, 10*time.Second, 25*time.Millisecond, "task never reached a terminal status")
	return rec
}

func TestCreateTaskValidation(t *testing.T) {
	h := newHarness(t, harnessOpts{})
	ctx := context.Background()

	_, err := h.coord.CreateTask(ctx, "u1", "   ", "")
	assert.True(t, IsValidationError(err), "blank query must be rejected")

	_, err = h.coord.CreateTask(ctx, "u1", strings.Repeat("x", models.MaxQueryLength+1), "")
	assert.True(t, IsValidationError(err), "oversized query must be rejected")

	_, err = h.coord.CreateTask(ctx, "", "valid query", "")
	assert.True(t, IsValidationError(err), "missing user must be rejected")

	// Unknown templates are an error, never silently substituted.
	_, err = h.coord.CreateTask(ctx, "u1", "valid query", "no_such_template")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, models.ErrKindInvalidInput, Classify(err))
}

func TestStandardPipelineCompletes(t *testing.T) {
	h := newHarness(t, harnessOpts{})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	assert.Equal(t, models.StatusComplete, rec.Status)
	assert.Equal(t, rec.Plan, rec.CompletedStages, "full plan must be executed")
	assert.Empty(t, rec.CurrentStage)

	require.NotNil(t, rec.Response)
	assert.Contains(t, rec.Response.Content, "limit is 50")
	assert.Equal(t, []string{"d1"}, rec.Response.Citations)
	assert.Equal(t, 0.9, rec.Response.Confidence)
	assert.NotEmpty(t, rec.Response.Steps)

	// The explicit template pins the plan against intent revision.
	assert.Equal(t, "standard", rec.TemplateName)

	progress, err := h.store.Progress(ctx, taskID, time.Time{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(progress), len(rec.Plan))
}

func TestIntentRevisesPlanToSimpleLookup(t *testing.T) {
	h := newHarness(t, harnessOpts{})
	ctx := context.Background()

	// Short factual query, default template: intent heuristics classify it
	// low complexity and the plan collapses to the lookup path.
	taskID, err := h.coord.CreateTask(ctx, "u1", "capital of France", "")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	assert.Equal(t, models.StatusComplete, rec.Status)
	assert.Equal(t, "simple_lookup", rec.TemplateName)
	assert.True(t, rec.PlanRevised)
	assert.Equal(t, []string{models.StageIntent, models.StageRetrieval, models.StageResponsePackaging}, rec.Plan)
	assert.NotContains(t, rec.CompletedStages, models.StageReasoning)
	require.NotNil(t, rec.Response)
	assert.Contains(t, rec.Response.Content, "Top matches")
	// Without a reasoning draft, packaging cites every retrieval hit.
	assert.Equal(t, []string{"d1", "d2"}, rec.Response.Citations)
}

func TestIntentRevisesPlanToWebAugmented(t *testing.T) {
	h := newHarness(t, harnessOpts{})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what changed in the latest scheduler release", "")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	assert.Equal(t, models.StatusComplete, rec.Status)
	assert.Equal(t, "web_augmented", rec.TemplateName)
	assert.Contains(t, rec.CompletedStages, models.StageWebAugmentation)

	// The live fetch contributed a hit alongside the index results.
	ids := make([]string, 0, len(rec.RetrievalHits))
	for _, hit := range rec.RetrievalHits {
		ids = append(ids, hit.ID)
	}
	assert.Contains(t, ids, "web1")
}

func TestModerationRetriesReasoningOnce(t *testing.T) {
	reasoning := &sequenceClient{responses: []string{
		"An uncited first draft.",
		"A grounded second draft [doc:d1].",
	}}
	moderation := &sequenceClient{responses: []string{
		`{"score": 0.2, "notes": "uncited"}`,
		`{"score": 0.85}`,
	}}
	h := newHarness(t, harnessOpts{reasoningClient: reasoning, moderationCl: moderation})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	assert.Equal(t, models.StatusComplete, rec.Status)
	assert.True(t, rec.ReasoningRetryUsed)
	assert.Equal(t, 2, reasoning.callCount(), "reasoning must run exactly twice")
	assert.Equal(t, 2, moderation.callCount())

	// completed_stages stays a clean prefix of the plan despite the rewind.
	assert.Equal(t, rec.Plan, rec.CompletedStages)
	require.NotNil(t, rec.Response)
	assert.Contains(t, rec.Response.Content, "second draft")
	assert.Equal(t, 0.85, rec.Response.Confidence)
}

func TestModerationRetryIsOneShot(t *testing.T) {
	// Moderation never approves; after the single retry the task must still
	// finish rather than loop.
	moderation := &sequenceClient{responses: []string{`{"score": 0.1}`}}
	h := newHarness(t, harnessOpts{moderationCl: moderation})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	assert.Equal(t, models.StatusComplete, rec.Status)
	assert.True(t, rec.ReasoningRetryUsed)
	assert.Equal(t, 0.1, rec.Response.Confidence, "low confidence surfaces instead of looping")
}

func TestStageTimeoutEndsTaskTimedOut(t *testing.T) {
	h := newHarness(t, harnessOpts{
		stageTimeout: 300 * time.Millisecond,
		skipStages:   map[string]bool{models.StageReasoning: true},
	})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	assert.Equal(t, models.StatusTimedOut, rec.Status)
	require.NotNil(t, rec.Error)
	assert.Equal(t, models.ErrKindStageTimeout, rec.Error.Kind)
	assert.Equal(t, models.StageReasoning, rec.Error.Stage)
	assert.Nil(t, rec.Response)
}

func TestRetrievalTimeoutIsSoftFailure(t *testing.T) {
	h := newHarness(t, harnessOpts{
		stageTimeout: 300 * time.Millisecond,
		skipStages:   map[string]bool{models.StageRetrieval: true},
	})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "anything", "simple_lookup")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	assert.Equal(t, models.StatusComplete, rec.Status, "retrieval loss must not sink the task")
	assert.Empty(t, rec.RetrievalHits)
	require.NotNil(t, rec.Response)
	assert.Contains(t, rec.Response.Content, "No relevant information")
}

func TestReasoningFailureEndsTaskFailed(t *testing.T) {
	h := newHarness(t, harnessOpts{
		reasoningClient: &llm.Fake{Err: context.DeadlineExceeded},
	})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)

	rec := h.awaitTerminal(t, taskID)
	require.NotNil(t, rec.Error)
	assert.Equal(t, models.StageReasoning, rec.Error.Stage)
	assert.Contains(t, []models.TaskStatus{models.StatusFailed, models.StatusTimedOut}, rec.Status)
	assert.Nil(t, rec.Response)
}

func TestAbortMidFlight(t *testing.T) {
	h := newHarness(t, harnessOpts{
		reasoningClient: &slowClient{delay: 400 * time.Millisecond, resp: "late draft [doc:d1]"},
	})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)

	// Wait until the task is underway, then abort while reasoning runs.
	require.Eventually(t, func() bool {
		rec, err := h.store.Get(ctx, taskID)
		return err == nil && len(rec.CompletedStages) > 0
	}, 5*time.Second, 10*time.Millisecond)

	status, err := h.coord.Abort(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAborted, status)

	// The slow stage eventually finishes; its late merge must be discarded.
	time.Sleep(600 * time.Millisecond)
	rec, err := h.store.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAborted, rec.Status)
	assert.Nil(t, rec.Response)
	assert.NotContains(t, rec.Context, "late draft")
	require.NotNil(t, rec.Error)
	assert.Equal(t, models.ErrKindAborted, rec.Error.Kind)

	// Abort is idempotent.
	status, err = h.coord.Abort(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAborted, status)
}

func TestAbortUnknownTask(t *testing.T) {
	h := newHarness(t, harnessOpts{})
	_, err := h.coord.Abort(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, models.ErrKindNotFound, Classify(err))
}

func TestGetStatusAndProgress(t *testing.T) {
	h := newHarness(t, harnessOpts{})
	ctx := context.Background()

	taskID, err := h.coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)
	h.awaitTerminal(t, taskID)

	rec, err := h.coord.GetStatus(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, taskID, rec.TaskID)

	events, err := h.coord.GetProgress(ctx, taskID, time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// since filters already-seen entries.
	later, err := h.coord.GetProgress(ctx, taskID, events[len(events)-1].Timestamp)
	require.NoError(t, err)
	assert.Empty(t, later)

	_, err = h.coord.GetStatus(ctx, "ghost")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = h.coord.GetProgress(ctx, "ghost", time.Time{})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestStoreOutageClassifiesStoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := taskstore.New(rdb, 10*time.Minute)

	mb := broker.NewMemoryBroker()
	t.Cleanup(mb.Close)
	registry, err := templates.NewRegistry("", "standard")
	require.NoError(t, err)

	coord := New(config.CoordinatorConfig{
		StageTimeout:    time.Second,
		TaskTTL:         10 * time.Minute,
		MaxStageRetries: 1,
		DefaultTemplate: "standard",
	}, store, mb, registry, nil)
	coord.Start(context.Background())
	t.Cleanup(coord.Stop)

	ctx := context.Background()
	taskID, err := coord.CreateTask(ctx, "u1", "what is the request limit", "standard")
	require.NoError(t, err)

	mr.Close()

	_, err = coord.GetStatus(ctx, taskID)
	require.Error(t, err)
	assert.Equal(t, models.ErrKindStoreUnavailable, Classify(err))

	_, err = coord.CreateTask(ctx, "u1", "another query", "standard")
	require.Error(t, err)
	assert.Equal(t, models.ErrKindStoreUnavailable, Classify(err))
}

func TestCreateTaskFailsWhenBrokerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := taskstore.New(rdb, 10*time.Minute)

	mb := broker.NewMemoryBroker()
	registry, err := templates.NewRegistry("", "standard")
	require.NoError(t, err)

	coord := New(config.CoordinatorConfig{
		StageTimeout:    time.Second,
		TaskTTL:         10 * time.Minute,
		MaxStageRetries: 1,
		DefaultTemplate: "standard",
	}, store, mb, registry, nil)
	coord.Start(context.Background())
	t.Cleanup(coord.Stop)

	mb.Close()

	_, err = coord.CreateTask(context.Background(), "u1", "what is the request limit", "standard")
	require.Error(t, err)
	assert.ErrorIs(t, err, broker.ErrUnavailable)
	assert.Equal(t, models.ErrKindBrokerUnavailable, Classify(err))

	// The record left behind is failed, never pending.
	ids, err := store.RecentTasks(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, ids, 1)
	rec, err := store.Get(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, rec.Status)
	require.NotNil(t, rec.Error)
	assert.Equal(t, models.ErrKindBrokerUnavailable, rec.Error.Kind)
}
