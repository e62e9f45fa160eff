package bodies

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/llm"
	"github.com/ragweave/maestro/pkg/models"
)

type stubSearcher struct {
	hits []models.RetrievalHit
	err  error
	topK int
}

func (s *stubSearcher) Search(_ context.Context, _ string, topK int) ([]models.RetrievalHit, error) {
	s.topK = topK
	return s.hits, s.err
}

type stubFetcher struct {
	hits []models.RetrievalHit
	err  error
}

func (s *stubFetcher) Fetch(context.Context, string) ([]models.RetrievalHit, error) {
	return s.hits, s.err
}

func TestIntentHeuristics(t *testing.T) {
	b := NewIntent(nil)

	cases := []struct {
		query          string
		wantComplexity string
		wantWeb        bool
	}{
		{"capital of France", "low", false},
		{"what is the latest release of the scheduler", "medium", true},
		{"compare the two storage engines and explain why compaction stalls", "high", false},
	}
	for _, tc := range cases {
		delta, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: tc.query})
		require.NoError(t, err)
		assert.Equal(t, tc.wantComplexity, delta.Result[models.ResultKeyComplexity], tc.query)
		assert.Equal(t, tc.wantWeb, delta.Result[models.ResultKeyNeedsWeb], tc.query)
	}
}

func TestIntentModelVerdictWins(t *testing.T) {
	fake := &llm.Fake{Default: `{"complexity":"high","needs_web":true,"template_suggestion":"web_augmented"}`}
	b := NewIntent(fake)

	delta, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "capital of France"})
	require.NoError(t, err)
	assert.Equal(t, "high", delta.Result[models.ResultKeyComplexity])
	assert.Equal(t, true, delta.Result[models.ResultKeyNeedsWeb])
	assert.Equal(t, "web_augmented", delta.Result[models.ResultKeyTemplateSuggestion])
}

func TestIntentModelFailureFallsBack(t *testing.T) {
	fake := &llm.Fake{Err: errors.New("model down")}
	b := NewIntent(fake)

	delta, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "capital of France"})
	require.NoError(t, err, "intent never fails the task")
	assert.Equal(t, "low", delta.Result[models.ResultKeyComplexity])
}

func TestRetrievalReturnsHits(t *testing.T) {
	searcher := &stubSearcher{hits: []models.RetrievalHit{{ID: "d1", Score: 0.9}, {ID: "d2", Score: 0.4}}}
	b := NewRetrieval(searcher)

	delta, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "q"})
	require.NoError(t, err)
	assert.Len(t, delta.Hits, 2)
	assert.Equal(t, 2, delta.Result[models.ResultKeyHitCount])
	assert.Equal(t, defaultTopK, searcher.topK)
}

func TestRetrievalArgsOverrideTopK(t *testing.T) {
	searcher := &stubSearcher{}
	b := NewRetrieval(searcher)

	// JSON round-trips stage args as float64.
	_, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "q", Args: map[string]any{"top_k": float64(3)}})
	require.NoError(t, err)
	assert.Equal(t, 3, searcher.topK)
}

func TestRetrievalIndexFailureIsNonFatal(t *testing.T) {
	b := NewRetrieval(&stubSearcher{err: errors.New("index unreachable")})

	delta, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "q"})
	require.NoError(t, err)
	assert.Empty(t, delta.Hits)
	assert.Equal(t, 0, delta.Result[models.ResultKeyHitCount])
}

func TestWebAugmentFailureIsNonFatal(t *testing.T) {
	b := NewWebAugment(&stubFetcher{err: errors.New("egress blocked")})

	delta, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "q"})
	require.NoError(t, err)
	assert.Empty(t, delta.Hits)
}

func TestReasoningProducesDraftAndSources(t *testing.T) {
	fake := &llm.Fake{Default: "The limit is 50 [doc:d1], raised in v2 [doc:d2] [doc:d1]."}
	b := NewReasoning(fake, 2048)

	delta, err := b.Run(context.Background(), &agent.Input{
		TaskID: "t1",
		Query:  "what is the limit",
		Hits:   []models.RetrievalHit{{ID: "d1", Snippet: "limit is 50"}, {ID: "d2", Snippet: "raised in v2"}},
	})
	require.NoError(t, err)
	assert.Contains(t, delta.ContextDelta, "[reasoning draft]")
	assert.Equal(t, []string{"d1", "d2"}, delta.Result[models.ResultKeySources])

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].UserPrompt, "[doc:d1] limit is 50")
	assert.Equal(t, 2048, calls[0].MaxTokens)
}

func TestReasoningBudgetOverride(t *testing.T) {
	fake := &llm.Fake{Default: "draft"}
	b := NewReasoning(fake, 2048)

	_, err := b.Run(context.Background(), &agent.Input{
		TaskID: "t1", Query: "q",
		Args: map[string]any{"reasoning_max_tokens": float64(8192)},
	})
	require.NoError(t, err)
	assert.Equal(t, 8192, fake.Calls()[0].MaxTokens)
}

func TestReasoningModelFailureIsFatal(t *testing.T) {
	b := NewReasoning(&llm.Fake{Err: errors.New("model down")}, 2048)
	_, err := b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "q"})
	assert.Error(t, err)
}

func TestModerationLowScoreRaisesRetry(t *testing.T) {
	fake := &llm.Fake{Default: `{"score": 0.2, "notes": "uncited claims"}`}
	b := NewModeration(fake, 0.6)

	delta, err := b.Run(context.Background(), &agent.Input{
		TaskID:  "t1",
		Query:   "q",
		Context: "[reasoning draft]\nsome answer",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.2, delta.Result[models.ResultKeyScore])
	assert.Equal(t, true, delta.Result[models.ResultKeyRetryReasoning])
}

func TestModerationPassingScoreHasNoRetrySignal(t *testing.T) {
	fake := &llm.Fake{Default: `{"score": 0.95}`}
	b := NewModeration(fake, 0.6)

	delta, err := b.Run(context.Background(), &agent.Input{
		TaskID:  "t1",
		Query:   "q",
		Context: "[reasoning draft]\nwell cited [doc:d1]",
	})
	require.NoError(t, err)
	assert.NotContains(t, delta.Result, models.ResultKeyRetryReasoning)
}

func TestModerationHeuristicFallback(t *testing.T) {
	b := NewModeration(&llm.Fake{Err: errors.New("model down")}, 0.6)

	delta, err := b.Run(context.Background(), &agent.Input{
		TaskID:  "t1",
		Query:   "q",
		Context: "[reasoning draft]\nanswer cites [doc:d1]",
		Hits:    []models.RetrievalHit{{ID: "d1"}},
	})
	require.NoError(t, err, "moderation never sinks the task")
	assert.Equal(t, 0.9, delta.Result[models.ResultKeyScore])

	// An empty draft scores zero and demands a retry.
	delta, err = b.Run(context.Background(), &agent.Input{TaskID: "t1", Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, float64(0), delta.Result[models.ResultKeyScore])
	assert.Equal(t, true, delta.Result[models.ResultKeyRetryReasoning])
}
