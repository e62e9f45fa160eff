package archive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/ent/stagetransition"
	"github.com/ragweave/maestro/ent/taskhistory"
	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/coordinator"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/templates"
	testdb "github.com/ragweave/maestro/test/database"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	client := testdb.NewTestClient(t)
	return NewService(client.Client)
}

func finishedRecord(taskID string, status models.TaskStatus) *models.TaskRecord {
	now := time.Now().UTC()
	rec := &models.TaskRecord{
		TaskID:          taskID,
		UserID:          "u1",
		Query:           "how do leases expire",
		TemplateName:    "standard",
		Plan:            []string{"intent", "retrieval", "reasoning", "moderation", "response_packaging"},
		CompletedStages: []string{"intent", "retrieval", "reasoning", "moderation", "response_packaging"},
		Status:          status,
		StartedAt:       now.Add(-90 * time.Second),
		UpdatedAt:       now,
	}
	switch status {
	case models.StatusComplete:
		rec.Response = &models.Response{
			Content:    "Leases expire when the TTL lapses without renewal.",
			Citations:  []string{"d1"},
			Confidence: 0.9,
		}
	case models.StatusFailed:
		rec.CompletedStages = rec.CompletedStages[:2]
		rec.Error = &models.TaskError{
			Kind:    models.ErrKindStageFailed,
			Message: "model unavailable",
			Stage:   "reasoning",
		}
	}
	return rec
}

func TestHistoryStatusMapping(t *testing.T) {
	for _, status := range []models.TaskStatus{
		models.StatusComplete, models.StatusFailed, models.StatusAborted, models.StatusTimedOut,
	} {
		_, err := historyStatus(status)
		assert.NoError(t, err, string(status))
	}

	_, err := historyStatus(models.StatusInProgress)
	assert.Error(t, err)
	_, err = historyStatus(models.StatusPending)
	assert.Error(t, err)
}

func TestTransitionOutcomeMapping(t *testing.T) {
	for _, outcome := range []string{"complete", "failed", "timed_out", "broker_unavailable", "canceled"} {
		_, err := transitionOutcome(outcome)
		assert.NoError(t, err, outcome)
	}

	_, err := transitionOutcome("exploded")
	assert.Error(t, err)
}

func TestArchiveTaskIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec := finishedRecord("task-1", models.StatusComplete)
	require.NoError(t, svc.ArchiveTask(ctx, rec, nil))
	// The retry must not produce a second row.
	require.NoError(t, svc.ArchiveTask(ctx, rec, nil))

	count, err := svc.client.TaskHistory.Query().
		Where(taskhistory.TaskIDEQ("task-1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	row, err := svc.client.TaskHistory.Query().
		Where(taskhistory.TaskIDEQ("task-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, taskhistory.StatusComplete, row.Status)
	require.NotNil(t, row.ResponseSummary)
	assert.Contains(t, *row.ResponseSummary, "Leases expire")
	assert.InDelta(t, 0.9, row.Confidence, 0.001)
	assert.Equal(t, int64(90000), row.DurationMs)
}

func TestArchiveTaskRecordsFailureDiagnostics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec := finishedRecord("task-2", models.StatusFailed)
	require.NoError(t, svc.ArchiveTask(ctx, rec, nil))

	row, err := svc.client.TaskHistory.Query().
		Where(taskhistory.TaskIDEQ("task-2")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, taskhistory.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorKind)
	assert.Equal(t, string(models.ErrKindStageFailed), *row.ErrorKind)
	require.NotNil(t, row.ErrorStage)
	assert.Equal(t, "reasoning", *row.ErrorStage)
	assert.Nil(t, row.ResponseSummary)
}

func TestArchiveTaskRejectsLiveRecord(t *testing.T) {
	svc := &Service{}
	rec := finishedRecord("task-3", models.StatusComplete)
	rec.Status = models.StatusInProgress

	err := svc.ArchiveTask(context.Background(), rec, nil)
	assert.ErrorContains(t, err, "non-terminal")
}

func TestRecordTransitionAndQuery(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Minute)
	attempts := []coordinator.TransitionRecord{
		{TaskID: "task-4", Stage: "retrieval", Attempt: 1, Outcome: "timed_out", StartedAt: base, Duration: 30 * time.Second},
		{TaskID: "task-4", Stage: "retrieval", Attempt: 2, Outcome: "complete", StartedAt: base.Add(30 * time.Second), Duration: 2 * time.Second},
	}
	for _, tr := range attempts {
		require.NoError(t, svc.RecordTransition(ctx, tr))
	}

	transitions, err := svc.TaskTransitions(ctx, "task-4")
	require.NoError(t, err)
	require.Len(t, transitions, 2)
	assert.Equal(t, stagetransition.OutcomeTimedOut, transitions[0].Outcome)
	assert.Equal(t, stagetransition.OutcomeComplete, transitions[1].Outcome)
	assert.Equal(t, 2, transitions[1].Attempt)
}

func TestTaskAnalyticsAggregates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ArchiveTask(ctx, finishedRecord("task-5", models.StatusComplete), nil))
	require.NoError(t, svc.ArchiveTask(ctx, finishedRecord("task-6", models.StatusComplete), nil))
	require.NoError(t, svc.ArchiveTask(ctx, finishedRecord("task-7", models.StatusFailed), nil))

	require.NoError(t, svc.RecordTransition(ctx, coordinator.TransitionRecord{
		TaskID: "task-5", Stage: "retrieval", Attempt: 2, Outcome: "complete",
		StartedAt: time.Now().UTC(), Duration: time.Second,
	}))

	stats, err := svc.TaskAnalytics(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus["complete"])
	assert.Equal(t, 1, stats.ByStatus["failed"])
	assert.InDelta(t, 90000, stats.AvgDurationMS, 1)
	assert.InDelta(t, 0.9, stats.AvgConfidence, 0.001)
	assert.Equal(t, 1, stats.StageRetries["retrieval"])
	require.Len(t, stats.ByTemplate, 1)
	assert.Equal(t, "standard", stats.ByTemplate[0].Template)
	assert.Equal(t, 3, stats.ByTemplate[0].Count)
}

func TestAgentAnalytics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	samples := []struct {
		agent    string
		stage    string
		duration time.Duration
		success  bool
	}{
		{"retrieval-1", "retrieval", 100 * time.Millisecond, true},
		{"retrieval-1", "retrieval", 300 * time.Millisecond, true},
		{"retrieval-1", "retrieval", 0, false},
		{"reasoning-1", "reasoning", 2 * time.Second, true},
	}
	for _, s := range samples {
		require.NoError(t, svc.RecordAgentPerformance(ctx, s.agent, s.stage, s.duration, s.success))
	}

	stats, err := svc.AgentAnalytics(ctx, time.Hour)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byAgent := make(map[string]AgentStats, len(stats))
	for _, st := range stats {
		byAgent[st.Agent] = st
	}
	retrieval := byAgent["retrieval-1"]
	assert.Equal(t, 3, retrieval.Samples)
	assert.Equal(t, 2, retrieval.Successes)
	assert.InDelta(t, 2.0/3.0, retrieval.SuccessRate, 0.001)
	reasoning := byAgent["reasoning-1"]
	assert.Equal(t, 1, reasoning.Samples)
	assert.InDelta(t, 1.0, reasoning.SuccessRate, 0.001)
}

func TestTemplatesRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	needsWeb := true
	custom := &templates.Template{
		Name:        "compliance_review",
		Description: "Web-checked deep answer for compliance questions",
		Stages: []string{
			"intent", "retrieval", "web_augmentation", "reasoning", "moderation", "response_packaging",
		},
		ReasoningMaxTokens: 4096,
		Select:             &templates.Selector{NeedsWeb: &needsWeb, Complexity: []string{"high"}},
	}
	require.NoError(t, svc.SaveTemplates(ctx, []*templates.Template{custom}))

	// A second save with changed fields updates in place.
	custom.ReasoningMaxTokens = 8192
	require.NoError(t, svc.SaveTemplates(ctx, []*templates.Template{custom}))

	loaded, err := svc.LoadTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	got := loaded[0]
	assert.Equal(t, "compliance_review", got.Name)
	assert.Equal(t, custom.Stages, got.Stages)
	assert.Equal(t, 8192, got.ReasoningMaxTokens)
	require.NotNil(t, got.Select)
	require.NotNil(t, got.Select.NeedsWeb)
	assert.True(t, *got.Select.NeedsWeb)
	assert.Equal(t, []string{"high"}, got.Select.Complexity)
}

func TestLoadTemplatesSkipsInvalidRows(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Row with a plan that does not end in response_packaging.
	err := svc.client.DagTemplate.Create().
		SetName("broken").
		SetStages([]string{"retrieval"}).
		Exec(ctx)
	require.NoError(t, err)

	loaded, err := svc.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestDeleteExpired(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	old := time.Now().Add(-40 * 24 * time.Hour)
	err := svc.client.TaskHistory.Create().
		SetTaskID("old-task").
		SetUserID("u1").
		SetQuery("stale").
		SetTemplateName("standard").
		SetPlan([]string{"response_packaging"}).
		SetStatus(taskhistory.StatusComplete).
		SetStartedAt(old).
		SetCompletedAt(old).
		SetDurationMs(10).
		SetArchivedAt(old).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ArchiveTask(ctx, finishedRecord("fresh-task", models.StatusComplete), nil))

	count, err := svc.DeleteExpired(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := svc.client.TaskHistory.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	_, err = svc.DeleteExpired(ctx, 0)
	assert.Error(t, err)
}

func TestSearchTasks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec := finishedRecord("task-8", models.StatusComplete)
	rec.Query = "why is the compaction queue growing"
	require.NoError(t, svc.ArchiveTask(ctx, rec, nil))

	other := finishedRecord("task-9", models.StatusComplete)
	other.Query = "rotate api credentials"
	require.NoError(t, svc.ArchiveTask(ctx, other, nil))

	hits, err := svc.SearchTasks(ctx, "compaction queue", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "task-8", hits[0].TaskID)
}

func TestRecorderTurnsEventsIntoSamples(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	b := broker.NewMemoryBroker()
	defer b.Close()

	recorder := NewRecorder(svc, b)
	require.NoError(t, recorder.Start(ctx))
	defer recorder.Stop()

	require.NoError(t, b.PublishEvent(ctx, broker.HeartbeatSubject("retrieval-7"), models.HeartbeatEvent{
		Agent: "retrieval-7", Stage: "retrieval", Timestamp: time.Now().UTC(),
	}))
	require.NoError(t, b.PublishEvent(ctx, broker.StageCompleteSubject("task-10", "retrieval"), models.StageCompleteEvent{
		TaskID: "task-10", Stage: "retrieval", Attempt: 1, DurationMS: 120,
	}))
	require.NoError(t, b.PublishEvent(ctx, broker.StageFailedSubject("task-10", "reasoning"), models.StageFailedEvent{
		TaskID: "task-10", Stage: "reasoning", Attempt: 1, Kind: models.ErrKindStageFailed, Message: "boom",
	}))

	require.Eventually(t, func() bool {
		stats, err := svc.AgentAnalytics(ctx, time.Hour)
		return err == nil && len(stats) == 2
	}, 5*time.Second, 50*time.Millisecond)

	stats, err := svc.AgentAnalytics(ctx, time.Hour)
	require.NoError(t, err)
	byStage := make(map[string]AgentStats, len(stats))
	for _, st := range stats {
		byStage[st.Stage] = st
	}
	// Heartbeat named the retrieval agent; reasoning fell back to the
	// consumer naming convention.
	assert.Equal(t, "retrieval-7", byStage["retrieval"].Agent)
	assert.Equal(t, "agent-reasoning", byStage["reasoning"].Agent)
	assert.Equal(t, 1, byStage["retrieval"].Successes)
	assert.Equal(t, 0, byStage["reasoning"].Successes)
}
