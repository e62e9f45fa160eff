package broker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/models"
)

func stageMsg(taskID, stage string) *models.StageMessage {
	return &models.StageMessage{
		TaskID:   taskID,
		Stage:    stage,
		Attempt:  1,
		IssuedAt: time.Now().UTC(),
		Query:    "q",
	}
}

func TestMemoryDeliversToConsumer(t *testing.T) {
	b := NewMemoryBroker()
	defer b.Close()
	ctx := context.Background()

	got := make(chan *models.StageMessage, 1)
	_, err := b.ConsumeStage(ctx, models.StageRetrieval, 1, func(_ context.Context, msg *models.StageMessage) error {
		got <- msg
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.PublishStage(ctx, stageMsg("t1", models.StageRetrieval)))

	select {
	case msg := <-got:
		assert.Equal(t, "t1", msg.TaskID)
	case <-time.After(2 * time.Second):
		t.Fatal("message never delivered")
	}
}

func TestMemoryParksUntilConsumerAttaches(t *testing.T) {
	b := NewMemoryBroker()
	defer b.Close()
	ctx := context.Background()

	require.NoError(t, b.PublishStage(ctx, stageMsg("t1", models.StageIntent)))

	got := make(chan string, 1)
	_, err := b.ConsumeStage(ctx, models.StageIntent, 1, func(_ context.Context, msg *models.StageMessage) error {
		got <- msg.TaskID
		return nil
	})
	require.NoError(t, err)

	select {
	case id := <-got:
		assert.Equal(t, "t1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("parked message never delivered")
	}
}

func TestMemoryRedeliversExactlyOnce(t *testing.T) {
	b := NewMemoryBroker()
	defer b.Close()
	ctx := context.Background()

	var mu sync.Mutex
	deliveries := 0
	done := make(chan struct{})
	_, err := b.ConsumeStage(ctx, models.StageReasoning, 1, func(_ context.Context, _ *models.StageMessage) error {
		mu.Lock()
		deliveries++
		if deliveries == 2 {
			close(done)
		}
		mu.Unlock()
		return errors.New("handler failed")
	})
	require.NoError(t, err)

	require.NoError(t, b.PublishStage(ctx, stageMsg("t1", models.StageReasoning)))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("redelivery never happened")
	}

	// No third delivery.
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, deliveries)
}

func TestMemorySecondConsumerRejected(t *testing.T) {
	b := NewMemoryBroker()
	defer b.Close()
	ctx := context.Background()

	noop := func(context.Context, *models.StageMessage) error { return nil }
	_, err := b.ConsumeStage(ctx, models.StageIntent, 1, noop)
	require.NoError(t, err)

	_, err = b.ConsumeStage(ctx, models.StageIntent, 1, noop)
	assert.Error(t, err)
}

func TestMemoryEventFanOut(t *testing.T) {
	b := NewMemoryBroker()
	defer b.Close()
	ctx := context.Background()

	sub, err := b.SubscribeEvents(ProgressSubject("t1"))
	require.NoError(t, err)
	defer sub.Close()

	evt := models.NewProgress("t1", models.StageRetrieval, models.PhaseStarted, "working")
	require.NoError(t, b.PublishEvent(ctx, ProgressSubject("t1"), evt))

	rctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	got, err := sub.Next(rctx)
	require.NoError(t, err)
	assert.Equal(t, ProgressSubject("t1"), got.Subject)

	var decoded models.ProgressEvent
	require.NoError(t, json.Unmarshal(got.Data, &decoded))
	assert.Equal(t, models.PhaseStarted, decoded.Phase)
}

func TestMemoryEventsNotReceivedAfterClose(t *testing.T) {
	b := NewMemoryBroker()
	defer b.Close()
	ctx := context.Background()

	sub, err := b.SubscribeEvents(ResponseReadySubject("t1"))
	require.NoError(t, err)
	sub.Close()

	require.NoError(t, b.PublishEvent(ctx, ResponseReadySubject("t1"), map[string]string{"task_id": "t1"}))

	rctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = sub.Next(rctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryPublishAfterCloseFails(t *testing.T) {
	b := NewMemoryBroker()
	b.Close()

	err := b.PublishStage(context.Background(), stageMsg("t1", models.StageIntent))
	assert.ErrorIs(t, err, ErrUnavailable)

	err = b.PublishEvent(context.Background(), ProgressSubject("t1"), models.NewProgress("t1", "", models.PhaseStarted, "x"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSubjectMatching(t *testing.T) {
	cases := []struct {
		pattern string
		subject string
		want    bool
	}{
		{"evt.progress.t1", "evt.progress.t1", true},
		{"evt.progress.t1", "evt.progress.t2", false},
		{"evt.progress.*", "evt.progress.t1", true},
		{"evt.progress.*", "evt.progress.t1.extra", false},
		{"evt.>", "evt.stage.complete.t1.reasoning", true},
		{"evt.>", "evt", false},
		{"stage.task.intent", "stage.task.intent", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, subjectMatches(tc.pattern, tc.subject),
			"pattern=%s subject=%s", tc.pattern, tc.subject)
	}
}

func TestSubjectBuilders(t *testing.T) {
	assert.Equal(t, "stage.task.reasoning", StageSubject(models.StageReasoning))
	assert.Equal(t, "evt.progress.t1", ProgressSubject("t1"))
	assert.Equal(t, "evt.stage.complete.t1.intent", StageCompleteSubject("t1", models.StageIntent))
	assert.Equal(t, "evt.stage.failed.t1.intent", StageFailedSubject("t1", models.StageIntent))
	assert.Equal(t, "evt.response.ready.t1", ResponseReadySubject("t1"))
	assert.Equal(t, "evt.agent.heartbeat.retrieval-1", HeartbeatSubject("retrieval-1"))
}
