package events

import (
	"context"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/models"
)

func TestBridgeForwardsProgressToSubscribers(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})
	b := broker.NewMemoryBroker()
	defer b.Close()

	bridge := NewBrokerBridge(b, manager)
	require.NoError(t, bridge.Start(context.Background()))
	defer bridge.Stop()

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("task-live")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, time.Second, 10*time.Millisecond)

	evt := models.NewProgress("task-live", "reasoning", models.PhaseStarted, "Stage started")
	require.NoError(t, b.PublishEvent(context.Background(), broker.ProgressSubject("task-live"), evt))

	msg := readJSON(t, conn)
	assert.Equal(t, MessageTypeProgress, msg["type"])
	assert.Equal(t, channel, msg["channel"])
	event := msg["event"].(map[string]interface{})
	assert.Equal(t, "reasoning", event["stage"])
	assert.Equal(t, "Stage started", event["message"])
}

func TestBridgeForwardsResponseReady(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})
	b := broker.NewMemoryBroker()
	defer b.Close()

	bridge := NewBrokerBridge(b, manager)
	require.NoError(t, bridge.Start(context.Background()))
	defer bridge.Stop()

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("task-done")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, b.PublishEvent(context.Background(),
		broker.ResponseReadySubject("task-done"),
		models.ResponseReadyEvent{TaskID: "task-done"}))

	msg := readJSON(t, conn)
	assert.Equal(t, MessageTypeResponseReady, msg["type"])
	assert.Equal(t, "task-done", msg["task_id"])
}

func TestBridgeIgnoresEventsForOtherTasks(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})
	b := broker.NewMemoryBroker()
	defer b.Close()

	bridge := NewBrokerBridge(b, manager)
	require.NoError(t, bridge.Start(context.Background()))
	defer bridge.Stop()

	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: TaskChannel("task-mine")})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.subscriberCount(TaskChannel("task-mine")) == 1
	}, time.Second, 10*time.Millisecond)

	other := models.NewProgress("task-other", "intent", models.PhaseStarted, "not for us")
	require.NoError(t, b.PublishEvent(context.Background(), broker.ProgressSubject("task-other"), other))
	mine := models.NewProgress("task-mine", "intent", models.PhaseStarted, "for us")
	require.NoError(t, b.PublishEvent(context.Background(), broker.ProgressSubject("task-mine"), mine))

	// The first message delivered must be ours; the other task's event was
	// broadcast to a channel with no subscribers.
	msg := readJSON(t, conn)
	event := msg["event"].(map[string]interface{})
	assert.Equal(t, "task-mine", event["task_id"])

	conn.Close(websocket.StatusNormalClosure, "")
}
