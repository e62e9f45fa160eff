package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/models"
)

// mockProgressQuerier implements ProgressQuerier for tests.
type mockProgressQuerier struct {
	events []models.ProgressEvent
	err    error
}

func (m *mockProgressQuerier) Progress(_ context.Context, taskID string, since time.Time) ([]models.ProgressEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.ProgressEvent
	for _, evt := range m.events {
		if evt.TaskID == taskID && evt.Timestamp.After(since) {
			out = append(out, evt)
		}
	}
	return out, nil
}

func setupTestManager(t *testing.T, progress ProgressQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(progress, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockProgressQuerier{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestSubscribeConfirmsAndTracksChannel(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("task-123")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, channel, msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestSubscribeRejectsNonTaskChannel(t *testing.T) {
	_, server := setupTestManager(t, &mockProgressQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "sessions"})

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := TaskChannel("task-broadcast")
	writeJSON(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	writeJSON(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1)
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 2
	}, time.Second, 10*time.Millisecond)

	manager.Broadcast(channel, []byte(`{"type":"task.progress","hello":"world"}`))

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, "task.progress", msg["type"])
		assert.Equal(t, "world", msg["hello"])
	}
}

func TestBroadcastSkipsUnsubscribedChannel(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("task-a")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, time.Second, 10*time.Millisecond)

	// Nothing listens on task-b; this must not panic or block.
	manager.Broadcast(TaskChannel("task-b"), []byte(`{"type":"task.progress"}`))

	manager.Broadcast(channel, []byte(`{"type":"task.progress","which":"a"}`))
	msg := readJSON(t, conn)
	assert.Equal(t, "a", msg["which"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("task-unsub")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, time.Second, 10*time.Millisecond)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestSubscribeRepliesWithCatchup(t *testing.T) {
	now := time.Now().UTC()
	querier := &mockProgressQuerier{
		events: []models.ProgressEvent{
			{TaskID: "task-cu", Stage: "", Phase: models.PhaseStarted, Message: "Task created", Timestamp: now.Add(-2 * time.Second)},
			{TaskID: "task-cu", Stage: "retrieval", Phase: models.PhaseComplete, Message: "Stage complete", Timestamp: now.Add(-time.Second)},
			{TaskID: "other", Stage: "intent", Phase: models.PhaseStarted, Message: "unrelated", Timestamp: now},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: TaskChannel("task-cu")})
	readJSON(t, conn) // subscription.confirmed

	first := readJSON(t, conn)
	assert.Equal(t, MessageTypeProgress, first["type"])
	event := first["event"].(map[string]interface{})
	assert.Equal(t, "task-cu", event["task_id"])
	assert.Equal(t, "Task created", event["message"])

	second := readJSON(t, conn)
	event = second["event"].(map[string]interface{})
	assert.Equal(t, "retrieval", event["stage"])
}

func TestCatchupSinceFiltersOldEvents(t *testing.T) {
	now := time.Now().UTC()
	querier := &mockProgressQuerier{
		events: []models.ProgressEvent{
			{TaskID: "task-since", Phase: models.PhaseStarted, Message: "old", Timestamp: now.Add(-time.Hour)},
			{TaskID: "task-since", Phase: models.PhaseComplete, Message: "new", Timestamp: now},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{
		Action:  "catchup",
		Channel: TaskChannel("task-since"),
		Since:   now.Add(-time.Minute),
	})

	msg := readJSON(t, conn)
	event := msg["event"].(map[string]interface{})
	assert.Equal(t, "new", event["message"])
}

func TestPingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockProgressQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestDisconnectCleansUpSubscriptions(t *testing.T) {
	manager, server := setupTestManager(t, &mockProgressQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("task-gone")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTaskIDFromChannel(t *testing.T) {
	assert.Equal(t, "abc", TaskIDFromChannel("task:abc"))
	assert.Equal(t, "", TaskIDFromChannel("task:"))
	assert.Equal(t, "", TaskIDFromChannel("session:abc"))
	assert.Equal(t, "", TaskIDFromChannel(""))
}
