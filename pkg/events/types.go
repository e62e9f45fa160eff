// Package events provides real-time task progress delivery via WebSocket,
// fed by the broker's transient event topics for cross-pod distribution.
//
// Client protocol: after the connection.established message, clients send
// subscribe/unsubscribe/catchup/ping actions. Channel names follow
// "task:{task_id}". Broker fan-out is best-effort; the catchup action
// replays the authoritative progress list from the task store, so a client
// that subscribes with catchup never misses an event, though it may see
// duplicates around the subscription boundary.
package events

import "time"

// Server → client message types.
const (
	// MessageTypeProgress wraps one task progress event.
	MessageTypeProgress = "task.progress"

	// MessageTypeResponseReady announces that the final response is
	// available for retrieval over the REST API.
	MessageTypeResponseReady = "task.response_ready"
)

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// TaskIDFromChannel extracts the task ID, or "" for a malformed channel.
func TaskIDFromChannel(channel string) string {
	const prefix = "task:"
	if len(channel) <= len(prefix) || channel[:len(prefix)] != prefix {
		return ""
	}
	return channel[len(prefix):]
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "catchup", "ping"
	Channel string `json:"channel,omitempty"` // Channel name (e.g., "task:abc-123")
	// Since bounds catchup replay; zero value replays the whole list.
	Since time.Time `json:"since,omitempty"`
}
