package models

import "time"

// StageCompleteEvent is published on evt.stage.complete.<task>.<stage> when
// an agent finishes a stage. The coordinator uses Result to read control
// signals without re-fetching the record.
type StageCompleteEvent struct {
	TaskID     string         `json:"task_id"`
	Stage      string         `json:"stage"`
	Attempt    int            `json:"attempt"`
	Result     map[string]any `json:"result,omitempty"`
	HitsAdded  int            `json:"hits_added,omitempty"`
	DurationMS int64          `json:"duration_ms"`
}

// StageFailedEvent is published on evt.stage.failed.<task>.<stage> when a
// stage attempt errors or times out.
type StageFailedEvent struct {
	TaskID  string    `json:"task_id"`
	Stage   string    `json:"stage"`
	Attempt int       `json:"attempt"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// HeartbeatEvent is the periodic liveness signal from an agent process.
type HeartbeatEvent struct {
	Agent     string    `json:"agent"`
	Stage     string    `json:"stage"`
	Timestamp time.Time `json:"timestamp"`
}

// ResponseReadyEvent announces that a task's final response is available.
type ResponseReadyEvent struct {
	TaskID string `json:"task_id"`
}
