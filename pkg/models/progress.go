package models

import "time"

// ProgressPhase is the lifecycle phase a progress event reports.
type ProgressPhase string

const (
	PhaseStarted  ProgressPhase = "started"
	PhaseProgress ProgressPhase = "progress"
	PhaseComplete ProgressPhase = "complete"
	PhaseFailed   ProgressPhase = "failed"
)

// ProgressEvent is an advisory record of task evolution. Broker fan-out of
// progress events is best-effort; the per-task list in the store is the
// ordered authority. Consumers must tolerate loss and duplicates.
type ProgressEvent struct {
	TaskID    string         `json:"task_id"`
	Stage     string         `json:"stage,omitempty"`
	Phase     ProgressPhase  `json:"phase"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// NewProgress builds a timestamped progress event.
func NewProgress(taskID, stage string, phase ProgressPhase, message string) ProgressEvent {
	return ProgressEvent{
		TaskID:    taskID,
		Stage:     stage,
		Phase:     phase,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}
