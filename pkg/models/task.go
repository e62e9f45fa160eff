// Package models defines the core data types shared across the coordinator,
// agents, store and API: task records, stage messages, progress events and
// per-stage results.
package models

import (
	"fmt"
	"slices"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task status values. All statuses other than pending/in_progress are
// terminal and absorbing.
const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusComplete   TaskStatus = "complete"
	StatusFailed     TaskStatus = "failed"
	StatusAborted    TaskStatus = "aborted"
	StatusTimedOut   TaskStatus = "timed_out"
)

// Terminal reports whether the status is absorbing.
func (s TaskStatus) Terminal() bool {
	switch s {
	case StatusComplete, StatusFailed, StatusAborted, StatusTimedOut:
		return true
	}
	return false
}

// Stage names understood by the platform. response_packaging is executed
// in-process by the coordinator; the rest are handled by agent pools.
const (
	StageIntent            = "intent"
	StageRetrieval         = "retrieval"
	StageWebAugmentation   = "web_augmentation"
	StageReasoning         = "reasoning"
	StageModeration        = "moderation"
	StageResponsePackaging = "response_packaging"
)

// MaxQueryLength bounds the user query accepted at task creation.
const MaxQueryLength = 8192

// RetrievalHit is a single ranked result from the vector index.
type RetrievalHit struct {
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Snippet  string            `json:"snippet,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Response is the packaged final answer, present iff status is complete.
type Response struct {
	Content    string   `json:"content"`
	Citations  []string `json:"citations,omitempty"`
	Confidence float64  `json:"confidence"`
	Steps      []string `json:"steps,omitempty"`
}

// TaskError carries the diagnostic for a non-success terminal state.
type TaskError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Stage   string    `json:"stage,omitempty"`
}

// TaskRecord is the authoritative live state of a task, stored as a single
// JSON value in the task store and mutated only through Store.Mutate.
type TaskRecord struct {
	TaskID          string                    `json:"task_id"`
	UserID          string                    `json:"user_id"`
	Query           string                    `json:"query"`
	TemplateName    string                    `json:"template_name"`
	Plan            []string                  `json:"plan"`
	CompletedStages []string                  `json:"completed_stages"`
	CurrentStage    string                    `json:"current_stage,omitempty"`
	Status          TaskStatus                `json:"status"`
	Context         string                    `json:"context,omitempty"`
	RetrievalHits   []RetrievalHit            `json:"retrieval_hits,omitempty"`
	StageResults    map[string]map[string]any `json:"stage_results,omitempty"`
	Response        *Response                 `json:"response,omitempty"`
	Error           *TaskError                `json:"error,omitempty"`
	StartedAt       time.Time                 `json:"started_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
	TTLSeconds      int                       `json:"ttl_hint"`

	// One-shot flags: intent may revise the plan at most once, and
	// moderation may send reasoning back at most once.
	PlanRevised        bool `json:"plan_revised,omitempty"`
	ReasoningRetryUsed bool `json:"reasoning_retry_used,omitempty"`
}

// NextStage returns the stage that should run next, or "" when the plan is
// exhausted.
func (t *TaskRecord) NextStage() string {
	if len(t.CompletedStages) >= len(t.Plan) {
		return ""
	}
	return t.Plan[len(t.CompletedStages)]
}

// StageCompleted reports whether the named stage already appears in
// completed_stages. Used by agents to detect broker redeliveries.
func (t *TaskRecord) StageCompleted(stage string) bool {
	return slices.Contains(t.CompletedStages, stage)
}

// Validate checks the structural invariants that must hold after every
// committed update. Store.Mutate rejects any transformation whose output
// fails validation.
func (t *TaskRecord) Validate() error {
	if t.TaskID == "" {
		return fmt.Errorf("task record: task_id is empty")
	}
	if len(t.CompletedStages) > len(t.Plan) {
		return fmt.Errorf("task %s: completed_stages longer than plan", t.TaskID)
	}
	for i, stage := range t.CompletedStages {
		if t.Plan[i] != stage {
			return fmt.Errorf("task %s: completed_stages is not a prefix of plan (%q at %d, plan has %q)",
				t.TaskID, stage, i, t.Plan[i])
		}
	}
	switch t.Status {
	case StatusPending, StatusInProgress:
		want := t.NextStage()
		if t.CurrentStage != want {
			return fmt.Errorf("task %s: current_stage %q does not match plan position %q",
				t.TaskID, t.CurrentStage, want)
		}
	case StatusComplete, StatusFailed, StatusAborted, StatusTimedOut:
		if t.CurrentStage != "" {
			return fmt.Errorf("task %s: terminal status %s with non-null current_stage %q",
				t.TaskID, t.Status, t.CurrentStage)
		}
	default:
		return fmt.Errorf("task %s: unknown status %q", t.TaskID, t.Status)
	}
	if (t.Response != nil) != (t.Status == StatusComplete) {
		return fmt.Errorf("task %s: response must be set iff status is complete (status=%s)",
			t.TaskID, t.Status)
	}
	if t.Error != nil && t.Error.Stage != "" && !slices.Contains(t.Plan, t.Error.Stage) {
		return fmt.Errorf("task %s: error.stage %q is not a member of the plan", t.TaskID, t.Error.Stage)
	}
	return nil
}

// Clone returns a deep copy of the record. Mutate hands the transformation a
// clone so a failed CAS round never leaks partial edits.
func (t *TaskRecord) Clone() *TaskRecord {
	cp := *t
	cp.Plan = slices.Clone(t.Plan)
	cp.CompletedStages = slices.Clone(t.CompletedStages)
	cp.RetrievalHits = slices.Clone(t.RetrievalHits)
	if t.StageResults != nil {
		cp.StageResults = make(map[string]map[string]any, len(t.StageResults))
		for k, v := range t.StageResults {
			inner := make(map[string]any, len(v))
			for ik, iv := range v {
				inner[ik] = iv
			}
			cp.StageResults[k] = inner
		}
	}
	if t.Response != nil {
		r := *t.Response
		r.Citations = slices.Clone(t.Response.Citations)
		r.Steps = slices.Clone(t.Response.Steps)
		cp.Response = &r
	}
	if t.Error != nil {
		e := *t.Error
		cp.Error = &e
	}
	return &cp
}
