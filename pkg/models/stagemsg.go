package models

import "time"

// StageMessage is the persisted broker payload dispatched to a stage queue.
// Redelivery after a consumer nack or crash is expected; consumers must be
// idempotent (see TaskRecord.StageCompleted).
type StageMessage struct {
	TaskID                string         `json:"task_id"`
	Stage                 string         `json:"stage"`
	Attempt               int            `json:"attempt"`
	IssuedAt              time.Time      `json:"issued_at"`
	Query                 string         `json:"query"`
	UserID                string         `json:"user_id"`
	ContextSnapshot       string         `json:"context_snapshot,omitempty"`
	RetrievalHitsSnapshot []RetrievalHit `json:"retrieval_hits_snapshot,omitempty"`
	StageArgs             map[string]any `json:"stage_args,omitempty"`
}

// StageDelta is what a stage body returns: an append-only contribution to
// the task's context, additional retrieval hits, and a structured result
// recorded under stage_results[stage].
type StageDelta struct {
	ContextDelta string         `json:"context_delta,omitempty"`
	Hits         []RetrievalHit `json:"hits,omitempty"`
	Result       map[string]any `json:"result,omitempty"`
}

// Keys used in the structured results of the built-in stages. The
// coordinator inspects these when advancing the plan.
const (
	ResultKeyTemplateSuggestion = "template_suggestion"
	ResultKeyNeedsWeb           = "needs_web"
	ResultKeyComplexity         = "complexity"
	ResultKeyDecomposition      = "decomposition"
	ResultKeyRetryReasoning     = "retry_reasoning"
	ResultKeyScore              = "score"
	ResultKeyDraft              = "draft"
	ResultKeySources            = "sources"
	ResultKeyHitCount           = "hit_count"
)
