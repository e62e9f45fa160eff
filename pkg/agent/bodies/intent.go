// Package bodies contains the specialist stage implementations plugged into
// the agent runtime: intent classification, retrieval, web augmentation,
// reasoning and moderation.
package bodies

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/llm"
	"github.com/ragweave/maestro/pkg/metrics"
	"github.com/ragweave/maestro/pkg/models"
)

// Intent classifies the query and emits advisory routing signals. The
// classification never fails the task: when the model is unavailable the
// heuristics stand alone.
type Intent struct {
	client llm.Client
}

// NewIntent builds the intent body. client may be nil for heuristics-only
// operation.
func NewIntent(client llm.Client) *Intent {
	return &Intent{client: client}
}

func (b *Intent) Stage() string { return models.StageIntent }

const intentSystemPrompt = `You classify user queries for a retrieval pipeline.
Respond with a single JSON object, no prose:
{"complexity": "low"|"medium"|"high", "needs_web": bool,
 "template_suggestion": string or "", "decomposition": [sub-questions]}`

type intentVerdict struct {
	Complexity         string   `json:"complexity"`
	NeedsWeb           bool     `json:"needs_web"`
	TemplateSuggestion string   `json:"template_suggestion"`
	Decomposition      []string `json:"decomposition"`
}

func (b *Intent) Run(ctx context.Context, in *agent.Input) (*models.StageDelta, error) {
	verdict := classifyHeuristically(in.Query)

	if b.client != nil {
		raw, err := b.client.Generate(ctx, intentSystemPrompt, in.Query, 256)
		if err != nil {
			metrics.LLMCalls.WithLabelValues(models.StageIntent, "failed").Inc()
			slog.Warn("Intent model call failed, using heuristics", "task_id", in.TaskID, "error", err)
		} else {
			metrics.LLMCalls.WithLabelValues(models.StageIntent, "ok").Inc()
			var v intentVerdict
			if jerr := json.Unmarshal([]byte(stripFences(raw)), &v); jerr != nil {
				slog.Warn("Intent model returned undecodable verdict", "task_id", in.TaskID, "error", jerr)
			} else {
				if v.Complexity != "" {
					verdict.Complexity = v.Complexity
				}
				verdict.NeedsWeb = verdict.NeedsWeb || v.NeedsWeb
				verdict.TemplateSuggestion = v.TemplateSuggestion
				verdict.Decomposition = v.Decomposition
			}
		}
	}

	result := map[string]any{
		models.ResultKeyComplexity: verdict.Complexity,
		models.ResultKeyNeedsWeb:   verdict.NeedsWeb,
	}
	if verdict.TemplateSuggestion != "" {
		result[models.ResultKeyTemplateSuggestion] = verdict.TemplateSuggestion
	}
	if len(verdict.Decomposition) > 0 {
		result[models.ResultKeyDecomposition] = verdict.Decomposition
	}

	return &models.StageDelta{
		ContextDelta: fmt.Sprintf("[intent] complexity=%s needs_web=%t", verdict.Complexity, verdict.NeedsWeb),
		Result:       result,
	}, nil
}

// recencyMarkers signal that the answer likely depends on information newer
// than the index.
var recencyMarkers = []string{"latest", "today", "current", "recent", "news", "this week", "this year"}

// depthMarkers signal multi-step analytical questions.
var depthMarkers = []string{"why", "compare", "trade-off", "tradeoff", "explain", "analyze", "versus", " vs "}

func classifyHeuristically(query string) intentVerdict {
	q := strings.ToLower(query)
	v := intentVerdict{Complexity: "medium"}
	for _, marker := range recencyMarkers {
		if strings.Contains(q, marker) {
			v.NeedsWeb = true
			break
		}
	}
	depth := 0
	for _, marker := range depthMarkers {
		if strings.Contains(q, marker) {
			depth++
		}
	}
	words := len(strings.Fields(q))
	switch {
	case depth >= 2 || words > 60:
		v.Complexity = "high"
	case depth == 0 && words <= 12 && !v.NeedsWeb:
		v.Complexity = "low"
	}
	return v
}

// stripFences removes a markdown code fence the model may wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
