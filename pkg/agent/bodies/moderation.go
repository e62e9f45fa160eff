package bodies

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/llm"
	"github.com/ragweave/maestro/pkg/metrics"
	"github.com/ragweave/maestro/pkg/models"
)

// Moderation scores the reasoning draft for groundedness. A score below the
// threshold raises the retry_reasoning signal, which the coordinator honors
// at most once per task. Model failures fall back to a structural heuristic
// so moderation itself never sinks a task.
type Moderation struct {
	client    llm.Client
	threshold float64
}

func NewModeration(client llm.Client, threshold float64) *Moderation {
	return &Moderation{client: client, threshold: threshold}
}

func (b *Moderation) Stage() string { return models.StageModeration }

const moderationSystemPrompt = `You grade a draft answer for groundedness in its
cited sources. Respond with a single JSON object, no prose:
{"score": number between 0 and 1, "notes": short string}`

type moderationVerdict struct {
	Score float64 `json:"score"`
	Notes string  `json:"notes"`
}

func (b *Moderation) Run(ctx context.Context, in *agent.Input) (*models.StageDelta, error) {
	draft := draftFromContext(in.Context)

	score, notes := b.scoreWithModel(ctx, in, draft)
	retry := score < b.threshold

	result := map[string]any{
		models.ResultKeyScore: score,
	}
	if retry {
		result[models.ResultKeyRetryReasoning] = true
	}
	if notes != "" {
		result["notes"] = notes
	}
	return &models.StageDelta{Result: result}, nil
}

func (b *Moderation) scoreWithModel(ctx context.Context, in *agent.Input, draft string) (float64, string) {
	if b.client != nil && draft != "" {
		prompt := "Draft answer:\n" + draft + "\n\nQuestion: " + in.Query
		raw, err := b.client.Generate(ctx, moderationSystemPrompt, prompt, 128)
		if err == nil {
			metrics.LLMCalls.WithLabelValues(models.StageModeration, "ok").Inc()
			var v moderationVerdict
			if jerr := json.Unmarshal([]byte(stripFences(raw)), &v); jerr == nil && v.Score >= 0 && v.Score <= 1 {
				return v.Score, v.Notes
			}
			slog.Warn("Moderation model returned undecodable verdict", "task_id", in.TaskID)
		} else {
			metrics.LLMCalls.WithLabelValues(models.StageModeration, "failed").Inc()
			slog.Warn("Moderation model call failed, using heuristic", "task_id", in.TaskID, "error", err)
		}
	}
	return heuristicScore(draft, in.Hits), "heuristic"
}

// heuristicScore grades structurally: an empty draft is worthless, a cited
// draft grounded in actual hits scores well, an uncited one sits near the
// default threshold.
func heuristicScore(draft string, hits []models.RetrievalHit) float64 {
	if strings.TrimSpace(draft) == "" {
		return 0
	}
	cited := len(extractSources(draft))
	switch {
	case cited > 0 && len(hits) > 0:
		return 0.9
	case len(hits) == 0:
		// Nothing to cite; do not punish the draft for it.
		return 0.7
	default:
		return 0.5
	}
}

// draftFromContext pulls the latest reasoning draft out of the accumulated
// context.
func draftFromContext(taskContext string) string {
	const marker = "[reasoning draft]\n"
	idx := strings.LastIndex(taskContext, marker)
	if idx < 0 {
		return ""
	}
	return taskContext[idx+len(marker):]
}
