package bodies

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/llm"
	"github.com/ragweave/maestro/pkg/metrics"
	"github.com/ragweave/maestro/pkg/models"
)

// Reasoning synthesizes a draft answer from the accumulated context and
// retrieval hits. Unlike retrieval, a model failure here is fatal for the
// attempt: there is no answer without it.
type Reasoning struct {
	client    llm.Client
	maxTokens int
}

// NewReasoning builds the reasoning body with the default token budget.
// Stage args may raise it per task (deep_reasoning template).
func NewReasoning(client llm.Client, maxTokens int) *Reasoning {
	return &Reasoning{client: client, maxTokens: maxTokens}
}

func (b *Reasoning) Stage() string { return models.StageReasoning }

const reasoningSystemPrompt = `You answer questions using only the provided sources
and context. Cite every source you rely on inline as [doc:ID] using the IDs
given. If the sources do not contain the answer, say so plainly.`

// docMarker extracts [doc:ID] citations from a draft.
var docMarker = regexp.MustCompile(`\[doc:([^\]\s]+)\]`)

func (b *Reasoning) Run(ctx context.Context, in *agent.Input) (*models.StageDelta, error) {
	maxTokens := b.maxTokens
	if v, ok := in.Args["reasoning_max_tokens"].(float64); ok && v > 0 {
		maxTokens = int(v)
	}

	draft, err := b.client.Generate(ctx, reasoningSystemPrompt, buildReasoningPrompt(in), maxTokens)
	if err != nil {
		metrics.LLMCalls.WithLabelValues(models.StageReasoning, "failed").Inc()
		return nil, fmt.Errorf("reasoning synthesis failed: %w", err)
	}
	metrics.LLMCalls.WithLabelValues(models.StageReasoning, "ok").Inc()

	sources := extractSources(draft)
	return &models.StageDelta{
		ContextDelta: "[reasoning draft]\n" + draft,
		Result: map[string]any{
			models.ResultKeyDraft:   draft,
			models.ResultKeySources: sources,
		},
	}, nil
}

func buildReasoningPrompt(in *agent.Input) string {
	var sb strings.Builder
	sb.WriteString("Question: ")
	sb.WriteString(in.Query)
	sb.WriteString("\n")
	if in.Context != "" {
		sb.WriteString("\nContext so far:\n")
		sb.WriteString(in.Context)
		sb.WriteString("\n")
	}
	if len(in.Hits) > 0 {
		sb.WriteString("\nSources:\n")
		for _, hit := range in.Hits {
			fmt.Fprintf(&sb, "[doc:%s] %s\n", hit.ID, hit.Snippet)
		}
	} else {
		sb.WriteString("\nSources: none available.\n")
	}
	return sb.String()
}

// extractSources returns the distinct cited doc ids in first-use order.
func extractSources(draft string) []string {
	seen := make(map[string]bool)
	var sources []string
	for _, m := range docMarker.FindAllStringSubmatch(draft, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			sources = append(sources, m[1])
		}
	}
	return sources
}
