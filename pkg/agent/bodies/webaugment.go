package bodies

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/models"
)

// Fetcher pulls live documents from the web for queries the index cannot
// answer.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]models.RetrievalHit, error)
}

// WebAugment supplements retrieval with live fetches. Like retrieval, its
// failures are non-fatal: an unreachable fetcher yields an empty delta.
type WebAugment struct {
	fetcher Fetcher
}

func NewWebAugment(fetcher Fetcher) *WebAugment {
	return &WebAugment{fetcher: fetcher}
}

func (b *WebAugment) Stage() string { return models.StageWebAugmentation }

func (b *WebAugment) Run(ctx context.Context, in *agent.Input) (*models.StageDelta, error) {
	hits, err := b.fetcher.Fetch(ctx, in.Query)
	if err != nil {
		slog.Warn("Web fetch failed, proceeding without augmentation", "task_id", in.TaskID, "error", err)
		return &models.StageDelta{
			Result: map[string]any{models.ResultKeyHitCount: 0},
		}, nil
	}

	delta := &models.StageDelta{
		Hits:   hits,
		Result: map[string]any{models.ResultKeyHitCount: len(hits)},
	}
	if len(hits) > 0 {
		delta.ContextDelta = fmt.Sprintf("[web] %d live documents added", len(hits))
	}
	return delta, nil
}
