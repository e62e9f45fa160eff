package bodies

import (
	"context"
	"log/slog"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/models"
)

// VectorSearcher is the external vector index the retrieval stage queries.
type VectorSearcher interface {
	// Search returns up to topK hits ranked by score, best first. An empty
	// slice means no match; both are valid outcomes.
	Search(ctx context.Context, query string, topK int) ([]models.RetrievalHit, error)
}

// defaultTopK is used when stage args carry no override.
const defaultTopK = 8

// Retrieval queries the vector index. Index failures are non-fatal: the
// task proceeds with zero hits and downstream stages work from what exists.
type Retrieval struct {
	searcher VectorSearcher
}

func NewRetrieval(searcher VectorSearcher) *Retrieval {
	return &Retrieval{searcher: searcher}
}

func (b *Retrieval) Stage() string { return models.StageRetrieval }

func (b *Retrieval) Run(ctx context.Context, in *agent.Input) (*models.StageDelta, error) {
	topK := defaultTopK
	if v, ok := in.Args["top_k"].(float64); ok && v > 0 {
		topK = int(v)
	}

	hits, err := b.searcher.Search(ctx, in.Query, topK)
	if err != nil {
		slog.Warn("Vector search failed, proceeding with no hits", "task_id", in.TaskID, "error", err)
		hits = nil
	}

	return &models.StageDelta{
		Hits:   hits,
		Result: map[string]any{models.ResultKeyHitCount: len(hits)},
	}, nil
}
