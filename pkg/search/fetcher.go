package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ragweave/maestro/pkg/models"
)

// WebFetcher pulls live documents from a web fetch gateway for queries the
// index cannot answer. Results are cached briefly: repeated stage attempts
// for the same query should not hammer the gateway.
type WebFetcher struct {
	httpClient *http.Client
	baseURL    string
	cache      *Cache
}

// NewWebFetcher creates a fetcher for the gateway at baseURL.
func NewWebFetcher(baseURL string, cacheTTL time.Duration) *WebFetcher {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &WebFetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		cache:      NewCache(cacheTTL),
	}
}

type fetchRequest struct {
	Query string `json:"query"`
}

// Fetch returns live documents relevant to query.
func (f *WebFetcher) Fetch(ctx context.Context, query string) ([]models.RetrievalHit, error) {
	if hits, ok := f.cache.Get(query); ok {
		return hits, nil
	}

	body, err := json.Marshal(fetchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode fetch request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/fetch", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch from gateway at %s: %w", f.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch gateway returned HTTP %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode fetch response: %w", err)
	}

	f.cache.Set(query, out.Hits)
	return out.Hits, nil
}
