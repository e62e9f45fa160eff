package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/models"
)

func hitServer(t *testing.T, path string, hits []models.RetrievalHit, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, path, r.URL.Path)
		_ = json.NewEncoder(w).Encode(searchResponse{Hits: hits})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSearch(t *testing.T) {
	hits := []models.RetrievalHit{
		{ID: "d1", Score: 0.93, Snippet: "Leases expire after the ack wait."},
		{ID: "d2", Score: 0.41, Snippet: "Unrelated."},
	}
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "lease expiry", req.Query)
		assert.Equal(t, 5, req.TopK)
		_ = json.NewEncoder(w).Encode(searchResponse{Hits: hits})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	got, err := client.Search(context.Background(), "lease expiry", 5)
	require.NoError(t, err)
	assert.Equal(t, hits, got)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestClientSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Search(context.Background(), "q", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestWebFetcherCachesByQuery(t *testing.T) {
	var calls atomic.Int32
	srv := hitServer(t, "/v1/fetch", []models.RetrievalHit{{ID: "w1", Score: 0.7}}, &calls)

	fetcher := NewWebFetcher(srv.URL, time.Minute)

	first, err := fetcher.Fetch(context.Background(), "same query")
	require.NoError(t, err)
	second, err := fetcher.Fetch(context.Background(), "same query")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	_, err = fetcher.Fetch(context.Background(), "different query")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWebFetcherErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	fetcher := NewWebFetcher(srv.URL, time.Minute)
	_, err := fetcher.Fetch(context.Background(), "q")
	require.Error(t, err)
	_, err = fetcher.Fetch(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10 * time.Millisecond)
	cache.Set("k", []models.RetrievalHit{{ID: "d1"}})

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Len(t, got, 1)

	time.Sleep(20 * time.Millisecond)
	_, ok = cache.Get("k")
	assert.False(t, ok)
}
