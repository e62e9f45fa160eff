package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/config"
	"github.com/ragweave/maestro/pkg/coordinator"
	"github.com/ragweave/maestro/pkg/events"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/taskstore"
	"github.com/ragweave/maestro/pkg/templates"
)

// newTestServer wires a server over an in-process platform with no agents
// attached: created tasks park on their first stage, which is all the
// handler tests need.
func newTestServer(t *testing.T) (*httptest.Server, *taskstore.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := taskstore.New(rdb, 10*time.Minute)

	mb := broker.NewMemoryBroker()
	t.Cleanup(mb.Close)

	registry, err := templates.NewRegistry("", "standard")
	require.NoError(t, err)

	cfg := config.CoordinatorConfig{
		StageTimeout:    2 * time.Second,
		TaskTTL:         10 * time.Minute,
		MaxStageRetries: 0,
		DefaultTemplate: "standard",
	}
	coord := coordinator.New(cfg, store, mb, registry, nil)
	coord.Start(context.Background())
	t.Cleanup(coord.Stop)

	connManager := events.NewConnectionManager(store, 5*time.Second)

	srv := NewServer(coord, store, registry, nil, nil, connManager)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createTask(t *testing.T, ts *httptest.Server, query string) string {
	t.Helper()
	resp := postJSON(t, ts.URL+"/api/v1/tasks", CreateTaskRequest{Query: query, UserID: "u1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[CreateTaskResponse](t, resp)
	require.NotEmpty(t, created.TaskID)
	return created.TaskID
}

func TestCreateTaskReturnsCreated(t *testing.T) {
	ts, _ := newTestServer(t)

	taskID := createTask(t, ts, "what is the request limit")
	assert.NotEmpty(t, taskID)
}

func TestCreateTaskValidationErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	cases := []struct {
		name string
		body CreateTaskRequest
	}{
		{"empty query", CreateTaskRequest{Query: "   ", UserID: "u1"}},
		{"unknown template", CreateTaskRequest{Query: "hello", UserID: "u1", Template: "nope"}},
		{"oversized query", CreateTaskRequest{Query: strings.Repeat("x", models.MaxQueryLength+1), UserID: "u1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/v1/tasks", tc.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateTaskInvalidBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/tasks", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTaskTrimsRecord(t *testing.T) {
	ts, store := newTestServer(t)
	taskID := createTask(t, ts, "what is the request limit")

	// Simulate a pipeline that accumulated a long context and some hits.
	_, err := store.Mutate(context.Background(), taskID, func(rec *models.TaskRecord) error {
		rec.Context = strings.Repeat("c", 2000)
		rec.RetrievalHits = []models.RetrievalHit{
			{ID: "d1", Score: 0.9, Snippet: "snippet"},
			{ID: "d2", Score: 0.5, Snippet: "snippet"},
		}
		return nil
	})
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/v1/tasks/" + taskID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decodeJSON[TaskStatusResponse](t, resp)

	assert.Equal(t, taskID, status.TaskID)
	assert.Len(t, status.ContextExcerpt, contextExcerptLimit)
	assert.Equal(t, 2, status.HitCount)
	assert.Equal(t, "standard", status.TemplateName)
}

func TestGetTaskNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/tasks/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProgressSinceFilter(t *testing.T) {
	ts, _ := newTestServer(t)
	taskID := createTask(t, ts, "what is the request limit")

	resp, err := http.Get(ts.URL + "/api/v1/tasks/" + taskID + "/progress")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decodeJSON[[]models.ProgressEvent](t, resp)
	require.NotEmpty(t, all)
	assert.Equal(t, models.PhaseStarted, all[0].Phase)

	// A since in the future filters everything out.
	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	resp, err = http.Get(ts.URL + "/api/v1/tasks/" + taskID + "/progress?since=" + future)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := decodeJSON[[]models.ProgressEvent](t, resp)
	assert.Empty(t, filtered)

	resp, err = http.Get(ts.URL + "/api/v1/tasks/" + taskID + "/progress?since=yesterday")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProgressUnknownTask(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/tasks/nope/progress")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAbortIsIdempotent(t *testing.T) {
	ts, _ := newTestServer(t)
	taskID := createTask(t, ts, "what is the request limit")

	resp := postJSON(t, ts.URL+"/api/v1/tasks/"+taskID+"/abort", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	aborted := decodeJSON[AbortResponse](t, resp)
	assert.Equal(t, string(models.StatusAborted), aborted.Status)

	// Second abort reports the same terminal status.
	resp = postJSON(t, ts.URL+"/api/v1/tasks/"+taskID+"/abort", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	again := decodeJSON[AbortResponse](t, resp)
	assert.Equal(t, string(models.StatusAborted), again.Status)
}

func TestRecentTasks(t *testing.T) {
	ts, _ := newTestServer(t)

	first := createTask(t, ts, "first question")
	second := createTask(t, ts, "second question")

	resp, err := http.Get(ts.URL + "/api/v1/users/u1/tasks")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recent := decodeJSON[RecentTasksResponse](t, resp)
	assert.Equal(t, "u1", recent.UserID)
	// Newest first.
	assert.Equal(t, []string{second, first}, recent.TaskIDs)
}

func TestListTemplates(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/templates")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tmpls := decodeJSON[[]templates.Template](t, resp)

	names := make([]string, 0, len(tmpls))
	for _, tmpl := range tmpls {
		names = append(names, tmpl.Name)
	}
	assert.Contains(t, names, "standard")
	assert.Contains(t, names, "simple_lookup")
}

func TestAnalyticsUnavailableWithoutArchive(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/api/v1/analytics/tasks", "/api/v1/analytics/agents"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
	}
}

func TestAnalyticsWindowValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/analytics/tasks?window=-5m")
	require.NoError(t, err)
	resp.Body.Close()
	// Window parse runs only when an archive is attached; without one the
	// endpoint reports unavailable first.
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthzReportsStoreHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decodeJSON[HealthResponse](t, resp)
	assert.Equal(t, healthStatusHealthy, health.Status)
	assert.Equal(t, healthStatusHealthy, health.Checks["task_store"].Status)
}

func TestSecurityHeadersSet(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestMetricsEndpointServesPrometheus(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
}

func TestCreateTaskUsesProxyUserHeader(t *testing.T) {
	ts, store := newTestServer(t)

	data, err := json.Marshal(CreateTaskRequest{Query: "who am i"})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/tasks", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-User", "alex")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[CreateTaskResponse](t, resp)

	rec, err := store.Get(context.Background(), created.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "alex", rec.UserID)
}

func TestWebSocketEndpointUpgrades(t *testing.T) {
	ts, _ := newTestServer(t)

	// A plain GET without upgrade headers must fail the handshake, not 404.
	resp, err := http.Get(ts.URL + "/api/v1/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}
