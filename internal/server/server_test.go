package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/funkdigen/pkg/graph"
	"github.com/matzehuels/funkdigen/pkg/observability"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Options{MaxSize: 8, CountCache: 4, Strategy: "successor"}, nil)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func lines(body string) []string {
	return strings.Split(strings.TrimSuffix(body, "\n"), "\n")
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Server"), "funkdigen/"))
}

func TestDigraphsDigraph6(t *testing.T) {
	rec := get(t, newTestServer(t), "/digraphs/5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	got := lines(rec.Body.String())
	require.Len(t, got, 47)
	assert.Equal(t, []string{"&D_____", "&D___P?", "&D___`?"}, got[:3])
	assert.Equal(t, []string{"&DP@AC?", "&D`@AC?", "&D`ACG?"}, got[44:])
}

func TestDigraphsInternalConnected(t *testing.T) {
	rec := get(t, newTestServer(t), "/digraphs/3?connected=true&internal=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{
		"[[1], [1], [1]]",
		"[[1], [2, 1]]",
		"[[3, 2, 1]]",
		"[[3, 1, 1]]",
	}, lines(rec.Body.String()))
}

func TestDigraphsLoopless(t *testing.T) {
	rec := get(t, newTestServer(t), "/digraphs/1?loopless=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "&@?\n", rec.Body.String())
}

func TestDigraphsJSON(t *testing.T) {
	rec := get(t, newTestServer(t), "/digraphs/4?format=json&strategy=pooled")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-ndjson", rec.Header().Get("Content-Type"))

	sc := bufio.NewScanner(rec.Body)
	n := 0
	for sc.Scan() {
		var g graph.Digraph
		require.NoError(t, json.Unmarshal(sc.Bytes(), &g))
		assert.Equal(t, 4, g.Order())
		assert.True(t, g.IsFunctional())
		n++
	}
	assert.Equal(t, 19, n)
}

func TestCount(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/count/7")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Size)
	assert.Equal(t, uint64(343), resp.Count)
	assert.Equal(t, "successor", resp.Strategy)
	assert.False(t, resp.Cached)

	rec = get(t, s, "/count/7")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(343), resp.Count)
	assert.True(t, resp.Cached)

	rec = get(t, s, "/count/7?connected=true&strategy=pooled")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(125), resp.Count)
	assert.True(t, resp.Connected)
	assert.Equal(t, "pooled", resp.Strategy)
	assert.False(t, resp.Cached)
}

func TestCountClientGone(t *testing.T) {
	s := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/count/7", nil).WithContext(ctx))
	assert.Empty(t, rec.Body.String())

	rec = get(t, s, "/count/7")
	var resp CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(343), resp.Count)
	assert.False(t, resp.Cached, "an abandoned count must not be cached")
}

func TestBadRequests(t *testing.T) {
	tests := []struct {
		target string
		code   string
	}{
		{"/digraphs/-1", "INVALID_SIZE"},
		{"/digraphs/five", "INVALID_SIZE"},
		{"/digraphs/9", "INVALID_SIZE"},
		{"/count/100", "INVALID_SIZE"},
		{"/digraphs/3?strategy=random", "INVALID_STRATEGY"},
		{"/digraphs/3?format=xml", "INVALID_FORMAT"},
		{"/count/3?connected=maybe", "INVALID_INPUT"},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := get(t, newTestServer(t), "/graphs")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDPropagation(t *testing.T) {
	s := newTestServer(t)
	const id = "6f1c2b5e-8a8e-4c1b-9b7a-2f3f0d6c9e11"

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	s := newTestServer(t)
	get(t, s, "/health")
	get(t, s, "/count/99")
	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest}, hooks.statuses)
}

func TestListenAndServeShutdown(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
