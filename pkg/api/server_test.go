package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/pkg/queue"
	testdb "github.com/reelworks/reelpipe/test/database"
)

type stubPool struct {
	health *queue.PoolHealth
}

func (s *stubPool) Health() *queue.PoolHealth { return s.health }

type stubSyncer struct {
	called bool
	err    error
}

func (s *stubSyncer) PollOnce(context.Context) error {
	s.called = true
	return s.err
}

func serve(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	db := testdb.NewTestClient(t)

	t.Run("healthy pool and database", func(t *testing.T) {
		pool := &stubPool{health: &queue.PoolHealth{IsHealthy: true, DBReachable: true, TotalWorkers: 2}}
		w := serve(t, NewServer(db, pool, nil), http.MethodGet, "/health")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Checks["database"].Status)
		assert.Equal(t, "healthy", resp.Checks["worker_pool"].Status)
		assert.NotEmpty(t, resp.Version)
	})

	t.Run("unhealthy pool degrades but stays 200", func(t *testing.T) {
		pool := &stubPool{health: &queue.PoolHealth{IsHealthy: false, DBError: "queue depth query failed"}}
		w := serve(t, NewServer(db, pool, nil), http.MethodGet, "/health")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "degraded", resp.Checks["worker_pool"].Status)
	})
}

func TestStatusEndpoint(t *testing.T) {
	db := testdb.NewTestClient(t)
	pool := &stubPool{health: &queue.PoolHealth{
		IsHealthy:    true,
		WorkerID:     "w-test",
		TotalWorkers: 4,
		QueueDepth:   7,
	}}

	w := serve(t, NewServer(db, pool, nil), http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"worker_id":"w-test"`)
	assert.Contains(t, w.Body.String(), `"queue_depth":7`)
}

func TestMetricsEndpoint(t *testing.T) {
	db := testdb.NewTestClient(t)
	w := serve(t, NewServer(db, nil, nil), http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestSyncEndpoint(t *testing.T) {
	db := testdb.NewTestClient(t)

	t.Run("triggers a poll", func(t *testing.T) {
		syncer := &stubSyncer{}
		w := serve(t, NewServer(db, nil, syncer), http.MethodPost, "/sync")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, syncer.called)
	})

	t.Run("propagates poll failure", func(t *testing.T) {
		syncer := &stubSyncer{err: errors.New("board unreachable")}
		w := serve(t, NewServer(db, nil, syncer), http.MethodPost, "/sync")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("disabled without a syncer", func(t *testing.T) {
		w := serve(t, NewServer(db, nil, nil), http.MethodPost, "/sync")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
