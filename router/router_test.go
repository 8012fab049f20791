package router

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ip-geo-lookup/logger"
	"ip-geo-lookup/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "debug", Output: buf})
	require.NoError(t, err)
	return log
}

func TestHealthEndpoint(t *testing.T) {
	var buf bytes.Buffer
	r := SetupRouter(metrics.New(), newTestLogger(t, &buf))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Contains(t, buf.String(), `"path":"/health"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	m.LookupsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	var buf bytes.Buffer
	r := SetupRouter(m, newTestLogger(t, &buf))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `iplookup_lookups_total{result="success"} 1`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
}

func TestUnknownPathLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New()
	r := SetupRouter(m, newTestLogger(t, &buf))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(t, &buf)

	srv, err := Listen("127.0.0.1:0", SetupRouter(metrics.New(), log), log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestListen_BadAddress(t *testing.T) {
	_, err := Listen("256.0.0.1:99999", http.NotFoundHandler(), logger.Nop())
	assert.Error(t, err)
}
