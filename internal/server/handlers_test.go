package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	registry := timing.NewRegistry()
	s := NewServer(Config{Registry: registry})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url) //nolint:gosec // test URL from httptest
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestServerAddr(t *testing.T) {
	s := NewServer(Config{Host: "127.0.0.1", Port: 9090, Registry: timing.NewRegistry()})
	assert.Equal(t, "127.0.0.1:9090", s.Addr())
}

func TestHealthHandler(t *testing.T) {
	_, ts := newTestServer(t)

	var health HealthResponse
	resp := getJSON(t, ts.URL+"/health", &health)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Time)
}

func TestTimersHandlerEmpty(t *testing.T) {
	_, ts := newTestServer(t)

	var timers TimersResponse
	resp := getJSON(t, ts.URL+"/timers", &timers)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, timers.Timers)
	assert.Equal(t, 0, timers.Count)
}

func TestTimersHandlerListsStats(t *testing.T) {
	s, ts := newTestServer(t)
	for _, v := range []float64{1, 2, 3} {
		s.Registry().Add("build", v)
	}

	var timers TimersResponse
	resp := getJSON(t, ts.URL+"/timers", &timers)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var found *TimerStats
	for i := range timers.Timers {
		if timers.Timers[i].Name == "build" {
			found = &timers.Timers[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 3, found.Count)
	assert.InDelta(t, 6.0, found.Total, 1e-9)
	assert.InDelta(t, 2.0, found.Mean, 1e-9)
	require.NotNil(t, found.Stdev)
	assert.InDelta(t, 1.0, *found.Stdev, 1e-9)
}

func TestTimerHandler(t *testing.T) {
	s, ts := newTestServer(t)
	s.Registry().Add("deploy", 1.5)

	var stats TimerStats
	resp := getJSON(t, ts.URL+"/timers/deploy", &stats)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "deploy", stats.Name)
	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 1.5, stats.Total, 1e-9)
	// A single measurement has no sample standard deviation.
	assert.Nil(t, stats.Stdev)
}

func TestTimerHandlerUnknown(t *testing.T) {
	_, ts := newTestServer(t)

	var errResp ErrorResponse
	resp := getJSON(t, ts.URL+"/timers/missing", &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, errResp.Error, "missing")
}

func TestTimersHandlerClear(t *testing.T) {
	s, ts := newTestServer(t)
	s.Registry().Add("build", 1)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/timers", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = s.Registry().Get("build")
	assert.ErrorIs(t, err, timing.ErrUnknownTimer)
}

func TestTimersHandlerMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/timers", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRequestsAreInstrumented(t *testing.T) {
	s, ts := newTestServer(t)

	resp := getJSON(t, ts.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The measurement is recorded just after the response is written.
	assert.Eventually(t, func() bool {
		count, err := s.Registry().Count("http.health")
		return err == nil && count == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMetricsEndpoint(t *testing.T) {
	s, ts := newTestServer(t)
	s.Registry().Add("build", 2)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
