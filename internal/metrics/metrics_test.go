package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"todolists/internal/metrics"
)

func TestObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("lists", http.MethodGet, 200, 10*time.Millisecond)
	m.ObserveRequest("lists", http.MethodGet, 200, 20*time.Millisecond)

	expected := `
# HELP todolists_http_requests_total HTTP requests by route and status code.
# TYPE todolists_http_requests_total counter
todolists_http_requests_total{code="200",method="GET",route="lists"} 2
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "todolists_http_requests_total"); err != nil {
		t.Error(err)
	}
}

func TestObserveOutcome(t *testing.T) {
	m := metrics.New()
	m.ObserveOutcome("createlist", "invalid")
	m.ObserveOutcome("createlist", "")

	if n := testutil.CollectAndCount(m.Registry(), "todolists_route_outcomes_total"); n != 1 {
		t.Errorf("expected 1 outcome series, got %d", n)
	}
}

func TestSessionGauge(t *testing.T) {
	m := metrics.New()
	m.RegisterSessionGauge(func() int { return 3 })

	expected := `
# HELP todolists_sessions Sessions held in server memory.
# TYPE todolists_sessions gauge
todolists_sessions 3
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "todolists_sessions"); err != nil {
		t.Error(err)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *metrics.Metrics
	m.ObserveRequest("x", "GET", 200, time.Second)
	m.ObserveOutcome("x", "ok")
	m.RateLimited()
	m.RegisterSessionGauge(func() int { return 0 })
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.RateLimited()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "todolists_rate_limited_total 1") {
		t.Error("expected rate limited counter in exposition")
	}
}
