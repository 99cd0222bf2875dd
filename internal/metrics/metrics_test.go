package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Counters(t *testing.T) {
	t.Parallel()
	r := New()

	r.RecordComposition("OK", "ok")
	r.RecordComposition("DEGRADED", "timeout")
	r.RecordComposition("DEGRADED", "timeout")
	r.RecordEvent("invalidated")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.compositions.WithLabelValues("OK", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.compositions.WithLabelValues("DEGRADED", "timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.eventsProcessed.WithLabelValues("invalidated")))
}

func TestRegistry_Histograms(t *testing.T) {
	t.Parallel()
	r := New()

	r.ObserveInventoryRequest("ok", 20*time.Millisecond)
	r.RecordRequest(http.MethodPost, "/query", 200, 5*time.Millisecond)
	r.RecordRequest(http.MethodPost, "/query", 503, 5*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(r.gatewayDuration))
	assert.Equal(t, 2, testutil.CollectAndCount(r.httpRequests))
}

func TestRegistry_Handler(t *testing.T) {
	t.Parallel()
	r := New()
	r.RecordEvent("duplicate")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `inventory_events_processed_total{result="duplicate"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()
	tests := map[int]string{200: "2xx", 302: "3xx", 404: "4xx", 503: "5xx", 42: "unknown", 700: "unknown"}
	for code, want := range tests {
		assert.Equal(t, want, classifyStatus(code), "code %d", code)
	}
}
