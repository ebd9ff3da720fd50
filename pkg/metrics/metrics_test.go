package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-feed/pkg/metrics"
)

func TestPrometheusHandler(t *testing.T) {
	p := metrics.NewPrometheus()
	p.ObserveProviderCall(metrics.OpListEvents, nil)
	p.ObserveProviderCall(metrics.OpListEvents, errors.New("boom"))
	p.ObserveEvents("events", 3)

	w := httptest.NewRecorder()
	p.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `calendar_feed_provider_calls_total{operation="list_events",outcome="success"} 1`)
	assert.Contains(t, string(body), `calendar_feed_provider_calls_total{operation="list_events",outcome="error"} 1`)
	assert.Contains(t, string(body), `calendar_feed_response_items_count{action="events"} 1`)
}

func TestNop(t *testing.T) {
	r := metrics.NewNop()
	assert.NotPanics(t, func() {
		r.ObserveProviderCall(metrics.OpGetCalendar, errors.New("x"))
		r.ObserveEvents("calendars", 0)
	})
}
