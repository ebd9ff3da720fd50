package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calendar_feed"

// Operation names reported for provider calls.
const (
	OpListEvents    = "list_events"
	OpListCalendars = "list_calendars"
	OpGetCalendar   = "get_calendar"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Recorder is the observability hook the use case reports to.
type Recorder interface {
	ObserveProviderCall(operation string, err error)
	ObserveEvents(action string, count int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveProviderCall(string, error) {}
func (nopRecorder) ObserveEvents(string, int)         {}

// NewNop returns a Recorder that records nothing.
func NewNop() Recorder { return nopRecorder{} }

// Prometheus records to a private registry served by Handler.
type Prometheus struct {
	registry      *prometheus.Registry
	providerCalls *prometheus.CounterVec
	eventsServed  *prometheus.HistogramVec
}

// NewPrometheus registers the service collectors plus Go and process collectors.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()

	p := &Prometheus{
		registry: reg,
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Calendar provider calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		eventsServed: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "response_items",
			Help:      "Number of items returned per response.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000, 2500},
		}, []string{"action"}),
	}

	reg.MustRegister(
		p.providerCalls,
		p.eventsServed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) ObserveProviderCall(operation string, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	p.providerCalls.WithLabelValues(operation, outcome).Inc()
}

func (p *Prometheus) ObserveEvents(action string, count int) {
	p.eventsServed.WithLabelValues(action).Observe(float64(count))
}

// Handler exposes the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
