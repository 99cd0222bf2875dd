// Package metrics owns the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector. Each Registry has its own
// prometheus.Registry so tests can create as many as they need.
type Registry struct {
	reg *prometheus.Registry

	compositions    *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	eventsProcessed *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New creates and registers all collectors, plus the Go runtime and
// process collectors.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		compositions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_inventory_compositions_total",
				Help: "Products composed with inventory data, by resulting status and reason.",
			},
			[]string{"status", "reason"},
		),
		gatewayDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_gateway_request_duration_seconds",
				Help:    "Latency of inventory GetStock calls.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.3, 0.5, 1},
			},
			[]string{"outcome"},
		),
		eventsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_events_processed_total",
				Help: "Stock-change events consumed, by result.",
			},
			[]string{"result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request durations.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "endpoint", "status"},
		),
	}

	r.reg.MustRegister(
		r.compositions,
		r.gatewayDuration,
		r.eventsProcessed,
		r.httpRequests,
		r.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RecordComposition counts one composed product.
func (r *Registry) RecordComposition(status, reason string) {
	r.compositions.WithLabelValues(status, reason).Inc()
}

// ObserveInventoryRequest records the latency of one inventory call.
func (r *Registry) ObserveInventoryRequest(outcome string, d time.Duration) {
	r.gatewayDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// RecordEvent counts one consumed stock-change event.
func (r *Registry) RecordEvent(result string) {
	r.eventsProcessed.WithLabelValues(result).Inc()
}

// RecordRequest records metrics for one HTTP request.
func (r *Registry) RecordRequest(method, endpoint string, statusCode int, d time.Duration) {
	status := classifyStatus(statusCode)
	r.httpRequests.WithLabelValues(method, endpoint, status).Inc()
	r.httpDuration.WithLabelValues(method, endpoint, status).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

func classifyStatus(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
