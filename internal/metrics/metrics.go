// Package metrics exposes Prometheus collectors for algorithm runs and HTTP
// requests on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes recorded in the outcome label.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the collectors. Each instance owns its own registry, so
// several servers (or tests) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	Runs     *prometheus.CounterVec
	Steps    *prometheus.HistogramVec
	Duration *prometheus.HistogramVec
	Requests *prometheus.CounterVec
}

// New registers every collector plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoscope_runs_total",
				Help: "Algorithm runs by algorithm id and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		Steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoscope_run_steps",
				Help:    "Number of steps produced per successful run",
				Buckets: prometheus.ExponentialBuckets(4, 2, 12),
			},
			[]string{"algorithm"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoscope_run_duration_seconds",
				Help:    "Wall time spent generating a step sequence",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoscope_http_requests_total",
				Help: "HTTP requests by route pattern, method and status code",
			},
			[]string{"route", "method", "code"},
		),
	}
	m.registry.MustRegister(
		m.Runs, m.Steps, m.Duration, m.Requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRun records one generation attempt.
func (m *Metrics) ObserveRun(algorithm string, steps int, elapsed time.Duration, err error) {
	if err != nil {
		m.Runs.WithLabelValues(algorithm, OutcomeError).Inc()
		return
	}
	m.Runs.WithLabelValues(algorithm, OutcomeOK).Inc()
	m.Steps.WithLabelValues(algorithm).Observe(float64(steps))
	m.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, code int) {
	m.Requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
