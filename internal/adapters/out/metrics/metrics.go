// Package metrics owns the Prometheus collectors exported at /metrics.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fulfillment"

// Metrics groups the service collectors on one registry.
type Metrics struct {
	registry *prometheus.Registry

	transitions     *prometheus.CounterVec
	publishFailures prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	jobRuns         *prometheus.CounterVec
}

// New registers the collectors along with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Committed order status transitions.",
		}, []string{"from", "to"}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_event_publish_failures_total",
			Help:      "Order events that could not be published.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Background job runs by outcome.",
		}, []string{"job", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transitions,
		m.publishFailures,
		m.httpRequests,
		m.httpDuration,
		m.jobRuns,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveJob records the outcome of one job run.
func (m *Metrics) ObserveJob(job, outcome string) {
	m.jobRuns.WithLabelValues(job, outcome).Inc()
}

// InstrumentPublisher counts transitions and publish failures around next.
func (m *Metrics) InstrumentPublisher(next ports.OrderEventPublisher) ports.OrderEventPublisher {
	return instrumentedPublisher{next: next, metrics: m}
}

type instrumentedPublisher struct {
	next    ports.OrderEventPublisher
	metrics *Metrics
}

func (p instrumentedPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	p.metrics.transitions.WithLabelValues(event.From.String(), event.To.String()).Inc()

	err := p.next.PublishStatusChanged(ctx, event)
	if err != nil {
		p.metrics.publishFailures.Inc()
	}
	return err
}
