// Package metrics owns the Prometheus registry of the estimator.
package metrics

import (
	"construction_estimator/internal/usecase/interfaces"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "estimator"

type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	calculated      *prometheus.CounterVec
	cityFallbacks   prometheus.Counter
	persistFailures prometheus.Counter
}

var _ interfaces.IEstimateMetrics = (*Metrics)(nil)

// New registers every collector on a fresh registry, so several instances can
// coexist in tests.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		calculated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_calculated_total",
			Help:      "Estimates calculated and stored, by material quality.",
		}, []string{"quality"}),
		cityFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "city_fallbacks_total",
			Help:      "Calculations priced with the default city because the location was unknown.",
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimate_persist_failures_total",
			Help:      "Calculations rejected because the estimate could not be stored.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.calculated,
		m.cityFallbacks,
		m.persistFailures,
	)
	return m
}

func (m *Metrics) EstimateCalculated(quality string) {
	m.calculated.WithLabelValues(quality).Inc()
}

func (m *Metrics) CityFallback() {
	m.cityFallbacks.Inc()
}

func (m *Metrics) PersistFailure() {
	m.persistFailures.Inc()
}

// ObserveRequest records one served HTTP request. route is the matched route
// template, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
