// Package metrics exposes Prometheus collectors for HTTP traffic and allocation rebuilds.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	allocationRuns     *prometheus.CounterVec
	allocationDuration prometheus.Histogram
	allocationPairs    *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by method and route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		allocationRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "allocation_rebuilds_total",
				Help: "Total number of auto-allocation runs by outcome.",
			},
			[]string{"outcome"},
		),
		allocationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "allocation_rebuild_duration_seconds",
				Help:    "Duration of auto-allocation runs including the database transaction.",
				Buckets: prometheus.DefBuckets,
			},
		),
		allocationPairs: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "allocation_assignments",
				Help: "Number of judge-team assignments produced by the last run for a round.",
			},
			[]string{"round_id"},
		),
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveAllocation records one auto-allocation run.
func (m *Metrics) ObserveAllocation(roundID string, pairs int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.allocationDuration.Observe(duration.Seconds())
	if err != nil {
		m.allocationRuns.WithLabelValues("error").Inc()
		return
	}
	m.allocationRuns.WithLabelValues("success").Inc()
	m.allocationPairs.WithLabelValues(roundID).Set(float64(pairs))
}
