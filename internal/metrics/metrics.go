// Package metrics exposes Prometheus metrics for post loading and lookups.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records post source loads and slug lookups.
type Metrics struct {
	registry *prometheus.Registry

	loadsTotal   *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	lookupsTotal *prometheus.CounterVec
	postsLoaded  prometheus.Gauge
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}

	m.loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_post_loads_total",
			Help: "Total number of post collection loads",
		},
		[]string{"status"},
	)
	m.loadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "folio_post_load_duration_seconds",
			Help:    "Time taken to load the post collection",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"status"},
	)
	m.lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_post_lookups_total",
			Help: "Total number of slug lookups",
		},
		[]string{"result"},
	)
	m.postsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_posts_loaded",
			Help: "Number of posts in the last successful load",
		},
	)

	for _, c := range []prometheus.Collector{m.loadsTotal, m.loadDuration, m.lookupsTotal, m.postsLoaded} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ObserveLoad(d time.Duration, count int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	} else {
		m.postsLoaded.Set(float64(count))
	}
	m.loadsTotal.WithLabelValues(status).Inc()
	m.loadDuration.WithLabelValues(status).Observe(d.Seconds())
}

func (m *Metrics) ObserveLookup(found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	m.lookupsTotal.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
