package server

import (
	"net/http"
	"time"

	"github.com/leapstack-labs/docnav/internal/docs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on an isolated registry,
// so each Server (and each test) starts from zero.
type Metrics struct {
	Registry *prometheus.Registry

	BuildsTotal          *prometheus.CounterVec
	BuildDurationSeconds prometheus.Histogram
	NavPages             prometheus.Gauge
}

// NewMetrics creates the collectors and registers them.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		BuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docnav_builds_total",
				Help: "Total number of navigation builds.",
			},
			[]string{"result"},
		),
		BuildDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "docnav_build_duration_seconds",
				Help:    "Duration of navigation builds in seconds.",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
			},
		),
		NavPages: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "docnav_nav_pages",
				Help: "Number of entries in the last successfully built tree.",
			},
		),
	}

	reg.MustRegister(m.BuildsTotal, m.BuildDurationSeconds, m.NavPages)
	return m
}

// ObserveBuild records one build.
func (m *Metrics) ObserveBuild(start time.Time, nav *docs.Navigation, err error) {
	m.BuildDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		m.BuildsTotal.WithLabelValues("error").Inc()
		return
	}
	m.BuildsTotal.WithLabelValues("success").Inc()
	m.NavPages.Set(float64(len(nav.Pages())))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
