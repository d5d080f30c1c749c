package server

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MeKo-Tech/tictoc/pkg/timing"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tictoc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tictoc_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tictoc_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	reportsBroadcast = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tictoc_reports_broadcast_total",
			Help: "Total number of timer reports sent to WebSocket clients",
		},
	)
)

// registryCollector projects live registry statistics into the Prometheus
// exposition, one series per timer name.
type registryCollector struct {
	registry *timing.Registry

	countDesc  *prometheus.Desc
	totalDesc  *prometheus.Desc
	minDesc    *prometheus.Desc
	maxDesc    *prometheus.Desc
	meanDesc   *prometheus.Desc
	medianDesc *prometheus.Desc
}

func newRegistryCollector(registry *timing.Registry) *registryCollector {
	label := []string{"name"}
	return &registryCollector{
		registry:   registry,
		countDesc:  prometheus.NewDesc("tictoc_timer_count", "Number of completed measurements", label, nil),
		totalDesc:  prometheus.NewDesc("tictoc_timer_total_seconds", "Cumulative measured seconds", label, nil),
		minDesc:    prometheus.NewDesc("tictoc_timer_min_seconds", "Smallest measurement in seconds", label, nil),
		maxDesc:    prometheus.NewDesc("tictoc_timer_max_seconds", "Largest measurement in seconds", label, nil),
		meanDesc:   prometheus.NewDesc("tictoc_timer_mean_seconds", "Mean measurement in seconds", label, nil),
		medianDesc: prometheus.NewDesc("tictoc_timer_median_seconds", "Median measurement in seconds", label, nil),
	}
}

func (c *registryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.countDesc
	ch <- c.totalDesc
	ch <- c.minDesc
	ch <- c.maxDesc
	ch <- c.meanDesc
	ch <- c.medianDesc
}

func (c *registryCollector) Collect(ch chan<- prometheus.Metric) {
	for _, name := range c.registry.Names() {
		stats, err := c.registry.Get(name)
		if err != nil {
			// Cleared between Names and Get; nothing to report.
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.countDesc, prometheus.GaugeValue, float64(stats.Count), name)
		ch <- prometheus.MustNewConstMetric(c.totalDesc, prometheus.GaugeValue, stats.Total, name)
		ch <- prometheus.MustNewConstMetric(c.minDesc, prometheus.GaugeValue, stats.Min, name)
		ch <- prometheus.MustNewConstMetric(c.maxDesc, prometheus.GaugeValue, stats.Max, name)
		ch <- prometheus.MustNewConstMetric(c.meanDesc, prometheus.GaugeValue, stats.Mean, name)
		ch <- prometheus.MustNewConstMetric(c.medianDesc, prometheus.GaugeValue, stats.Median, name)
	}
}

// registerCollector exposes the registry through the default Prometheus
// registerer. Re-registering (for example across tests) is tolerated.
func registerCollector(registry *timing.Registry) {
	if err := prometheus.Register(newRegistryCollector(registry)); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			slog.Warn("Failed to register registry collector", "error", err)
		}
	}
}
