package navsync

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures Prometheus instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wayfind").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures NewMetrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics holds the Prometheus collectors for a Synchronizer. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	navigationsTotal   *prometheus.CounterVec
	navigationDuration prometheus.Histogram
	refreshesTotal     *prometheus.CounterVec
	refreshDuration    prometheus.Histogram
	activeHandlers     prometheus.Gauge
}

// NewMetrics registers and returns the Synchronizer metrics:
//   - wayfind_navigations_total: counter of navigations by status
//   - wayfind_navigation_duration_seconds: transition duration
//   - wayfind_refreshes_total: counter of handler refreshes by status
//   - wayfind_refresh_duration_seconds: refresh duration
//   - wayfind_active_handlers: gauge of handlers with runtime state
//
// Pass the result to New via WithMetrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "wayfind",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	return &Metrics{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "navigations_total",
			Help:        "Total number of navigations by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		navigationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "navigation_duration_seconds",
			Help:        "Navigation transition duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		refreshesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "refreshes_total",
			Help:        "Total number of handler refreshes by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		refreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "refresh_duration_seconds",
			Help:        "Handler refresh duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		activeHandlers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_handlers",
			Help:        "Number of handlers with recorded runtime state",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) recordNavigation(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.navigationsTotal.WithLabelValues(status).Inc()
	if d > 0 {
		m.navigationDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) recordRefresh(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.refreshesTotal.WithLabelValues(status).Inc()
	m.refreshDuration.Observe(d.Seconds())
}

func (m *Metrics) setActiveHandlers(n int) {
	if m == nil {
		return
	}
	m.activeHandlers.Set(float64(n))
}
