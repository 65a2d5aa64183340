package navsync

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsRecordNavigation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.recordNavigation("success", 5*time.Millisecond)
	m.recordNavigation("success", 3*time.Millisecond)
	m.recordNavigation("error", time.Millisecond)

	if got := metricCounterValue(t, m.navigationsTotal.WithLabelValues("success")); got != 2 {
		t.Fatalf("navigations_total(success)=%v, want 2", got)
	}
	if got := metricCounterValue(t, m.navigationsTotal.WithLabelValues("error")); got != 1 {
		t.Fatalf("navigations_total(error)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, m.navigationDuration); got != 3 {
		t.Fatalf("navigation_duration_seconds sample count=%v, want 3", got)
	}
}

func TestMetricsRecordRefresh(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.recordRefresh("success", 2*time.Millisecond)
	m.recordRefresh("error", time.Millisecond)
	m.setActiveHandlers(3)

	if got := metricCounterValue(t, m.refreshesTotal.WithLabelValues("error")); got != 1 {
		t.Fatalf("refreshes_total(error)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, m.refreshDuration); got != 2 {
		t.Fatalf("refresh_duration_seconds sample count=%v, want 2", got)
	}
	if got := metricGaugeValue(t, m.activeHandlers); got != 3 {
		t.Fatalf("active_handlers=%v, want 3", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.recordNavigation("success", time.Millisecond)
	m.recordRefresh("error", time.Millisecond)
	m.setActiveHandlers(1)
}
