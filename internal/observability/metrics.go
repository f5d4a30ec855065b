package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// aggregation service.
type Metrics struct {
	// Feed fetch metrics.
	FeedRequests *prometheus.CounterVec // labels: feed={realtime,situation,forecast}, outcome={success,error}

	// Snapshot build metrics.
	SnapshotBuilds        prometheus.Counter
	SnapshotBuildFailures prometheus.Counter
	SnapshotBuildDuration prometheus.Histogram
	UnresolvedPlaceKeys   prometheus.Counter
	LastRefreshUnixtime   prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "district_weather",
			Name:      "feed_requests_total",
			Help:      "HKO feed fetches by dataset and outcome.",
		}, []string{"feed", "outcome"}),
		SnapshotBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "district_weather",
			Name:      "snapshot_builds_total",
			Help:      "Total successfully built aggregate snapshots.",
		}),
		SnapshotBuildFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "district_weather",
			Name:      "snapshot_build_failures_total",
			Help:      "Snapshot builds aborted by a primary feed failure.",
		}),
		SnapshotBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "district_weather",
			Name:      "snapshot_build_duration_seconds",
			Help:      "Duration of a complete fetch-resolve-merge cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		UnresolvedPlaceKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "district_weather",
			Name:      "unresolved_place_keys_total",
			Help:      "Feed entries whose place name matched no district or station alias.",
		}),
		LastRefreshUnixtime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "district_weather",
			Name:      "last_refresh_unixtime",
			Help:      "Unix time of the last successful snapshot refresh.",
		}),
	}

	prometheus.MustRegister(
		m.FeedRequests,
		m.SnapshotBuilds,
		m.SnapshotBuildFailures,
		m.SnapshotBuildDuration,
		m.UnresolvedPlaceKeys,
		m.LastRefreshUnixtime,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedRequests:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "district_weather", Name: "feed_requests_total"}, []string{"feed", "outcome"}),
		SnapshotBuilds:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "district_weather", Name: "snapshot_builds_total"}),
		SnapshotBuildFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "district_weather", Name: "snapshot_build_failures_total"}),
		SnapshotBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "district_weather", Name: "snapshot_build_duration_seconds"}),
		UnresolvedPlaceKeys:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "district_weather", Name: "unresolved_place_keys_total"}),
		LastRefreshUnixtime:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "district_weather", Name: "last_refresh_unixtime"}),
	}
}
