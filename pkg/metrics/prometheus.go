// Package metrics provides Prometheus metrics for the matchline scraper
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the matchline service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Engine metrics - timeline assembly quality
	matchesAssembled   prometheus.Counter
	fragmentsDropped   prometheus.Counter
	fragmentDuplicates prometheus.Counter
	assembleDuration   prometheus.Histogram

	// Source metrics - upstream fetch health
	fetchErrors     *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	fixtureListings prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchline",
		subsystem:        "scraper",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.matchesAssembled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_assembled_total",
		Help:      "Total number of match timelines assembled",
	})

	m.fragmentsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fragments_dropped_total",
		Help:      "Total number of event fragments dropped during classification (indicates source markup drift)",
	})

	m.fragmentDuplicates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fragment_duplicates_total",
		Help:      "Total number of duplicate event fragments collapsed (indicates source data quality)",
	})

	m.assembleDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assemble_duration_milliseconds",
		Help:      "Histogram of timeline assembly duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.fetchErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_errors_total",
			Help:      "Total number of upstream fetch failures by document",
		},
		[]string{"document"},
	)

	m.fetchDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_duration_milliseconds",
			Help:      "Upstream fetch duration in milliseconds by document",
			Buckets:   m.histogramBuckets,
		},
		[]string{"document"},
	)

	m.fixtureListings = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_listings_total",
		Help:      "Total number of fixture listings served",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordMatchAssembled increments the assembled timelines counter.
func RecordMatchAssembled() {
	globalManager.matchesAssembled.Inc()
}

// RecordFragmentDropped increments the dropped fragments counter.
func RecordFragmentDropped() {
	globalManager.fragmentsDropped.Inc()
}

// RecordFragmentDuplicate increments the collapsed duplicates counter.
func RecordFragmentDuplicate() {
	globalManager.fragmentDuplicates.Inc()
}

// RecordAssembleDuration records timeline assembly duration in milliseconds.
func RecordAssembleDuration(durationMs float64) {
	globalManager.assembleDuration.Observe(durationMs)
}

// RecordFetchError increments the fetch error counter for a document kind.
func RecordFetchError(document string) {
	globalManager.fetchErrors.WithLabelValues(document).Inc()
}

// RecordFetchDuration records upstream fetch duration for a document kind.
func RecordFetchDuration(document string, durationMs float64) {
	globalManager.fetchDuration.WithLabelValues(document).Observe(durationMs)
}

// RecordFixtureListing increments the fixture listings counter.
func RecordFixtureListing() {
	globalManager.fixtureListings.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
