// Package metrics provides Prometheus metrics for fixture generation runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Name kinds used as the "kind" label on uniqueness metrics.
const (
	KindTeamName = "team_name"
	KindMember   = "member"
)

// Manager manages all Prometheus metrics for a generation run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	// Generation
	teamsGenerated     prometheus.Counter
	nameCollisions     *prometheus.CounterVec
	nameFallbacks      *prometheus.CounterVec
	generationDuration prometheus.Histogram

	// Output
	recordsWritten prometheus.Gauge
	bytesWritten   prometheus.Gauge
	writeErrors    prometheus.Counter
	lastRunUnix    prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "teamgen",
		subsystem:        "fixture",
		histogramBuckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) name(base string) string {
	if m.metricPrefix == "" {
		return base
	}
	return m.metricPrefix + "_" + base
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.teamsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("teams_generated_total"),
		Help:        "Total number of team records generated",
		ConstLabels: labels,
	})

	m.nameCollisions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("name_collisions_total"),
			Help:        "Sampled names rejected because they were already used",
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.nameFallbacks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("name_fallbacks_total"),
			Help:        "Names disambiguated with a numeric suffix after the attempt cap",
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.generationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("generation_duration_milliseconds"),
		Help:        "Time to generate and write one fixture in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.recordsWritten = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("records_written"),
		Help:        "Data rows written by the last run",
		ConstLabels: labels,
	})

	m.bytesWritten = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("bytes_written"),
		Help:        "Size of the fixture written by the last run",
		ConstLabels: labels,
	})

	m.writeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("write_errors_total"),
		Help:        "Fixture writes that failed",
		ConstLabels: labels,
	})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("last_run_timestamp_seconds"),
		Help:        "Unix time of the last completed run",
		ConstLabels: labels,
	})
}

// RecordTeamGenerated increments the generated teams counter.
func (m *Manager) RecordTeamGenerated() {
	if m.enabled {
		m.teamsGenerated.Inc()
	}
}

// RecordNameCollision counts a rejected duplicate of the given kind.
func (m *Manager) RecordNameCollision(kind string) {
	if m.enabled {
		m.nameCollisions.WithLabelValues(kind).Inc()
	}
}

// RecordNameFallback counts a suffix disambiguation of the given kind.
func (m *Manager) RecordNameFallback(kind string) {
	if m.enabled {
		m.nameFallbacks.WithLabelValues(kind).Inc()
	}
}

// RecordGenerationDuration observes a run's wall time.
func (m *Manager) RecordGenerationDuration(d time.Duration) {
	if m.enabled {
		m.generationDuration.Observe(float64(d) / float64(time.Millisecond))
	}
}

// RecordWrite records the outcome of a successful fixture write.
func (m *Manager) RecordWrite(records int, bytes int64) {
	if !m.enabled {
		return
	}
	m.recordsWritten.Set(float64(records))
	m.bytesWritten.Set(float64(bytes))
	m.lastRunUnix.SetToCurrentTime()
}

// RecordWriteError increments the failed writes counter.
func (m *Manager) RecordWriteError() {
	if m.enabled {
		m.writeErrors.Inc()
	}
}

// WriteTextfile dumps the manager's registry in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if m.gatherer == nil {
		return fmt.Errorf("%w: registry is not gatherable", ErrExportFailed)
	}
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}

// RecordTeamGenerated increments the generated teams counter.
func RecordTeamGenerated() { globalManager.RecordTeamGenerated() }

// RecordNameCollision counts a rejected duplicate of the given kind.
func RecordNameCollision(kind string) { globalManager.RecordNameCollision(kind) }

// RecordNameFallback counts a suffix disambiguation of the given kind.
func RecordNameFallback(kind string) { globalManager.RecordNameFallback(kind) }

// RecordGenerationDuration observes a run's wall time.
func RecordGenerationDuration(d time.Duration) { globalManager.RecordGenerationDuration(d) }

// RecordWrite records the outcome of a successful fixture write.
func RecordWrite(records int, bytes int64) { globalManager.RecordWrite(records, bytes) }

// RecordWriteError increments the failed writes counter.
func RecordWriteError() { globalManager.RecordWriteError() }

// WriteTextfile exports the global registry to path.
func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }

// Default returns the global manager.
func Default() *Manager { return globalManager }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
