// Package metrics provides Prometheus metrics for the pay-equity audit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the audit pipeline.
type Manager struct {
	namespace    string
	subsystem    string
	buckets      []float64
	enabled      bool
	customLabels map[string]string
	registry     prometheus.Registerer

	// Roster I/O
	rowsRead         prometheus.Counter
	rowsWritten      prometheus.Counter
	invalidCompCells prometheus.Counter

	// Cohort pipeline
	cohortsTotal      prometheus.Counter
	cohortsAnalyzable prometheus.Counter
	cohortLatency     prometheus.Histogram
	auditDuration     prometheus.Histogram

	// Findings by demographic attribute
	findings *prometheus.CounterVec

	// Operational
	workerCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "payequity",
		subsystem: "audit",
		buckets:   prometheus.DefBuckets,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.rowsRead = factory.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "roster_rows_read_total",
		Help:        "Roster rows read from the input file.",
		ConstLabels: m.customLabels,
	})
	m.rowsWritten = factory.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "roster_rows_written_total",
		Help:        "Annotated roster rows written back out.",
		ConstLabels: m.customLabels,
	})
	m.invalidCompCells = factory.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "invalid_compensation_cells_total",
		Help:        "Compensation cells that failed numeric coercion and were treated as missing.",
		ConstLabels: m.customLabels,
	})
	m.cohortsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "cohorts_total",
		Help:        "Cohorts produced by the partitioner.",
		ConstLabels: m.customLabels,
	})
	m.cohortsAnalyzable = factory.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "cohorts_analyzable_total",
		Help:        "Cohorts with at least two comparable members.",
		ConstLabels: m.customLabels,
	})
	m.cohortLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "cohort_evaluation_seconds",
		Help:        "Time spent ranking and classifying one cohort.",
		Buckets:     m.buckets,
		ConstLabels: m.customLabels,
	})
	m.auditDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "run_duration_seconds",
		Help:        "End-to-end duration of one audit run.",
		Buckets:     m.buckets,
		ConstLabels: m.customLabels,
	})
	m.findings = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "findings_total",
		Help:        "Pay disparity findings emitted, by demographic attribute.",
		ConstLabels: m.customLabels,
	}, []string{"attribute"})
	m.workerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "worker_count",
		Help:        "Cohort evaluation workers in the pool.",
		ConstLabels: m.customLabels,
	})
}

// Package-level helpers recording against the global manager.

// RecordRowsRead counts rows loaded from the roster.
func RecordRowsRead(n int) {
	if globalManager.enabled {
		globalManager.rowsRead.Add(float64(n))
	}
}

// RecordRowsWritten counts annotated rows written back.
func RecordRowsWritten(n int) {
	if globalManager.enabled {
		globalManager.rowsWritten.Add(float64(n))
	}
}

// RecordInvalidCompensation counts one compensation cell coerced to missing.
func RecordInvalidCompensation() {
	if globalManager.enabled {
		globalManager.invalidCompCells.Inc()
	}
}

// RecordCohort counts one cohort, tracking whether it was analyzable.
func RecordCohort(analyzable bool) {
	if !globalManager.enabled {
		return
	}
	globalManager.cohortsTotal.Inc()
	if analyzable {
		globalManager.cohortsAnalyzable.Inc()
	}
}

// RecordCohortLatency observes one cohort's evaluation time in seconds.
func RecordCohortLatency(seconds float64) {
	if globalManager.enabled {
		globalManager.cohortLatency.Observe(seconds)
	}
}

// RecordAuditDuration observes one full audit run in seconds.
func RecordAuditDuration(seconds float64) {
	if globalManager.enabled {
		globalManager.auditDuration.Observe(seconds)
	}
}

// RecordFinding counts one finding for the given attribute.
func RecordFinding(attribute string) {
	if globalManager.enabled {
		globalManager.findings.WithLabelValues(attribute).Inc()
	}
}

// UpdateWorkerCount sets the worker pool gauge.
func UpdateWorkerCount(count int) {
	if globalManager.enabled {
		globalManager.workerCount.Set(float64(count))
	}
}
