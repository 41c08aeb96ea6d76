// Package metrics exports harness measurements as Prometheus metrics.
//
// A Recorder owns its registry, so several sweeps in one process do not
// share series. The CLI writes the registry to a node_exporter textfile
// after a sweep; nothing is served over HTTP.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
)

const namespace = "adtbench"

// Buckets cover single operations from tens of nanoseconds (O(1) pushes)
// to tens of milliseconds (O(n) scans of large lists).
var Buckets = prometheus.ExponentialBuckets(25e-9, 4, 12)

// Recorder implements bench.Recorder.
type Recorder struct {
	registry *prometheus.Registry

	// opSeconds observes every timed sample.
	// Labels: structure, operation, size
	opSeconds *prometheus.HistogramVec

	// meanSeconds is the mean of the latest result.
	// Labels: structure, operation, size
	meanSeconds *prometheus.GaugeVec

	// measurements counts completed measurements.
	// Labels: structure, operation
	measurements *prometheus.CounterVec

	// failures counts failed measurements.
	// Labels: structure, operation
	failures *prometheus.CounterVec
}

var _ bench.Recorder = (*Recorder)(nil)

// New creates a Recorder with a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		opSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "op",
			Name:      "duration_seconds",
			Help:      "Duration of a single timed operation in seconds",
			Buckets:   Buckets,
		}, []string{"structure", "operation", "size"}),
		meanSeconds: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "op",
			Name:      "mean_seconds",
			Help:      "Mean operation duration of the latest measurement in seconds",
		}, []string{"structure", "operation", "size"}),
		measurements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "measurements_total",
			Help:      "Total completed measurements",
		}, []string{"structure", "operation"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Total failed measurements",
		}, []string{"structure", "operation"}),
	}
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Record observes every sample of res.
func (r *Recorder) Record(res bench.Result) {
	size := strconv.Itoa(res.Size)
	h := r.opSeconds.WithLabelValues(res.Structure, res.Operation, size)
	for _, s := range res.Samples {
		h.Observe(s.Seconds())
	}
	r.meanSeconds.WithLabelValues(res.Structure, res.Operation, size).Set(res.Mean.Seconds())
	r.measurements.WithLabelValues(res.Structure, res.Operation).Inc()
}

// RecordFailure counts f.
func (r *Recorder) RecordFailure(f bench.Failure) {
	r.failures.WithLabelValues(f.Structure, f.Operation).Inc()
}

// WriteTextfile writes the registry in the Prometheus text format to path,
// atomically replacing any previous file.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
