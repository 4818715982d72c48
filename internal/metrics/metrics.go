// Package metrics collects pipeline counters in a Prometheus registry and
// exports them in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pzip"

// Metrics holds the collectors for one process. All methods are safe on a
// nil *Metrics, which records nothing.
type Metrics struct {
	registry *prometheus.Registry

	InputBytes      prometheus.Counter
	OutputBytes     prometheus.Counter
	DroppedBytes    prometheus.Counter
	Runs            prometheus.Counter
	SeamsMerged     prometheus.Counter
	Segments        prometheus.Counter
	Workers         prometheus.Gauge
	SegmentDuration prometheus.Histogram
	RunDuration     *prometheus.HistogramVec
}

// New creates collectors registered in a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		InputBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_bytes_total",
			Help:      "Total bytes aggregated from input files.",
		}),
		OutputBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "output_bytes_total",
			Help:      "Total bytes written to the output stream.",
		}),
		DroppedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_bytes_total",
			Help:      "Total input bytes rejected by the byte policy.",
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total run records emitted after merging.",
		}),
		SeamsMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seams_merged_total",
			Help:      "Total segment boundaries where a split run was rejoined.",
		}),
		Segments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_total",
			Help:      "Total segments encoded.",
		}),
		Workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Workers used by the last run.",
		}),
		SegmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "segment_encode_seconds",
			Help:      "Time spent encoding one segment.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		RunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_seconds",
			Help:      "Time spent in each pipeline stage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
	}

	m.registry.MustRegister(
		m.InputBytes,
		m.OutputBytes,
		m.DroppedBytes,
		m.Runs,
		m.SeamsMerged,
		m.Segments,
		m.Workers,
		m.SegmentDuration,
		m.RunDuration,
	)

	return m
}

// Registry exposes the underlying registry, e.g. for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// ObserveSegment records one finished segment.
func (m *Metrics) ObserveSegment(d time.Duration) {
	if m == nil {
		return
	}
	m.Segments.Inc()
	m.SegmentDuration.Observe(d.Seconds())
}

// ObserveStage records the duration of a named pipeline stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.RunDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveResult records the totals of a completed pipeline run.
func (m *Metrics) ObserveResult(input, output int, runs int, seams int, dropped uint64, workers int) {
	if m == nil {
		return
	}
	m.InputBytes.Add(float64(input))
	m.OutputBytes.Add(float64(output))
	m.Runs.Add(float64(runs))
	m.SeamsMerged.Add(float64(seams))
	m.DroppedBytes.Add(float64(dropped))
	m.Workers.Set(float64(workers))
}

// WriteFile writes all metrics to path in the text exposition format. The
// file is written atomically.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.registry)
}
