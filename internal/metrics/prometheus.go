package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/seqsplit/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so constructing the collector
// never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solveDuration  *prometheus.HistogramVec
	fallbackTotal  *prometheus.CounterVec
	clusterGauge   prometheus.Gauge
	sequenceGauge  prometheus.Gauge
	deviationGauge *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "seqsplit" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "seqsplit"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock solve durations in seconds by solution status.",
			Buckets:   []float64{0.001, 0.005, 0.025, 0.1, 0.5, 1, 5, 15, 60},
		}, []string{"status"})

		p.fallbackTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "fallback_total",
			Help:      "Total heuristic fallback activations by reason.",
		}, []string{"reason"})

		p.clusterGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partition",
			Name:      "clusters",
			Help:      "Number of clusters in the most recent partition request.",
		})

		p.sequenceGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partition",
			Name:      "sequences",
			Help:      "Number of sequences in the most recent partition request.",
		})

		p.deviationGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partition",
			Name:      "split_deviation",
			Help:      "Realized fraction deviation from target by split.",
		}, []string{"split"})

		for _, c := range []prometheus.Collector{
			p.solveDuration,
			p.fallbackTotal,
			p.clusterGauge,
			p.sequenceGauge,
			p.deviationGauge,
		} {
			// Ignore AlreadyRegisteredError: another collector instance owns
			// the metric and recording through ours is still safe.
			_ = p.reg.Register(c)
		}
	})
}

// RecordSolveDuration records the wall-clock time of a solve by status.
func (p *PrometheusCollector) RecordSolveDuration(duration float64, status types.Status) {
	p.ensureRegistered()
	p.solveDuration.WithLabelValues(string(status)).Observe(duration)
}

// RecordSolverFallback increments the fallback counter for the given reason.
func (p *PrometheusCollector) RecordSolverFallback(reason string) {
	p.ensureRegistered()
	p.fallbackTotal.WithLabelValues(reason).Inc()
}

// RecordProblemSize sets the problem shape gauges.
func (p *PrometheusCollector) RecordProblemSize(clusters, sequences int) {
	p.ensureRegistered()
	p.clusterGauge.Set(float64(clusters))
	p.sequenceGauge.Set(float64(sequences))
}

// RecordSplitDeviation sets the realized deviation gauge for a split.
func (p *PrometheusCollector) RecordSplitDeviation(split string, deviation float64) {
	p.ensureRegistered()
	p.deviationGauge.WithLabelValues(split).Set(deviation)
}
