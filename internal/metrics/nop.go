// Package metrics provides MetricsCollector implementations for the seqsplit
// library.
package metrics

import "github.com/arloliu/seqsplit/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSolveDuration discards the solve duration metric.
func (n *NopMetrics) RecordSolveDuration(_ /* duration */ float64, _ /* status */ types.Status) {
	// No-op
}

// RecordSolverFallback discards the fallback counter.
func (n *NopMetrics) RecordSolverFallback(_ /* reason */ string) {
	// No-op
}

// RecordProblemSize discards the problem size metric.
func (n *NopMetrics) RecordProblemSize(_ /* clusters */, _ /* sequences */ int) {
	// No-op
}

// RecordSplitDeviation discards the split deviation gauge.
func (n *NopMetrics) RecordSplitDeviation(_ /* split */ string, _ /* deviation */ float64) {
	// No-op
}
