package seqsplit

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/seqsplit/internal/logging"
	"github.com/arloliu/seqsplit/internal/metrics"
	"github.com/arloliu/seqsplit/types"
)

// Option configures a Splitter with optional dependencies.
type Option func(*splitterOptions)

// splitterOptions holds optional Splitter configuration.
type splitterOptions struct {
	solver  types.Solver
	logger  types.Logger
	metrics types.MetricsCollector
}

// WithSolver sets the primary solver.
//
// The Splitter always composes the primary with the greedy heuristic
// fallback, so a timeout or unavailable optimizer still yields a feasible
// partition flagged heuristic_fallback.
//
// Parameters:
//   - s: Solver implementation (default: solver.NewBranchBound())
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	exact := solver.NewBranchBound(solver.WithDeadlineCheckInterval(256))
//	sp, _ := seqsplit.New(cfg, seqsplit.WithSolver(exact))
func WithSolver(s types.Solver) Option {
	return func(o *splitterOptions) {
		o.solver = s
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	sp, _ := seqsplit.New(cfg, seqsplit.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *splitterOptions) {
		o.logger = logger
	}
}

// WithSlogLogger sets a logger backed by the standard library log/slog.
//
// Parameters:
//   - logger: slog logger instance; nil selects slog.Default()
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	sp, _ := seqsplit.New(cfg, seqsplit.WithSlogLogger(slog.Default()))
func WithSlogLogger(logger *slog.Logger) Option {
	return func(o *splitterOptions) {
		if logger == nil {
			o.logger = logging.NewSlogDefault()
			return
		}
		o.logger = logging.NewSlog(logger)
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *splitterOptions) {
		o.metrics = collector
	}
}

// WithPrometheusMetrics sets a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer; nil selects prometheus.DefaultRegisterer
//   - namespace: Metrics namespace; empty selects "seqsplit"
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	sp, _ := seqsplit.New(cfg, seqsplit.WithPrometheusMetrics(reg, "myapp"))
func WithPrometheusMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(o *splitterOptions) {
		o.metrics = metrics.NewPrometheus(reg, namespace)
	}
}

// SplitOption configures a single partition request.
type SplitOption func(*splitOptions)

// splitOptions holds per-request configuration.
type splitOptions struct {
	weights map[string]int64
	pinned  map[string]string
	seed    uint64
}

// WithWeights supplies per-sequence weights for size accounting.
//
// Without weights every sequence counts as 1 (count-based sizing). Residue
// lengths are the typical weighted alternative; see ingest.Lengths.
//
// Parameters:
//   - weights: Sequence ID to weight (sequences absent from the map keep weight 1)
//
// Returns:
//   - SplitOption: Per-request option for Split and KFold
func WithWeights(weights map[string]int64) SplitOption {
	return func(o *splitOptions) {
		o.weights = weights
	}
}

// WithPinnedSequences forces sequences (and therefore their whole clusters)
// into named splits before solving.
//
// Pinning two sequences of one cluster to different splits makes the request
// infeasible; pinning an unknown sequence is an invalid mapping.
//
// Parameters:
//   - pinned: Sequence ID to split name
//
// Returns:
//   - SplitOption: Per-request option for Split
//
// Example:
//
//	result, err := sp.Split(ctx, mapping,
//	    seqsplit.WithPinnedSequences(map[string]string{"P09211": "test"}),
//	)
func WithPinnedSequences(pinned map[string]string) SplitOption {
	return func(o *splitOptions) {
		o.pinned = pinned
	}
}

// WithSeed sets the permutation seed used by KFold fold assignment.
//
// The same mapping and seed always produce the same folds. Ignored by Split.
//
// Parameters:
//   - seed: Permutation seed
//
// Returns:
//   - SplitOption: Per-request option for KFold
func WithSeed(seed uint64) SplitOption {
	return func(o *splitOptions) {
		o.seed = seed
	}
}
