package seqsplit

import (
	"context"
	"fmt"
	"time"

	"github.com/arloliu/seqsplit/internal/aggregate"
	"github.com/arloliu/seqsplit/internal/logger"
	"github.com/arloliu/seqsplit/internal/materialize"
	"github.com/arloliu/seqsplit/internal/metrics"
	"github.com/arloliu/seqsplit/solver"
	"github.com/arloliu/seqsplit/types"
)

// Splitter computes leakage-safe dataset splits for clustered sequences.
//
// Each partition request is a pure function of its inputs: the Splitter holds
// no mutable state between calls, so a single instance is safe for concurrent
// use from multiple goroutines.
type Splitter struct {
	cfg     Config
	solver  types.Solver
	logger  types.Logger
	metrics types.MetricsCollector
}

// New creates a Splitter for the given configuration.
//
// The split specification is validated eagerly: malformed specs never reach a
// solver. Unless overridden via WithSolver, the exact branch-and-bound solver
// runs first with the greedy heuristic as automatic fallback.
//
// Parameters:
//   - cfg: Split specification, tolerance, objective, and solve timeout
//   - opts: Optional dependencies (WithSolver, WithLogger, WithMetrics)
//
// Returns:
//   - *Splitter: Initialized splitter
//   - error: ErrInvalidConfig or ErrInvalidSplitSpec on invalid configuration
//
// Example:
//
//	sp, err := seqsplit.New(seqsplit.TrainTestConfig(0.3))
//	if err != nil { /* handle */ }
//	result, err := sp.Split(ctx, mapping)
func New(cfg *Config, opts ...Option) (*Splitter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", types.ErrInvalidConfig)
	}

	// Validate a copy so defaulting never mutates the caller's struct.
	c := *cfg
	c.Splits = append([]types.SplitTarget(nil), cfg.Splits...)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &splitterOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	primary := options.solver
	if primary == nil {
		primary = solver.NewBranchBound()
	}

	return &Splitter{
		cfg: c,
		solver: solver.NewFallback(primary, solver.NewGreedy(),
			solver.WithFallbackLogger(options.logger),
			solver.WithFallbackMetrics(options.metrics),
		),
		logger:  options.logger,
		metrics: options.metrics,
	}, nil
}

// Split partitions the sequences in mapping into the configured splits.
//
// The pipeline is aggregate -> solve -> materialize, run synchronously.
// Guarantees on success:
//   - every input sequence appears in exactly one split
//   - all sequences of one cluster share a split (no leakage)
//   - realized sizes sum to the total input size
//   - the Result status flags how the assignment was obtained
//
// An empty mapping yields an empty partition for every split, not an error.
// When a proven-optimal assignment still deviates beyond the configured
// tolerance the request is reported as infeasible; timeout and heuristic
// results are returned with their status flag and a warning instead, since a
// feasible answer is preferred over failure.
//
// Parameters:
//   - ctx: Context for cancellation; the solve timeout is layered on top
//   - mapping: Sequence ID to cluster ID (keys unique by construction)
//   - opts: Per-request options (WithWeights, WithPinnedSequences)
//
// Returns:
//   - *types.Result: Sequence-to-split mapping with per-split stats
//   - error: ErrInvalidMapping, ErrInvalidSplitSpec, ErrSolverInfeasible, or
//     ErrMaterializationMismatch
func (s *Splitter) Split(ctx context.Context, mapping map[string]string, opts ...SplitOption) (*types.Result, error) {
	options := &splitOptions{}
	for _, opt := range opts {
		opt(options)
	}

	clusters, total, err := aggregate.Build(mapping, options.weights)
	if err != nil {
		return nil, err
	}
	if len(clusters) == 0 {
		s.logger.Info("empty input mapping, returning empty partition")
		return materialize.Empty(s.cfg.Splits), nil
	}

	pinned, err := resolvePins(mapping, options.pinned)
	if err != nil {
		return nil, err
	}

	problem := &types.Problem{
		Clusters:  clusters,
		Splits:    s.cfg.Splits,
		Objective: s.cfg.Objective,
		TotalSize: total,
		Pinned:    pinned,
	}
	s.metrics.RecordProblemSize(len(clusters), len(mapping))

	solveCtx, cancel := context.WithTimeout(ctx, s.cfg.SolveTimeout)
	defer cancel()

	start := time.Now()
	solution, err := s.solver.Solve(solveCtx, problem)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordSolveDuration(time.Since(start).Seconds(), solution.Status)

	result, err := materialize.Expand(clusters, solution, s.cfg.Splits, total)
	if err != nil {
		return nil, err
	}
	for _, stats := range result.Splits {
		s.metrics.RecordSplitDeviation(stats.Name, stats.Deviation)
	}

	if maxDev := result.MaxDeviation(); maxDev > s.cfg.Tolerance {
		if result.Status == types.StatusOptimal {
			return nil, fmt.Errorf("%w: best assignment deviates %.4f from target, tolerance %.4f",
				types.ErrSolverInfeasible, maxDev, s.cfg.Tolerance)
		}
		s.logger.Warn("partition deviates beyond tolerance",
			"maxDeviation", maxDev,
			"tolerance", s.cfg.Tolerance,
			"status", string(result.Status),
		)
	}

	s.logger.Info("partition complete",
		"clusters", len(clusters),
		"sequences", len(mapping),
		"totalSize", total,
		"status", string(result.Status),
	)

	return result, nil
}

// resolvePins lifts per-sequence pins to cluster granularity.
//
// Pinning a sequence pins its whole cluster; two sequences of one cluster
// pinned to different splits is a constraint conflict the solver could never
// satisfy, so it is reported as infeasible up front.
func resolvePins(mapping map[string]string, pins map[string]string) (map[string]string, error) {
	if len(pins) == 0 {
		return nil, nil
	}

	pinned := make(map[string]string, len(pins))
	for seq, split := range pins {
		cluster, ok := mapping[seq]
		if !ok {
			return nil, fmt.Errorf("%w: pinned sequence %q not in mapping", types.ErrInvalidMapping, seq)
		}
		if prev, ok := pinned[cluster]; ok && prev != split {
			return nil, fmt.Errorf("%w: cluster %q pinned to both %q and %q",
				types.ErrSolverInfeasible, cluster, prev, split)
		}
		pinned[cluster] = split
	}

	return pinned, nil
}
