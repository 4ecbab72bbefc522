package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/arloliu/seqsplit/types"
)

// Fallback composes a primary solver with a heuristic fallback behind the
// same types.Solver interface.
//
// A timeout without an incumbent (ErrSolverTimeout) or an optimizer that
// cannot be invoked (ErrSolverUnavailable) triggers the fallback; a feasible
// answer is preferred over failure. Validation errors and context
// cancellation propagate unchanged.
type Fallback struct {
	primary  types.Solver
	fallback types.Solver
	logger   types.Logger
	metrics  types.MetricsCollector
}

var _ types.Solver = (*Fallback)(nil)

// FallbackOption configures a Fallback solver.
type FallbackOption func(*Fallback)

// WithFallbackLogger sets the logger used to report fallback activations.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - FallbackOption: Configuration option
func WithFallbackLogger(logger types.Logger) FallbackOption {
	return func(f *Fallback) {
		f.logger = logger
	}
}

// WithFallbackMetrics sets the metrics collector used to count fallback
// activations.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - FallbackOption: Configuration option
func WithFallbackMetrics(metrics types.MetricsCollector) FallbackOption {
	return func(f *Fallback) {
		f.metrics = metrics
	}
}

// NewFallback creates a solver that tries primary first and falls back on
// timeout or unavailability.
//
// A nil primary is treated as an unavailable optimizer: every solve goes
// straight to the fallback. A nil fallback disables recovery and the
// primary's error is returned as-is.
//
// Parameters:
//   - primary: Primary solver (typically BranchBound), may be nil
//   - fallback: Heuristic fallback solver (typically Greedy), may be nil
//   - opts: Optional configuration (WithFallbackLogger, WithFallbackMetrics)
//
// Returns:
//   - *Fallback: Composed solver
//
// Example:
//
//	s := solver.NewFallback(solver.NewBranchBound(), solver.NewGreedy())
func NewFallback(primary, fallback types.Solver, opts ...FallbackOption) *Fallback {
	f := &Fallback{
		primary:  primary,
		fallback: fallback,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Solve runs the primary solver and recovers with the fallback when the
// primary times out without an incumbent or is unavailable.
//
// The fallback runs under context.WithoutCancel: its cost is linear and the
// already-expired time budget must not starve the recovery path.
//
// Parameters:
//   - ctx: Context carrying the primary solver's time budget
//   - problem: Cluster sizes, split targets, objective, and pins
//
// Returns:
//   - *types.Solution: Primary solution, or fallback solution with
//     StatusHeuristicFallback
//   - error: Validation errors, context cancellation, ErrSolverRequired when
//     neither solver is configured, or the primary error when no fallback is
//     configured
func (f *Fallback) Solve(ctx context.Context, problem *types.Problem) (*types.Solution, error) {
	if f.primary == nil && f.fallback == nil {
		return nil, fmt.Errorf("%w: neither primary nor fallback configured", types.ErrSolverRequired)
	}

	err := fmt.Errorf("%w: no primary solver configured", types.ErrSolverUnavailable)
	if f.primary != nil {
		var solution *types.Solution
		solution, err = f.primary.Solve(ctx, problem)
		if err == nil {
			return solution, nil
		}
	}

	if f.fallback == nil || !types.IsFallbackTrigger(err) {
		return nil, err
	}

	reason := "unavailable"
	if errors.Is(err, types.ErrSolverTimeout) {
		reason = "timeout"
	}
	if f.logger != nil {
		f.logger.Warn("exact solver failed, using heuristic fallback", "reason", reason, "error", err.Error())
	}
	if f.metrics != nil {
		f.metrics.RecordSolverFallback(reason)
	}

	return f.fallback.Solve(context.WithoutCancel(ctx), problem)
}
