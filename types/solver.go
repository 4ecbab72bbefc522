package types

import "context"

// Solver assigns clusters to splits.
//
// Implementations include:
//   - BranchBound: exact search minimizing deviation from target sizes
//   - Greedy: largest-cluster-first heuristic (fast, approximate)
//   - Fallback: composes a primary solver with a heuristic fallback
//
// Solver implementations should:
//   - Be deterministic (same input and configuration produce the same output)
//   - Iterate clusters in a stable, explicit order (never map order)
//   - Honor context cancellation and deadlines for long searches
//   - Be stateless (no shared mutable state across calls)
type Solver interface {
	// Solve computes a cluster-to-split assignment for the given problem.
	//
	// The returned Solution assigns every cluster exactly once. The context
	// deadline is the solver's time budget: an exact solver stopped by the
	// deadline returns its best incumbent with StatusFeasibleTimeout, or
	// ErrSolverTimeout if no incumbent was found.
	//
	// Parameters:
	//   - ctx: Context carrying the solve time budget
	//   - problem: Cluster sizes, split targets, objective, and pins
	//
	// Returns:
	//   - *Solution: Total cluster-to-split assignment with a status flag
	//   - error: ErrInvalidSplitSpec, ErrInvalidMapping, ErrSolverTimeout,
	//     ErrSolverInfeasible, or ErrSolverUnavailable
	Solve(ctx context.Context, problem *Problem) (*Solution, error)
}
