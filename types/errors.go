package types

import "errors"

// Sentinel errors for the seqsplit library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%s: %w", msg, err).

// Input validation errors - surfaced eagerly, before any solving.
var (
	// ErrInvalidMapping is returned when the sequence-to-cluster mapping or the
	// per-sequence weights are malformed (empty identifiers, negative weights,
	// weights or pins referencing unknown sequences).
	ErrInvalidMapping = errors.New("invalid sequence mapping")

	// ErrInvalidSplitSpec is returned when the split specification is invalid:
	// no splits, duplicate or empty names, non-positive fractions, fractions
	// that do not sum to 1.0, or a zero-size problem.
	ErrInvalidSplitSpec = errors.New("invalid split specification")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSolverRequired is returned when a nil solver is supplied.
	ErrSolverRequired = errors.New("solver is required")
)

// Solver errors - returned by Solver implementations.
var (
	// ErrSolverInfeasible is returned when no assignment can satisfy the
	// problem constraints, including when a proven-optimal assignment still
	// deviates from the targets beyond the configured tolerance.
	ErrSolverInfeasible = errors.New("no feasible assignment within constraints")

	// ErrSolverTimeout is returned when the solver exhausts its time budget
	// without finding any feasible incumbent solution.
	ErrSolverTimeout = errors.New("solver time budget exhausted")

	// ErrSolverUnavailable is returned when the underlying optimizer cannot
	// be invoked.
	ErrSolverUnavailable = errors.New("solver unavailable")
)

// Materialization errors - internal contract violations, always fatal.
var (
	// ErrMaterializationMismatch is returned when a cluster assignment does
	// not line up with the aggregated cluster table. This indicates a contract
	// violation between pipeline stages and is never retried.
	ErrMaterializationMismatch = errors.New("assignment does not match cluster table")
)

// IsFallbackTrigger reports whether err should trigger the heuristic fallback
// solver instead of failing the partition request.
//
// Only solver timeouts without an incumbent and unavailable optimizers are
// recoverable; validation and materialization errors always propagate.
func IsFallbackTrigger(err error) bool {
	return errors.Is(err, ErrSolverTimeout) || errors.Is(err, ErrSolverUnavailable)
}
