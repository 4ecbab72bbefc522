package seqsplit

import "github.com/arloliu/seqsplit/types"

// Sentinel errors re-exported from the types package so callers can use
// errors.Is against `seqsplit.Err...` without importing types. The aliases
// share identity with the types package sentinels.
var (
	// ErrInvalidMapping is returned for malformed sequence mappings or weights.
	ErrInvalidMapping = types.ErrInvalidMapping

	// ErrInvalidSplitSpec is returned for invalid split specifications.
	ErrInvalidSplitSpec = types.ErrInvalidSplitSpec

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrSolverRequired is returned when a nil solver is supplied.
	ErrSolverRequired = types.ErrSolverRequired

	// ErrSolverInfeasible is returned when no assignment satisfies the
	// constraints, including tolerance violations on proven-optimal results.
	ErrSolverInfeasible = types.ErrSolverInfeasible

	// ErrSolverTimeout is returned when the solver exhausts its time budget
	// without an incumbent.
	ErrSolverTimeout = types.ErrSolverTimeout

	// ErrSolverUnavailable is returned when the optimizer cannot be invoked.
	ErrSolverUnavailable = types.ErrSolverUnavailable

	// ErrMaterializationMismatch indicates an internal contract violation
	// between solver and materializer. Always fatal.
	ErrMaterializationMismatch = types.ErrMaterializationMismatch
)
