package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called from concurrent partition requests and must be
// thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	SolverMetrics
	PartitionMetrics
}

// SolverMetrics defines metrics for solver operations.
type SolverMetrics interface {
	// RecordSolveDuration records the wall-clock time of a solve.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - status: Solution status ("optimal", "feasible_timeout", "heuristic_fallback")
	RecordSolveDuration(duration float64, status Status)

	// RecordSolverFallback records a fallback from the exact solver to the
	// heuristic solver.
	//
	// Parameters:
	//   - reason: Fallback reason ("timeout", "unavailable")
	RecordSolverFallback(reason string)
}

// PartitionMetrics defines metrics for partition request shape and outcome.
type PartitionMetrics interface {
	// RecordProblemSize records the shape of a partition request.
	//
	// Parameters:
	//   - clusters: Number of clusters in the request
	//   - sequences: Number of sequences in the request
	RecordProblemSize(clusters, sequences int)

	// RecordSplitDeviation sets the realized deviation for a split
	// (gauge metric).
	//
	// Parameters:
	//   - split: Split name
	//   - deviation: Absolute deviation of realized fraction from target
	RecordSplitDeviation(split string, deviation float64)
}
