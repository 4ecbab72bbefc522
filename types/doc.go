// Package types provides core type definitions and interfaces for the seqsplit library.
//
// This package contains shared types that are used across multiple packages in
// the seqsplit library. By keeping these types in a separate package, we avoid
// import cycles between the main seqsplit package and its internal
// implementations.
//
// Key types:
//   - Cluster: Atomic group of sequences for partitioning
//   - SplitTarget: Named split with a target size fraction
//   - Problem / Solution: Solver input and output contract
//   - Result: Materialized sequence-to-split mapping with per-split stats
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
