package seqsplit

import "github.com/arloliu/seqsplit/types"

// Re-export types from the types package.
//
// This file provides a stable, convenient public API for the library's core
// types and interfaces. It uses type aliases to re-export definitions from
// the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `seqsplit`
// package, while still providing `seqsplit.Result`, `seqsplit.Solver`, etc.
// for users.
type (
	Cluster     = types.Cluster
	SplitTarget = types.SplitTarget
	Problem     = types.Problem
	Solution    = types.Solution
	Result      = types.Result
	SplitStats  = types.SplitStats
	Objective   = types.Objective
	Status      = types.Status
)

// Re-export interfaces from the types package for convenience.
type (
	Solver           = types.Solver
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Objective constants.
const (
	ObjectiveSum = types.ObjectiveSum
	ObjectiveMax = types.ObjectiveMax
)

// Re-export Status constants.
const (
	StatusOptimal           = types.StatusOptimal
	StatusFeasibleTimeout   = types.StatusFeasibleTimeout
	StatusHeuristicFallback = types.StatusHeuristicFallback
)
