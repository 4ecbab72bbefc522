package types

import (
	"fmt"
	"math"
)

// Objective selects how per-split deviations are combined into the solver
// objective.
type Objective string

const (
	// ObjectiveSum minimizes the sum of absolute per-split deviations.
	ObjectiveSum Objective = "sum"

	// ObjectiveMax minimizes the maximum absolute per-split deviation.
	ObjectiveMax Objective = "max"
)

// Status indicates the quality of a returned partition so downstream
// reporting can distinguish how the assignment was obtained.
type Status string

const (
	// StatusOptimal means the exact solver completed its search and the
	// assignment is proven optimal for the configured objective.
	StatusOptimal Status = "optimal"

	// StatusFeasibleTimeout means the exact solver hit its time budget and
	// returned its best incumbent without proving optimality.
	StatusFeasibleTimeout Status = "feasible_timeout"

	// StatusHeuristicFallback means the assignment was produced by the greedy
	// heuristic solver.
	StatusHeuristicFallback Status = "heuristic_fallback"
)

// SplitTarget is a named output split with a target size fraction.
type SplitTarget struct {
	// Name is the split name (e.g. "train", "test").
	Name string `yaml:"name" json:"name"`

	// Fraction is the target share of total size, in (0, 1].
	Fraction float64 `yaml:"fraction" json:"fraction"`
}

// fractionSumTolerance is the numeric slack allowed when checking that split
// fractions sum to 1.0.
const fractionSumTolerance = 1e-6

// ValidateSplits checks a split specification for structural validity.
//
// Rules:
//   - at least one split
//   - names non-empty and unique
//   - fractions finite and in (0, 1]
//   - fractions sum to 1.0 within a small numeric tolerance
//
// Returns:
//   - error: ErrInvalidSplitSpec (wrapped with detail) or nil
func ValidateSplits(splits []SplitTarget) error {
	if len(splits) == 0 {
		return fmt.Errorf("%w: no splits defined", ErrInvalidSplitSpec)
	}

	seen := make(map[string]struct{}, len(splits))
	sum := 0.0
	for _, s := range splits {
		if s.Name == "" {
			return fmt.Errorf("%w: empty split name", ErrInvalidSplitSpec)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate split name %q", ErrInvalidSplitSpec, s.Name)
		}
		seen[s.Name] = struct{}{}

		if math.IsNaN(s.Fraction) || math.IsInf(s.Fraction, 0) {
			return fmt.Errorf("%w: split %q has non-finite fraction", ErrInvalidSplitSpec, s.Name)
		}
		if s.Fraction <= 0 || s.Fraction > 1 {
			return fmt.Errorf("%w: split %q fraction %v outside (0, 1]", ErrInvalidSplitSpec, s.Name, s.Fraction)
		}
		sum += s.Fraction
	}

	if math.Abs(sum-1.0) > fractionSumTolerance {
		return fmt.Errorf("%w: fractions sum to %v, want 1.0", ErrInvalidSplitSpec, sum)
	}

	return nil
}

// Problem is the solver input contract: cluster sizes plus a split
// specification.
//
// Both the exact and the heuristic solver consume the same Problem and
// produce a Solution, which is what makes them interchangeable behind the
// Solver interface.
type Problem struct {
	// Clusters to assign, in stable ID order as produced by aggregation.
	// Solvers may reorder internal copies but must not mutate this slice.
	Clusters []Cluster

	// Splits is the ordered split specification. Declaration order is the
	// tie-break order for solvers.
	Splits []SplitTarget

	// Objective selects sum or max deviation minimization.
	Objective Objective

	// TotalSize is the sum of all cluster sizes.
	TotalSize int64

	// Pinned fixes specific clusters to named splits before solving
	// (constrained splitting). May be nil.
	Pinned map[string]string
}

// Validate checks the problem for structural validity before solving.
//
// A zero total size, an invalid split specification, or a pin referencing an
// unknown split or cluster is reported as ErrInvalidSplitSpec /
// ErrInvalidMapping. Validation is cheap and solvers call it eagerly so that
// malformed input never reaches the search.
func (p *Problem) Validate() error {
	if err := ValidateSplits(p.Splits); err != nil {
		return err
	}
	if p.TotalSize <= 0 {
		return fmt.Errorf("%w: total size %d", ErrInvalidSplitSpec, p.TotalSize)
	}

	switch p.Objective {
	case ObjectiveSum, ObjectiveMax:
	default:
		return fmt.Errorf("%w: unknown objective %q", ErrInvalidSplitSpec, p.Objective)
	}

	if len(p.Pinned) > 0 {
		names := make(map[string]struct{}, len(p.Splits))
		for _, s := range p.Splits {
			names[s.Name] = struct{}{}
		}
		ids := make(map[string]struct{}, len(p.Clusters))
		for _, c := range p.Clusters {
			ids[c.ID] = struct{}{}
		}
		for cluster, split := range p.Pinned {
			if _, ok := names[split]; !ok {
				return fmt.Errorf("%w: cluster %q pinned to unknown split %q", ErrInvalidSplitSpec, cluster, split)
			}
			if _, ok := ids[cluster]; !ok {
				return fmt.Errorf("%w: pin references unknown cluster %q", ErrInvalidMapping, cluster)
			}
		}
	}

	return nil
}

// Targets returns the target size per split (fraction x total size), in split
// declaration order.
func (p *Problem) Targets() []float64 {
	targets := make([]float64, len(p.Splits))
	for i, s := range p.Splits {
		targets[i] = s.Fraction * float64(p.TotalSize)
	}

	return targets
}

// Solution is a cluster-to-split assignment produced by a Solver.
type Solution struct {
	// Assignment maps every cluster ID to a split name. Total by
	// construction: solvers assign each cluster exactly once.
	Assignment map[string]string

	// Status describes solution quality (optimal, feasible_timeout,
	// heuristic_fallback).
	Status Status
}
