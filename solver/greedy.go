package solver

import (
	"context"

	"github.com/arloliu/seqsplit/types"
)

// Greedy implements largest-cluster-first greedy load balancing.
type Greedy struct{}

var _ types.Solver = (*Greedy)(nil)

// NewGreedy creates a new greedy heuristic solver.
//
// The solver sorts clusters by descending size and assigns each to the split
// whose realized/target size ratio is currently lowest, breaking ties by
// split declaration order. This is the classical longest-processing-time
// heuristic for multiway number partitioning: always feasible and within a
// known constant factor of optimal, but not exact.
//
// Returns:
//   - *Greedy: Initialized greedy solver
//
// Example:
//
//	sp, _ := seqsplit.New(cfg, seqsplit.WithSolver(solver.NewGreedy()))
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Solve calculates a cluster-to-split assignment using greedy load balancing.
//
// The algorithm:
//  1. Seed per-split realized sizes with any pinned clusters
//  2. Sort remaining clusters by descending size (ID tie-break)
//  3. Assign each cluster to the split with the lowest realized/target ratio
//
// The solution status is always StatusHeuristicFallback: the flag describes
// solution quality, not the path that selected this solver.
//
// Parameters:
//   - ctx: Unused; the heuristic is effectively instantaneous
//   - problem: Cluster sizes, split targets, and pins
//
// Returns:
//   - *types.Solution: Total assignment with StatusHeuristicFallback
//   - error: ErrInvalidSplitSpec or ErrInvalidMapping on malformed input
func (g *Greedy) Solve(_ context.Context, problem *types.Problem) (*types.Solution, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}

	targets := problem.Targets()
	sizes := make([]int64, len(problem.Splits))
	splitIdx := make(map[string]int, len(problem.Splits))
	for i, s := range problem.Splits {
		splitIdx[s.Name] = i
	}

	assignment := make(map[string]string, len(problem.Clusters))
	order := make([]types.Cluster, 0, len(problem.Clusters))
	for _, c := range problem.Clusters {
		if split, ok := problem.Pinned[c.ID]; ok {
			assignment[c.ID] = split
			sizes[splitIdx[split]] += c.Size
			continue
		}
		order = append(order, c)
	}
	sortBySizeDesc(order)

	for _, c := range order {
		j := lowestRatioSplit(sizes, targets)
		sizes[j] += c.Size
		assignment[c.ID] = problem.Splits[j].Name
	}

	return &types.Solution{
		Assignment: assignment,
		Status:     types.StatusHeuristicFallback,
	}, nil
}

// lowestRatioSplit returns the index of the split with the lowest
// realized/target ratio. Strict comparison keeps the earliest declared split
// on ties.
func lowestRatioSplit(sizes []int64, targets []float64) int {
	best := 0
	bestRatio := float64(sizes[0]) / targets[0]
	for j := 1; j < len(sizes); j++ {
		ratio := float64(sizes[j]) / targets[j]
		if ratio < bestRatio {
			best = j
			bestRatio = ratio
		}
	}

	return best
}
