package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/seqsplit/types"
)

// objectiveEpsilon guards strict-improvement and pruning comparisons against
// float noise, keeping the search deterministic.
const objectiveEpsilon = 1e-9

// BranchBound implements an exact cluster-to-split solver.
//
// The search is the combinatorial equivalent of the binary-assignment integer
// program: one decision per (cluster, split) pair, each cluster assigned to
// exactly one split, minimizing the sum or maximum absolute deviation between
// realized and target split sizes. Depth-first search with an admissible
// overshoot bound replaces the LP relaxation: weight assigned over a split's
// target can never be removed by later assignments, so any completion of a
// partial assignment keeps at least that deviation.
type BranchBound struct {
	checkInterval int
}

var _ types.Solver = (*BranchBound)(nil)

// BranchBoundOption configures a BranchBound solver.
type BranchBoundOption func(*BranchBound)

// NewBranchBound creates a new exact branch-and-bound solver.
//
// The solver explores clusters in descending-size order (ID tie-break) and
// split children in ascending fill-ratio order, so the first leaf it reaches
// is the greedy solution and becomes the initial incumbent. The context
// deadline bounds the search: hitting it with an incumbent yields
// StatusFeasibleTimeout, without one ErrSolverTimeout.
//
// Parameters:
//   - opts: Optional configuration (WithDeadlineCheckInterval)
//
// Returns:
//   - *BranchBound: Initialized exact solver
//
// Example:
//
//	exact := solver.NewBranchBound()
//	sp, _ := seqsplit.New(cfg, seqsplit.WithSolver(exact))
func NewBranchBound(opts ...BranchBoundOption) *BranchBound {
	bb := &BranchBound{
		checkInterval: 1024, // default
	}

	for _, opt := range opts {
		opt(bb)
	}

	return bb
}

// WithDeadlineCheckInterval sets how many search nodes are expanded between
// context deadline checks.
//
// Lower values honor tight deadlines more precisely at the cost of more
// time.Now calls. Default: 1024.
//
// Parameters:
//   - nodes: Nodes between deadline checks (values < 1 are clamped to 1)
//
// Returns:
//   - BranchBoundOption: Configuration option
func WithDeadlineCheckInterval(nodes int) BranchBoundOption {
	return func(bb *BranchBound) {
		if nodes < 1 {
			nodes = 1
		}
		bb.checkInterval = nodes
	}
}

// Solve computes a deviation-minimal cluster-to-split assignment.
//
// Parameters:
//   - ctx: Context whose deadline is the solve time budget
//   - problem: Cluster sizes, split targets, objective, and pins
//
// Returns:
//   - *types.Solution: Assignment with StatusOptimal or StatusFeasibleTimeout
//   - error: ErrInvalidSplitSpec / ErrInvalidMapping on malformed input,
//     ErrSolverTimeout when the budget expires before any incumbent, or the
//     context error on cancellation
func (bb *BranchBound) Solve(ctx context.Context, problem *types.Problem) (*types.Solution, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	if err := budgetErr(ctx); err != nil {
		return nil, err
	}

	splitIdx := make(map[string]int, len(problem.Splits))
	for i, s := range problem.Splits {
		splitIdx[s.Name] = i
	}

	sizes := make([]int64, len(problem.Splits))
	order := make([]types.Cluster, 0, len(problem.Clusters))
	for _, c := range problem.Clusters {
		if split, ok := problem.Pinned[c.ID]; ok {
			sizes[splitIdx[split]] += c.Size
			continue
		}
		order = append(order, c)
	}
	sortBySizeDesc(order)

	s := &search{
		ctx:           ctx,
		checkInterval: bb.checkInterval,
		clusters:      order,
		targets:       problem.Targets(),
		objective:     problem.Objective,
		sizes:         sizes,
		assign:        make([]int, len(order)),
		best:          make([]int, len(order)),
	}
	s.dfs(0)

	if s.canceled != nil {
		return nil, s.canceled
	}
	if s.stopped && !s.hasIncumbent {
		return nil, fmt.Errorf("%w: no incumbent found within time budget", types.ErrSolverTimeout)
	}

	assignment := make(map[string]string, len(problem.Clusters))
	for id, split := range problem.Pinned {
		assignment[id] = split
	}
	for i, c := range order {
		assignment[c.ID] = problem.Splits[s.best[i]].Name
	}

	status := types.StatusOptimal
	if s.stopped && !s.perfect {
		status = types.StatusFeasibleTimeout
	}

	return &types.Solution{Assignment: assignment, Status: status}, nil
}

// search holds the mutable state of one depth-first solve. It lives for a
// single Solve call, so the solver itself stays stateless and safe for
// concurrent use.
type search struct {
	ctx           context.Context
	checkInterval int

	clusters  []types.Cluster
	targets   []float64
	objective types.Objective

	sizes  []int64 // realized size per split along the current path
	assign []int   // split index per cluster along the current path
	best   []int   // incumbent assignment

	bestObj      float64
	hasIncumbent bool
	nodes        int
	stopped      bool  // budget exhausted, unwinding
	perfect      bool  // incumbent reached objective zero, unwinding
	canceled     error // non-deadline context error, propagated as-is
}

func (s *search) dfs(depth int) {
	if s.stopped || s.perfect {
		return
	}

	s.nodes++
	if s.nodes%s.checkInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.stopped = true
			if !errors.Is(err, context.DeadlineExceeded) {
				s.canceled = err
			}
			return
		}
	}

	if depth == len(s.clusters) {
		obj := s.currentObjective()
		if !s.hasIncumbent || obj < s.bestObj-objectiveEpsilon {
			s.bestObj = obj
			s.hasIncumbent = true
			copy(s.best, s.assign)
			if s.bestObj <= objectiveEpsilon {
				s.perfect = true
			}
		}
		return
	}

	if s.hasIncumbent && s.lowerBound() >= s.bestObj-objectiveEpsilon {
		return
	}

	size := s.clusters[depth].Size
	for _, j := range s.childOrder() {
		s.sizes[j] += size
		s.assign[depth] = j
		s.dfs(depth + 1)
		s.sizes[j] -= size

		if s.stopped || s.perfect {
			return
		}
	}
}

// childOrder returns split indices in ascending fill-ratio order with the
// declaration order as tie-break. Exploring emptier splits first makes the
// first leaf match the greedy heuristic, which gives a strong initial
// incumbent for pruning.
func (s *search) childOrder() []int {
	order := make([]int, len(s.sizes))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ra := float64(s.sizes[a]) / s.targets[a]
		rb := float64(s.sizes[b]) / s.targets[b]
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		default:
			return 0
		}
	})

	return order
}

// currentObjective evaluates the configured objective for a complete
// assignment, in absolute weight units.
func (s *search) currentObjective() float64 {
	total := 0.0
	maxDev := 0.0
	for i, size := range s.sizes {
		dev := math.Abs(float64(size) - s.targets[i])
		total += dev
		if dev > maxDev {
			maxDev = dev
		}
	}
	if s.objective == types.ObjectiveMax {
		return maxDev
	}

	return total
}

// lowerBound computes an admissible bound on the objective of any completion
// of the current partial assignment.
//
// Overshoot is permanent: once a split exceeds its target, later assignments
// only add weight. Since targets sum to the total cluster weight, remaining
// unassigned weight exactly equals the total deficit minus total overshoot,
// so every unit of overshoot forces a matching unit of unfilled deficit and
// the final sum of deviations is at least twice the current overshoot.
func (s *search) lowerBound() float64 {
	over := 0.0
	maxOver := 0.0
	for i, size := range s.sizes {
		if d := float64(size) - s.targets[i]; d > 0 {
			over += d
			if d > maxOver {
				maxOver = d
			}
		}
	}

	if s.objective == types.ObjectiveMax {
		if avg := 2 * over / float64(len(s.sizes)); avg > maxOver {
			return avg
		}
		return maxOver
	}

	return 2 * over
}

// budgetErr classifies an already-expired context before the search starts.
func budgetErr(ctx context.Context) error {
	err := ctx.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: time budget expired before search", types.ErrSolverTimeout)
	default:
		return err
	}
}

// sortBySizeDesc orders clusters by descending size with ascending ID as
// tie-break, the stable formulation order shared by both solvers.
func sortBySizeDesc(clusters []types.Cluster) {
	slices.SortFunc(clusters, func(a, b types.Cluster) int {
		if a.Size != b.Size {
			if a.Size > b.Size {
				return -1
			}

			return 1
		}

		return a.Compare(b)
	})
}
