package seqsplit

import (
	"context"
	"fmt"

	"github.com/arloliu/seqsplit/internal/aggregate"
	"github.com/arloliu/seqsplit/internal/hash"
	"github.com/arloliu/seqsplit/internal/materialize"
	"github.com/arloliu/seqsplit/types"
)

// KFold partitions the sequences into k cluster-aware cross-validation folds.
//
// Clusters are arranged by a seeded deterministic permutation (WithSeed) and
// balanced greedily into k bins of approximately equal size. Fold i uses bin
// i as its "test" split and all other bins as "train", so the leakage and
// exactly-once invariants of Split hold within every fold. The same mapping,
// weights, and seed always produce the same folds.
//
// Fold results carry StatusHeuristicFallback: bin balancing is greedy, not
// exact.
//
// Parameters:
//   - ctx: Context for cancellation
//   - mapping: Sequence ID to cluster ID (keys unique by construction)
//   - k: Number of folds; must satisfy 2 <= k <= number of clusters
//   - opts: Per-request options (WithWeights, WithSeed)
//
// Returns:
//   - []*types.Result: One result per fold with "train" and "test" splits
//   - error: ErrInvalidMapping or ErrInvalidSplitSpec
//
// Example:
//
//	folds, err := sp.KFold(ctx, mapping, 5, seqsplit.WithSeed(42))
//	for _, fold := range folds {
//	    train, test := fold.Members("train"), fold.Members("test")
//	    // fit on train, evaluate on test
//	}
func (s *Splitter) KFold(ctx context.Context, mapping map[string]string, k int, opts ...SplitOption) ([]*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := &splitOptions{}
	for _, opt := range opts {
		opt(options)
	}

	clusters, total, err := aggregate.Build(mapping, options.weights)
	if err != nil {
		return nil, err
	}
	if k < 2 {
		return nil, fmt.Errorf("%w: need at least 2 folds, got %d", types.ErrInvalidSplitSpec, k)
	}
	if k > len(clusters) {
		return nil, fmt.Errorf("%w: %d folds exceed %d clusters", types.ErrInvalidSplitSpec, k, len(clusters))
	}

	s.metrics.RecordProblemSize(len(clusters), len(mapping))

	byID := make(map[string]types.Cluster, len(clusters))
	ids := make([]string, len(clusters))
	for i, c := range clusters {
		byID[c.ID] = c
		ids[i] = c.ID
	}

	// Seeded permutation, then least-filled bin assignment: reproducible
	// pseudo-random folds with roughly equal sizes.
	binSizes := make([]int64, k)
	binOf := make(map[string]int, len(clusters))
	for _, id := range hash.Order(ids, options.seed) {
		bin := 0
		for j := 1; j < k; j++ {
			if binSizes[j] < binSizes[bin] {
				bin = j
			}
		}
		binSizes[bin] += byID[id].Size
		binOf[id] = bin
	}

	splits := []types.SplitTarget{
		{Name: "train", Fraction: float64(k-1) / float64(k)},
		{Name: "test", Fraction: 1 / float64(k)},
	}

	folds := make([]*types.Result, k)
	for fold := range k {
		assignment := make(map[string]string, len(clusters))
		for id, bin := range binOf {
			if bin == fold {
				assignment[id] = "test"
			} else {
				assignment[id] = "train"
			}
		}

		solution := &types.Solution{Assignment: assignment, Status: types.StatusHeuristicFallback}
		result, err := materialize.Expand(clusters, solution, splits, total)
		if err != nil {
			return nil, err
		}
		folds[fold] = result
	}

	s.logger.Info("k-fold partition complete",
		"folds", k,
		"clusters", len(clusters),
		"sequences", len(mapping),
	)

	return folds, nil
}
