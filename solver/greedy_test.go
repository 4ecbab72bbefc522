package solver

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqsplit/types"
)

func trainTestProblem(sizes []int64, trainFrac, testFrac float64) *types.Problem {
	clusters := make([]types.Cluster, len(sizes))
	total := int64(0)
	for i, size := range sizes {
		clusters[i] = types.Cluster{
			ID:      fmt.Sprintf("c%02d", i),
			Size:    size,
			Members: []string{fmt.Sprintf("s%02d", i)},
		}
		total += size
	}

	return &types.Problem{
		Clusters: clusters,
		Splits: []types.SplitTarget{
			{Name: "train", Fraction: trainFrac},
			{Name: "test", Fraction: testFrac},
		},
		Objective: types.ObjectiveSum,
		TotalSize: total,
	}
}

func splitSizes(t *testing.T, problem *types.Problem, solution *types.Solution) map[string]int64 {
	t.Helper()

	sizes := make(map[string]int64)
	for _, c := range problem.Clusters {
		split, ok := solution.Assignment[c.ID]
		require.True(t, ok, "cluster %s not assigned", c.ID)
		sizes[split] += c.Size
	}

	return sizes
}

func TestGreedy_Solve(t *testing.T) {
	t.Run("assigns every cluster exactly once", func(t *testing.T) {
		problem := trainTestProblem([]int64{50, 40, 30, 20, 20, 15, 10, 10, 5, 5}, 0.7, 0.3)

		solution, err := NewGreedy().Solve(context.Background(), problem)

		require.NoError(t, err)
		require.Equal(t, types.StatusHeuristicFallback, solution.Status)
		require.Len(t, solution.Assignment, len(problem.Clusters))
	})

	t.Run("balances sizes near targets", func(t *testing.T) {
		problem := trainTestProblem([]int64{50, 40, 30, 20, 20, 15, 10, 10, 5, 5}, 0.7, 0.3)

		solution, err := NewGreedy().Solve(context.Background(), problem)

		require.NoError(t, err)
		sizes := splitSizes(t, problem, solution)
		require.Equal(t, int64(205), sizes["train"]+sizes["test"])
		// LPT with ratio balancing lands within tolerance on this instance.
		require.InDelta(t, 143.5, float64(sizes["train"]), 10.25)
		require.InDelta(t, 61.5, float64(sizes["test"]), 10.25)
	})

	t.Run("is deterministic", func(t *testing.T) {
		problem := trainTestProblem([]int64{9, 8, 7, 7, 6, 5, 4, 3, 2, 2, 1}, 0.5, 0.5)

		a, err := NewGreedy().Solve(context.Background(), problem)
		require.NoError(t, err)
		b, err := NewGreedy().Solve(context.Background(), problem)
		require.NoError(t, err)

		require.Equal(t, a.Assignment, b.Assignment)
	})

	t.Run("honors pinned clusters", func(t *testing.T) {
		problem := trainTestProblem([]int64{10, 10, 10, 10}, 0.5, 0.5)
		problem.Pinned = map[string]string{"c00": "test", "c01": "test"}

		solution, err := NewGreedy().Solve(context.Background(), problem)

		require.NoError(t, err)
		require.Equal(t, "test", solution.Assignment["c00"])
		require.Equal(t, "test", solution.Assignment["c01"])
		// Remaining clusters rebalance toward train.
		require.Equal(t, "train", solution.Assignment["c02"])
		require.Equal(t, "train", solution.Assignment["c03"])
	})

	t.Run("single split takes everything", func(t *testing.T) {
		problem := trainTestProblem([]int64{3, 2, 1}, 0.7, 0.3)
		problem.Splits = []types.SplitTarget{{Name: "all", Fraction: 1.0}}

		solution, err := NewGreedy().Solve(context.Background(), problem)

		require.NoError(t, err)
		for _, c := range problem.Clusters {
			require.Equal(t, "all", solution.Assignment[c.ID])
		}
	})

	t.Run("rejects invalid split spec", func(t *testing.T) {
		problem := trainTestProblem([]int64{1, 2}, 0.5, 0.6)

		_, err := NewGreedy().Solve(context.Background(), problem)

		require.ErrorIs(t, err, types.ErrInvalidSplitSpec)
	})

	t.Run("ignores expired context", func(t *testing.T) {
		problem := trainTestProblem([]int64{5, 5}, 0.5, 0.5)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		solution, err := NewGreedy().Solve(ctx, problem)

		require.NoError(t, err)
		require.Len(t, solution.Assignment, 2)
	})
}
