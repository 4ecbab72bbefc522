package materialize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqsplit/types"
)

var testSplits = []types.SplitTarget{
	{Name: "train", Fraction: 0.7},
	{Name: "test", Fraction: 0.3},
}

func TestExpand(t *testing.T) {
	clusters := []types.Cluster{
		{ID: "c1", Size: 7, Members: []string{"s1", "s2"}},
		{ID: "c2", Size: 3, Members: []string{"s3"}},
	}

	t.Run("expands clusters into sequence mapping with stats", func(t *testing.T) {
		solution := &types.Solution{
			Assignment: map[string]string{"c1": "train", "c2": "test"},
			Status:     types.StatusOptimal,
		}

		result, err := Expand(clusters, solution, testSplits, 10)

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, result.Status)
		require.Equal(t, map[string]string{
			"s1": "train",
			"s2": "train",
			"s3": "test",
		}, result.Sequences)

		train, ok := result.Stats("train")
		require.True(t, ok)
		require.Equal(t, int64(7), train.Size)
		require.InDelta(t, 0.7, train.Fraction, 1e-9)
		require.InDelta(t, 0.0, train.Deviation, 1e-9)
		require.Equal(t, 2, train.SequenceCount)
		require.Equal(t, 1, train.ClusterCount)

		test, ok := result.Stats("test")
		require.True(t, ok)
		require.Equal(t, int64(3), test.Size)
	})

	t.Run("sum of realized sizes equals total input size", func(t *testing.T) {
		solution := &types.Solution{
			Assignment: map[string]string{"c1": "train", "c2": "train"},
			Status:     types.StatusHeuristicFallback,
		}

		result, err := Expand(clusters, solution, testSplits, 10)

		require.NoError(t, err)
		var sum int64
		for _, s := range result.Splits {
			sum += s.Size
		}
		require.Equal(t, int64(10), sum)
	})

	t.Run("rejects assignment missing a cluster", func(t *testing.T) {
		solution := &types.Solution{
			Assignment: map[string]string{"c1": "train"},
			Status:     types.StatusOptimal,
		}

		_, err := Expand(clusters, solution, testSplits, 10)

		require.ErrorIs(t, err, types.ErrMaterializationMismatch)
	})

	t.Run("rejects assignment with unknown cluster", func(t *testing.T) {
		solution := &types.Solution{
			Assignment: map[string]string{"c1": "train", "ghost": "test"},
			Status:     types.StatusOptimal,
		}

		_, err := Expand(clusters, solution, testSplits, 10)

		require.ErrorIs(t, err, types.ErrMaterializationMismatch)
	})

	t.Run("rejects assignment to unknown split", func(t *testing.T) {
		solution := &types.Solution{
			Assignment: map[string]string{"c1": "train", "c2": "holdout"},
			Status:     types.StatusOptimal,
		}

		_, err := Expand(clusters, solution, testSplits, 10)

		require.ErrorIs(t, err, types.ErrMaterializationMismatch)
	})
}

func TestEmpty(t *testing.T) {
	result := Empty(testSplits)

	require.Equal(t, types.StatusOptimal, result.Status)
	require.Empty(t, result.Sequences)
	require.Len(t, result.Splits, 2)
	require.Zero(t, result.Splits[0].Size)
	require.Zero(t, result.Splits[0].Deviation)
}
