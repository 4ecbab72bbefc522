package seqsplit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqsplit/types"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("fills defaults for zero values", func(t *testing.T) {
		cfg := &Config{
			Splits: []types.SplitTarget{
				{Name: "train", Fraction: 0.8},
				{Name: "test", Fraction: 0.2},
			},
		}

		require.NoError(t, cfg.Validate())
		require.InDelta(t, DefaultTolerance, cfg.Tolerance, 1e-12)
		require.Equal(t, types.ObjectiveSum, cfg.Objective)
		require.Zero(t, cfg.SolveTimeout) // zero budget is honored literally
	})

	t.Run("rejects invalid split spec", func(t *testing.T) {
		cfg := &Config{
			Splits: []types.SplitTarget{
				{Name: "train", Fraction: 0.5},
				{Name: "test", Fraction: 0.6},
			},
		}

		require.ErrorIs(t, cfg.Validate(), ErrInvalidSplitSpec)
	})

	t.Run("rejects negative tolerance", func(t *testing.T) {
		cfg := TrainTestConfig(0.3)
		cfg.Tolerance = -0.1

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects unknown objective", func(t *testing.T) {
		cfg := TrainTestConfig(0.3)
		cfg.Objective = "median"

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects negative solve timeout", func(t *testing.T) {
		cfg := TrainTestConfig(0.3)
		cfg.SolveTimeout = -time.Second

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestTrainTestConfig(t *testing.T) {
	cfg := TrainTestConfig(0.2)

	require.NoError(t, cfg.Validate())
	require.Equal(t, "train", cfg.Splits[0].Name)
	require.InDelta(t, 0.8, cfg.Splits[0].Fraction, 1e-9)
	require.Equal(t, "test", cfg.Splits[1].Name)
	require.InDelta(t, 0.2, cfg.Splits[1].Fraction, 1e-9)
	require.Equal(t, DefaultSolveTimeout, cfg.SolveTimeout)
}

func TestTrainTestValConfig(t *testing.T) {
	cfg := TrainTestValConfig(0.2, 0.1)

	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Splits, 3)
	require.InDelta(t, 0.7, cfg.Splits[0].Fraction, 1e-9)
	require.Equal(t, "val", cfg.Splits[1].Name)
	require.Equal(t, "test", cfg.Splits[2].Name)
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses yaml with duration string", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "splits.yaml")
		content := `
splits:
  - name: train
    fraction: 0.7
  - name: test
    fraction: 0.3
tolerance: 0.02
objective: max
solveTimeout: 5s
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Len(t, cfg.Splits, 2)
		require.Equal(t, "train", cfg.Splits[0].Name)
		require.InDelta(t, 0.02, cfg.Tolerance, 1e-12)
		require.Equal(t, types.ObjectiveMax, cfg.Objective)
		require.Equal(t, 5*time.Second, cfg.SolveTimeout)
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "splits.yaml")
		require.NoError(t, os.WriteFile(path, []byte("solveTimeout: soon"), 0o600))

		_, err := LoadConfig(path)

		require.Error(t, err)
		require.Contains(t, err.Error(), "solveTimeout")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})
}
