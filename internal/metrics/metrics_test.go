package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqsplit/types"
)

func TestNopMetrics(t *testing.T) {
	m := NewNop()

	// All methods must be callable without side effects.
	m.RecordSolveDuration(0.5, types.StatusOptimal)
	m.RecordSolverFallback("timeout")
	m.RecordProblemSize(10, 200)
	m.RecordSplitDeviation("train", 0.02)
}

func TestPrometheusCollector(t *testing.T) {
	t.Run("registers and records without panicking", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewPrometheus(reg, "seqsplit_test")

		m.RecordSolveDuration(0.01, types.StatusOptimal)
		m.RecordSolverFallback("timeout")
		m.RecordProblemSize(3, 12)
		m.RecordSplitDeviation("train", 0.01)

		families, err := reg.Gather()
		require.NoError(t, err)
		require.NotEmpty(t, families)

		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		require.Contains(t, names, "seqsplit_test_solver_solve_duration_seconds")
		require.Contains(t, names, "seqsplit_test_solver_fallback_total")
		require.Contains(t, names, "seqsplit_test_partition_split_deviation")
	})

	t.Run("defaults namespace and registerer", func(t *testing.T) {
		m := NewPrometheus(nil, "")

		require.Equal(t, "seqsplit", m.namespace)
	})

	t.Run("double registration on one registry is tolerated", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		a := NewPrometheus(reg, "dup")
		b := NewPrometheus(reg, "dup")

		a.RecordSolverFallback("timeout")
		b.RecordSolverFallback("timeout") // second register is ignored
	})
}
