// Package materialize expands a cluster-to-split assignment into the final
// sequence-to-split mapping and computes per-split size accounting.
package materialize

import (
	"fmt"

	"github.com/arloliu/seqsplit/types"
)

// Expand recombines a cluster assignment with the aggregated cluster table.
//
// The leakage invariant holds by construction: the assignment is
// cluster-granular, so all members of a cluster receive the same split. Every
// cluster must appear in the assignment and every assigned cluster must exist
// in the table; a mismatch indicates a contract violation between pipeline
// stages and is fatal.
//
// Parameters:
//   - clusters: Aggregated cluster table (ID order, with member lists)
//   - solution: Cluster-to-split assignment with status flag
//   - splits: Ordered split specification
//   - totalSize: Total weight across all clusters
//
// Returns:
//   - *types.Result: Sequence-to-split mapping plus per-split stats
//   - error: ErrMaterializationMismatch on assignment/table mismatch
func Expand(clusters []types.Cluster, solution *types.Solution, splits []types.SplitTarget, totalSize int64) (*types.Result, error) {
	if len(solution.Assignment) != len(clusters) {
		return nil, fmt.Errorf("%w: assignment covers %d clusters, table has %d",
			types.ErrMaterializationMismatch, len(solution.Assignment), len(clusters))
	}

	splitIdx := make(map[string]int, len(splits))
	for i, s := range splits {
		splitIdx[s.Name] = i
	}

	stats := make([]types.SplitStats, len(splits))
	for i, s := range splits {
		stats[i] = types.SplitStats{Name: s.Name, TargetFraction: s.Fraction}
	}

	seqCount := 0
	for _, c := range clusters {
		seqCount += len(c.Members)
	}

	sequences := make(map[string]string, seqCount)
	assigned := make(map[string]string, len(clusters))

	for _, c := range clusters {
		split, ok := solution.Assignment[c.ID]
		if !ok {
			return nil, fmt.Errorf("%w: cluster %q missing from assignment", types.ErrMaterializationMismatch, c.ID)
		}
		idx, ok := splitIdx[split]
		if !ok {
			return nil, fmt.Errorf("%w: cluster %q assigned to unknown split %q", types.ErrMaterializationMismatch, c.ID, split)
		}

		assigned[c.ID] = split
		stats[idx].Size += c.Size
		stats[idx].ClusterCount++
		stats[idx].SequenceCount += len(c.Members)
		for _, seq := range c.Members {
			sequences[seq] = split
		}
	}

	if totalSize > 0 {
		for i := range stats {
			stats[i].Fraction = float64(stats[i].Size) / float64(totalSize)
			dev := stats[i].Fraction - stats[i].TargetFraction
			if dev < 0 {
				dev = -dev
			}
			stats[i].Deviation = dev
		}
	}

	return &types.Result{
		Status:    solution.Status,
		TotalSize: totalSize,
		Splits:    stats,
		Sequences: sequences,
		Clusters:  assigned,
	}, nil
}

// Empty builds the result for an empty input mapping: every split exists with
// zero size and zero deviation, and no sequences are assigned.
func Empty(splits []types.SplitTarget) *types.Result {
	stats := make([]types.SplitStats, len(splits))
	for i, s := range splits {
		stats[i] = types.SplitStats{Name: s.Name, TargetFraction: s.Fraction}
	}

	return &types.Result{
		Status:    types.StatusOptimal,
		Splits:    stats,
		Sequences: map[string]string{},
		Clusters:  map[string]string{},
	}
}
