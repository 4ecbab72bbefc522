// Package aggregate reduces a sequence-to-cluster mapping into a cluster
// table with sizes and member lists.
package aggregate

import (
	"fmt"
	"slices"

	"github.com/arloliu/seqsplit/types"
)

// Build reduces a sequence-to-cluster mapping into a cluster table.
//
// Each cluster's size is the sum of its members' weights. A nil weights map
// means uniform weight 1 per sequence (count-based sizing); a weights entry
// for a sequence not present in the mapping is ignored.
//
// Clusters are returned sorted by ID and member lists are sorted, so the
// table is a stable, reproducible formulation base regardless of map
// iteration order.
//
// Parameters:
//   - mapping: Sequence ID to cluster ID (keys unique by construction)
//   - weights: Optional sequence ID to weight (nil for uniform weight 1)
//
// Returns:
//   - []types.Cluster: Cluster table sorted by cluster ID
//   - int64: Total size across all clusters
//   - error: ErrInvalidMapping for empty IDs or negative weights
func Build(mapping map[string]string, weights map[string]int64) ([]types.Cluster, int64, error) {
	if len(mapping) == 0 {
		return []types.Cluster{}, 0, nil
	}

	members := make(map[string][]string)
	sizes := make(map[string]int64)
	total := int64(0)

	for seq, cluster := range mapping {
		if seq == "" {
			return nil, 0, fmt.Errorf("%w: empty sequence identifier", types.ErrInvalidMapping)
		}
		if cluster == "" {
			return nil, 0, fmt.Errorf("%w: sequence %q has empty cluster identifier", types.ErrInvalidMapping, seq)
		}

		w := int64(1)
		if weights != nil {
			if ww, ok := weights[seq]; ok {
				if ww < 0 {
					return nil, 0, fmt.Errorf("%w: sequence %q has negative weight %d", types.ErrInvalidMapping, seq, ww)
				}
				w = ww
			}
		}

		members[cluster] = append(members[cluster], seq)
		sizes[cluster] += w
		total += w
	}

	clusters := make([]types.Cluster, 0, len(members))
	for id, seqs := range members {
		slices.Sort(seqs)
		clusters = append(clusters, types.Cluster{
			ID:      id,
			Size:    sizes[id],
			Members: seqs,
		})
	}
	slices.SortFunc(clusters, types.Cluster.Compare)

	return clusters, total, nil
}
