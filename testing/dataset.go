package testing

import "fmt"

// NewClusteredMapping builds a synthetic sequence-to-cluster mapping with one
// cluster per entry in sizes, each holding sizes[i] member sequences.
//
// Identifiers are deterministic ("c003" / "c003-s007"), so mappings built
// from the same sizes are identical across runs and suitable for
// reproducibility assertions.
//
// Parameters:
//   - sizes: Member count per cluster
//
// Returns:
//   - map[string]string: Sequence ID to cluster ID
func NewClusteredMapping(sizes []int) map[string]string {
	mapping := make(map[string]string)
	for c, n := range sizes {
		cluster := fmt.Sprintf("c%03d", c)
		for i := range n {
			mapping[fmt.Sprintf("%s-s%03d", cluster, i)] = cluster
		}
	}

	return mapping
}

// NewWeightedMapping builds a mapping with one single-member cluster per
// entry in weights, plus the matching per-sequence weight map. This is the
// compact way to express an instance with known cluster sizes.
//
// Parameters:
//   - weights: Cluster weight per entry
//
// Returns:
//   - map[string]string: Sequence ID to cluster ID (one sequence per cluster)
//   - map[string]int64: Sequence ID to weight
func NewWeightedMapping(weights []int64) (map[string]string, map[string]int64) {
	mapping := make(map[string]string, len(weights))
	seqWeights := make(map[string]int64, len(weights))
	for c, w := range weights {
		cluster := fmt.Sprintf("c%03d", c)
		seq := cluster + "-s000"
		mapping[seq] = cluster
		seqWeights[seq] = w
	}

	return mapping, seqWeights
}
