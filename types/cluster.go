package types

// Cluster is an atomic group of sequences treated as indivisible during
// partitioning.
//
// A cluster is the unit of assignment: all member sequences land in the same
// split, which is what makes the resulting dataset split leakage-safe. Size is
// the sum of the member weights (weight 1 per sequence unless per-sequence
// weights were supplied).
type Cluster struct {
	// ID uniquely identifies this cluster (e.g. the MMseqs2 representative
	// sequence identifier).
	ID string `json:"id"`

	// Size is the total weight of all member sequences.
	Size int64 `json:"size"`

	// Members lists the sequence identifiers belonging to this cluster,
	// sorted for reproducible iteration.
	Members []string `json:"members"`
}

// Compare orders clusters by identifier.
//
// Returns:
//   - int: -1 if c < d, 0 if equal, +1 if c > d
func (c Cluster) Compare(d Cluster) int {
	switch {
	case c.ID < d.ID:
		return -1
	case c.ID > d.ID:
		return 1
	default:
		return 0
	}
}
