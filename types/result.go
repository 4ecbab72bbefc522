package types

import (
	"slices"
)

// SplitStats holds the realized size accounting for one split.
type SplitStats struct {
	// Name is the split name.
	Name string `json:"name"`

	// TargetFraction is the requested share of total size.
	TargetFraction float64 `json:"targetFraction"`

	// Size is the realized total weight assigned to this split.
	Size int64 `json:"size"`

	// Fraction is the realized share of total size (0 when the input was
	// empty).
	Fraction float64 `json:"fraction"`

	// Deviation is |Fraction - TargetFraction| (0 when the input was empty).
	Deviation float64 `json:"deviation"`

	// SequenceCount is the number of sequences assigned to this split.
	SequenceCount int `json:"sequenceCount"`

	// ClusterCount is the number of clusters assigned to this split.
	ClusterCount int `json:"clusterCount"`
}

// Result is the materialized outcome of one partition request.
type Result struct {
	// Status describes how the assignment was obtained.
	Status Status `json:"status"`

	// TotalSize is the total weight of all input sequences.
	TotalSize int64 `json:"totalSize"`

	// Splits holds per-split stats in split declaration order.
	Splits []SplitStats `json:"splits"`

	// Sequences maps every input sequence ID to its split name. Every input
	// sequence appears exactly once.
	Sequences map[string]string `json:"sequences"`

	// Clusters maps every cluster ID to its split name.
	Clusters map[string]string `json:"clusters"`
}

// Members returns the sorted sequence IDs assigned to the named split.
//
// Returns an empty slice for unknown split names.
func (r *Result) Members(split string) []string {
	members := make([]string, 0)
	for seq, s := range r.Sequences {
		if s == split {
			members = append(members, seq)
		}
	}
	slices.Sort(members)

	return members
}

// MaxDeviation returns the largest per-split deviation.
func (r *Result) MaxDeviation() float64 {
	maxDev := 0.0
	for _, s := range r.Splits {
		if s.Deviation > maxDev {
			maxDev = s.Deviation
		}
	}

	return maxDev
}

// Stats returns the stats for the named split, or false if the split does not
// exist.
func (r *Result) Stats(split string) (SplitStats, bool) {
	for _, s := range r.Splits {
		if s.Name == split {
			return s, true
		}
	}

	return SplitStats{}, false
}
