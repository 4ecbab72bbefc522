// Package hash provides deterministic ordering utilities built on XXH3.
package hash

import (
	"slices"

	"github.com/zeebo/xxh3"
)

// Order returns the IDs arranged in a seeded pseudo-random but fully
// deterministic permutation.
//
// Each ID is placed by its 64-bit XXH3 hash (seeded when seed is non-zero),
// with the ID itself as tie-break so equal hashes cannot introduce
// nondeterminism. The same IDs and seed always produce the same permutation,
// which is what makes k-fold assignment reproducible across runs.
//
// Parameters:
//   - ids: Identifiers to permute (not mutated)
//   - seed: Permutation seed (0 selects the unseeded hash)
//
// Returns:
//   - []string: New slice with the permuted IDs
func Order(ids []string, seed uint64) []string {
	type hashed struct {
		id string
		h  uint64
	}

	items := make([]hashed, len(ids))
	for i, id := range ids {
		items[i] = hashed{id: id, h: Sum(id, seed)}
	}

	slices.SortFunc(items, func(a, b hashed) int {
		if a.h != b.h {
			if a.h < b.h {
				return -1
			}

			return 1
		}
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		default:
			return 0
		}
	})

	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}

	return out
}

// Sum computes a 64-bit XXH3 hash of the key.
//
// Uses XXH3 for both seeded and unseeded hashing for consistent performance.
func Sum(key string, seed uint64) uint64 {
	if seed != 0 {
		return xxh3.HashStringSeed(key, seed)
	}

	return xxh3.HashString(key)
}
