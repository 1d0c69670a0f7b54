package internal

import (
	"iter"
	"maps"
	"slices"
)

// IterSorted2 iterates over a string keyed map in ascending key order.
func IterSorted2[V any](m map[string]V) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}
