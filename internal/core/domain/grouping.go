package domain

import "slices"

// Invert groups the keys of m by identical value. Each group's keys are
// sorted with less so the result is deterministic regardless of map
// iteration order.
func Invert[K comparable, V comparable](m map[K]V, less func(K, K) bool) map[V][]K {
	out := make(map[V][]K, len(m))
	for k, v := range m {
		out[v] = append(out[v], k)
	}
	for v, keys := range out {
		slices.SortFunc(keys, func(a, b K) int {
			switch {
			case less(a, b):
				return -1
			case less(b, a):
				return 1
			default:
				return 0
			}
		})
		out[v] = keys
	}
	return out
}

// KeyedGroup assigns one value to a list of keys.
type KeyedGroup[K comparable, V comparable] struct {
	Keys  []K
	Value V
}

// Flatten expands a grouped mapping back to one entry per key. The groups
// must form a true partition of their keys: a key listed in two groups with
// different values is a caller bug and is reported as ErrNotAPartition.
func Flatten[K comparable, V comparable](groups []KeyedGroup[K, V]) (map[K]V, error) {
	out := make(map[K]V)
	for _, g := range groups {
		for _, k := range g.Keys {
			if prev, seen := out[k]; seen && prev != g.Value {
				return nil, ErrNotAPartition
			}
			out[k] = g.Value
		}
	}
	return out, nil
}
