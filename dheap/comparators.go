package dheap

import "cmp"

// CompareFunc is a three-way comparator over priorities, as required by
// Provider.Compare: negative if a sorts before b, zero if equal, positive
// if a sorts after b.
type CompareFunc[P any] func(a, b P) int

// FromLess adapts a boolean "a has higher priority than b" comparator
// (the shape used throughout the d-ary heap this package descends from)
// into the three-way CompareFunc the Provider protocol requires.
func FromLess[P any](less func(a, b P) bool) CompareFunc[P] {
	return func(a, b P) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// MinBy builds a min-ordering comparator over T from a key extractor,
// ordering lower keys closer to the root.
func MinBy[T any, K cmp.Ordered](keyOf func(T) K) CompareFunc[T] {
	return func(a, b T) int { return cmp.Compare(keyOf(a), keyOf(b)) }
}

// MaxBy builds a max-ordering comparator over T from a key extractor,
// ordering higher keys closer to the root.
func MaxBy[T any, K cmp.Ordered](keyOf func(T) K) CompareFunc[T] {
	return func(a, b T) int { return cmp.Compare(keyOf(b), keyOf(a)) }
}

// Reverse flips a comparator, turning a min-ordering into a max-ordering
// and vice versa.
func Reverse[P any](c CompareFunc[P]) CompareFunc[P] {
	return func(a, b P) int { return c(b, a) }
}

// Chain compares by each comparator in order, falling through to the next
// one whenever the current one reports equality.
func Chain[P any](comparators ...CompareFunc[P]) CompareFunc[P] {
	return func(a, b P) int {
		for _, c := range comparators {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// MinOrdered is a min-heap comparator for any cmp.Ordered priority type.
func MinOrdered[P cmp.Ordered]() CompareFunc[P] {
	return cmp.Compare[P]
}

// MaxOrdered is a max-heap comparator for any cmp.Ordered priority type.
func MaxOrdered[P cmp.Ordered]() CompareFunc[P] {
	return func(a, b P) int { return cmp.Compare(b, a) }
}
