// Package compare provides comparison functions for ordered types, in the
// three-way form expected by the containers of this module.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function ordering values in the opposite
// direction of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// Less adapts cmp into a predicate reporting whether a sorts before b.
func Less[T any](cmp func(T, T) int) func(T, T) bool {
	return func(a, b T) bool { return cmp(a, b) < 0 }
}

// Equal is an equality predicate for comparable types.
func Equal[T comparable](a, b T) bool { return a == b }
