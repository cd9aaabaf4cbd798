package slist

import (
	"golang.org/x/exp/constraints"

	"github.com/segmentio/slist/compare"
)

// CompareFunc compares the values of a and b lexicographically using cmp. The
// first pair of values which differ decides the result; if one list is a
// prefix of the other, the shorter list compares lower.
//
// Complexity: O(min(n, m))
func CompareFunc[T any](a, b *List[T], cmp func(T, T) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y != nil:
		return -1
	case x != nil && y == nil:
		return +1
	default:
		return 0
	}
}

// Compare is like CompareFunc for ordered values.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, compare.Function[T])
}

// EqualFunc reports whether a and b have the same length and equal values at
// each position.
//
// Complexity: O(n)
func EqualFunc[T any](a, b *List[T], equal func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !equal(x.value, y.value) {
			return false
		}
	}
	return true
}

// Equal is like EqualFunc for comparable values.
func Equal[T comparable](a, b *List[T]) bool { return EqualFunc(a, b, compare.Equal[T]) }

// NotEqual returns !Equal(a, b).
func NotEqual[T comparable](a, b *List[T]) bool { return !Equal(a, b) }

// Less reports whether a sorts before b.
func Less[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a does not sort after b.
func LessOrEqual[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a sorts after b.
func Greater[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) >= 0 }
