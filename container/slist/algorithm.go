package slist

import (
	"golang.org/x/exp/constraints"

	"github.com/segmentio/slist/compare"
)

// RemoveIf removes every value for which pred returns true, and returns the
// number of values removed. The remaining values keep their order.
//
// pred is called once for each value, from front to back. If it panics, the
// values removed before remain removed.
//
// Complexity: O(n)
func (l *List[T]) RemoveIf(pred func(T) bool) (removed int) {
	for l.head.next != nil && pred(l.head.next.value) {
		l.PopFront()
		removed++
	}

	if prev := l.head.next; prev != nil {
		for n := prev.next; n != nil; n = prev.next {
			if pred(n.value) {
				prev.next = n.next
				l.size--
				l.releaseOne(n)
				removed++
			} else {
				prev = n
			}
		}
	}

	return removed
}

// Remove removes every value of l equal to value, and returns the number of
// values removed.
//
// Complexity: O(n)
func Remove[T comparable](l *List[T], value T) int {
	return l.RemoveIf(func(v T) bool { return v == value })
}

// Reverse reverses the order of the values in the list.
//
// Complexity: O(n)
func (l *List[T]) Reverse() {
	var prev *Node[T]
	for n := l.head.next; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head.next = prev
}

// UniqueFunc removes each value for which equal returns true when called with
// the value kept before it and the value itself, and returns the number of
// values removed. Only consecutive duplicates are removed.
//
// Complexity: O(n)
func (l *List[T]) UniqueFunc(equal func(T, T) bool) (removed int) {
	if l.size < 2 {
		return 0
	}
	cur := l.head.next
	for next := cur.next; next != nil; next = cur.next {
		if equal(cur.value, next.value) {
			cur.next = next.next
			l.size--
			l.releaseOne(next)
			removed++
		} else {
			cur = next
		}
	}
	return removed
}

// Unique removes consecutive duplicate values from l, and returns the number
// of values removed.
//
// Complexity: O(n)
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(compare.Equal[T])
}

// MergeFunc merges other into l. Both lists must be sorted according to cmp.
// Nodes are relinked, none is allocated or copied, and other is left empty.
//
// The merge is stable: when values compare equal, the ones from l come before
// the ones from other. The method does nothing if other is l or is empty, and
// panics if the lists use allocators which do not compare equal.
//
// If cmp panics, all the nodes of both lists are left in l, which is then no
// longer sorted.
//
// Complexity: O(n+m)
func (l *List[T]) MergeFunc(other *List[T], cmp func(T, T) int) {
	if other == l || other.head.next == nil {
		return
	}
	l.compatible("merge", other)

	a, b := l.head.next, other.head.next
	l.size += other.size
	other.head.next, other.size = nil, 0
	tail := &l.head

	defer func() {
		tail.next = a
		if b != nil {
			for tail.next != nil {
				tail = tail.next
			}
			tail.next = b
		}
	}()

	for a != nil && b != nil {
		if cmp(b.value, a.value) < 0 {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}
}

// Merge merges other into l, both lists being sorted in ascending order.
//
// Complexity: O(n+m)
func Merge[T constraints.Ordered](l, other *List[T]) {
	l.MergeFunc(other, compare.Function[T])
}

// SortFunc sorts the values of the list according to cmp. The sort is stable.
//
// Values are moved between the nodes of the list, which are neither allocated
// nor released: iterators keep designating the same positions, not the same
// values. If cmp panics, the list holds a permutation of its values.
//
// Complexity: O(n log n), with O(n) additional memory
func (l *List[T]) SortFunc(cmp func(T, T) int) {
	if l.size < 2 {
		return
	}
	s := sorter[T]{
		cmp: cmp,
		buf: make([]T, 0, l.size),
	}
	s.sort(l.head.next, l.size)
}

// Sort sorts the values of l in ascending order.
//
// Complexity: O(n log n)
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(compare.Function[T])
}

// sorter is a top-down merge sort over a run of nodes. Recursion splits runs
// by their length, so its depth is bounded by log2(n); the buffer is shared by
// all the merge steps.
type sorter[T any] struct {
	cmp func(T, T) int
	buf []T
}

// sort orders the n values starting at first.
func (s *sorter[T]) sort(first *Node[T], n int) {
	if n < 2 {
		return
	}
	half := n / 2
	mid := first
	for i := 0; i < half; i++ {
		mid = mid.next
	}
	s.sort(first, half)
	s.sort(mid, n-half)
	s.merge(first, half, mid, n-half)
}

// merge merges the sorted runs of nl values at left and nr values at right,
// right following left, and writes the result back into the same nodes.
func (s *sorter[T]) merge(left *Node[T], nl int, right *Node[T], nr int) {
	buf := s.buf[:0]
	a, b := left, right

	for nl > 0 && nr > 0 {
		if s.cmp(b.value, a.value) < 0 {
			buf = append(buf, b.value)
			b, nr = b.next, nr-1
		} else {
			buf = append(buf, a.value)
			a, nl = a.next, nl-1
		}
	}

	// Values left in the right run are already in their final nodes.
	for ; nl > 0; nl-- {
		buf = append(buf, a.value)
		a = a.next
	}

	n := left
	for i := range buf {
		n.value = buf[i]
		n = n.next
	}

	clear(buf)
	s.buf = buf[:0]
}
