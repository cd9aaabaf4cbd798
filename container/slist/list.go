// Package slist contains the implementation of a generic, singly-linked list
// with a pluggable allocation strategy.
//
// Each value of the list lives in its own node, obtained from the Allocator
// installed on the list and returned to it as soon as the value is removed.
// The default allocator uses the Go heap; the Arena allocator serves nodes
// from a bounded set of slots and reports exhaustion as an error, which every
// allocating operation of the list returns to the caller.
//
// Positions in the list are designated by forward iterators. Since nodes only
// know their successor, insertion and removal happen after a position:
//
//	l := slist.Of(1, 2, 3, 4, 5)
//	it, err := l.InsertAfter(l.Begin(), -6) // 1 -6 2 3 4 5
//	...
//	l.EraseAfter(it) // 1 -6 3 4 5
//
// BeforeBegin returns the position preceding the first value, which allows
// operating on the front of the list with the same methods.
//
// The zero-value is a valid, empty list using the Heap allocator. Lists must
// not be copied after first use, and are not safe for concurrent use.
package slist

import (
	"fmt"
	"iter"
	"slices"
)

// List values are singly-linked sequences of values of type T.
type List[T any] struct {
	head  Node[T] // head.next is the first node, head.value is never used
	size  int
	alloc Allocator[T]
}

// Option is a function configuring new lists.
type Option[T any] func(*List[T])

// WithAllocator is a list option setting the allocator used to create and
// destroy the nodes of the list.
//
// Default: Heap
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(l *List[T]) { l.alloc = alloc }
}

// New constructs an empty list, using the list of options passed as arguments
// to configure it.
func New[T any](options ...Option[T]) *List[T] {
	l := new(List[T])
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Repeat constructs a list of n copies of value.
//
// Complexity: O(n)
func Repeat[T any](n int, value T, options ...Option[T]) (*List[T], error) {
	l := New(options...)
	for i := 0; i < n; i++ {
		if err := l.PushFront(value); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// FromSlice constructs a list holding the values of s, in the same order.
//
// The slice is walked backward so each value can be inserted at the front.
//
// Complexity: O(n)
func FromSlice[T any](s []T, options ...Option[T]) (*List[T], error) {
	l := New(options...)
	for i := len(s) - 1; i >= 0; i-- {
		if err := l.PushFront(s[i]); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// FromSeq constructs a list holding the values produced by seq, in the same
// order.
//
// The sequence can only be consumed forward, so values are inserted at the
// front as they come and the list is reversed once at the end.
//
// Complexity: O(n)
func FromSeq[T any](seq iter.Seq[T], options ...Option[T]) (*List[T], error) {
	l := New(options...)
	for v := range seq {
		if err := l.PushFront(v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	l.Reverse()
	return l, nil
}

// FromRange constructs a list holding the values in [first, last), which may
// belong to any list.
//
// Complexity: O(n)
func FromRange[T any](first, last ConstIterator[T], options ...Option[T]) (*List[T], error) {
	return FromSeq(Between(first, last), options...)
}

// Of constructs a list holding values, using the Heap allocator.
func Of[T any](values ...T) *List[T] {
	l, err := FromSlice(values)
	if err != nil { // Heap never fails
		panic(err)
	}
	return l
}

// Clone returns a copy of l, using the allocator selected by the SelectOnCopy
// method of l's allocator.
//
// Complexity: O(n)
func (l *List[T]) Clone() (*List[T], error) {
	return l.CloneWith(l.Allocator().SelectOnCopy())
}

// CloneWith returns a copy of l whose nodes are allocated by alloc. The copy
// shares no node with l.
//
// Complexity: O(n)
func (l *List[T]) CloneWith(alloc Allocator[T]) (*List[T], error) {
	c := New(WithAllocator(alloc))
	nodes, err := c.chainOf(l.All())
	if err != nil {
		return nil, fmt.Errorf("slist: clone: %w", err)
	}
	c.link(&c.head, nodes)
	return c, nil
}

// Move constructs a list taking over the nodes and allocator of src, which is
// left empty.
//
// Complexity: O(1)
func Move[T any](src *List[T]) *List[T] {
	l := New(WithAllocator(src.Allocator()))
	l.adopt(src)
	return l
}

// MoveWith constructs a list using alloc and holding the values of src.
//
// If alloc compares equal to the allocator of src the nodes are taken over in
// constant time. Otherwise each value is copied into a node allocated by
// alloc, then src is cleared. In both cases src is left empty, unless an
// allocation fails, in which case src is left untouched.
//
// Complexity: O(1) or O(n)
func MoveWith[T any](src *List[T], alloc Allocator[T]) (*List[T], error) {
	l := New(WithAllocator(alloc))
	if l.Allocator().Equal(src.Allocator()) {
		l.adopt(src)
		return l, nil
	}
	nodes, err := l.chainOf(src.All())
	if err != nil {
		return nil, fmt.Errorf("slist: move: %w", err)
	}
	l.link(&l.head, nodes)
	src.Clear()
	return l, nil
}

// Assign replaces the content of l with a copy of other.
//
// The copy is allocated with other's allocator if l's allocator propagates on
// copy assignment, and with l's allocator otherwise; the allocator used
// becomes the one of l. The copy is made before l is modified, so l remains
// untouched if an allocation fails.
//
// Complexity: O(n+m)
func (l *List[T]) Assign(other *List[T]) error {
	if l == other {
		return nil
	}
	alloc := l.Allocator()
	if alloc.Traits().PropagateOnCopyAssignment {
		alloc = other.Allocator()
	}
	tmp, err := other.CloneWith(alloc)
	if err != nil {
		return fmt.Errorf("slist: assign: %w", err)
	}
	l.exchange(tmp)
	tmp.Clear()
	return nil
}

// MoveAssign replaces the content of l with the values of other, leaving
// other empty.
//
// If l's allocator propagates on move assignment, l takes over the nodes and
// the allocator of other. If the allocators compare equal, l takes over the
// nodes and keeps its allocator. Otherwise the values are copied into nodes
// allocated by l's allocator and other is cleared; l and other are left
// untouched if an allocation fails.
//
// Complexity: O(n) or O(n+m)
func (l *List[T]) MoveAssign(other *List[T]) error {
	if l == other {
		return nil
	}
	alloc := l.Allocator()
	propagate := alloc.Traits().PropagateOnMoveAssignment
	if propagate || alloc.Equal(other.Allocator()) {
		l.Clear()
		if propagate {
			l.alloc = other.Allocator()
		}
		l.adopt(other)
		return nil
	}
	nodes, err := l.chainOf(other.All())
	if err != nil {
		return fmt.Errorf("slist: move assign: %w", err)
	}
	l.Clear()
	l.link(&l.head, nodes)
	other.Clear()
	return nil
}

// AssignValues replaces the content of l with values, allocated with l's
// allocator. l remains untouched if an allocation fails.
//
// Complexity: O(n+m)
func (l *List[T]) AssignValues(values ...T) error {
	tmp, err := FromSlice(values, WithAllocator(l.Allocator()))
	if err != nil {
		return fmt.Errorf("slist: assign values: %w", err)
	}
	l.exchange(tmp)
	tmp.Clear()
	return nil
}

// Swap exchanges the content of l and other.
//
// Allocators are exchanged as well if l's allocator propagates on swap. The
// method panics if the allocators do not propagate and do not compare equal,
// since each list would end up holding nodes it cannot release.
//
// Complexity: O(1)
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	a, b := l.Allocator(), other.Allocator()
	if a.Traits().PropagateOnSwap {
		l.alloc, other.alloc = b, a
	} else if !a.Equal(b) {
		panic(fmt.Errorf("slist: swap: lists use allocators which do not compare equal and do not propagate on swap"))
	}
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Allocator returns the allocator of l.
func (l *List[T]) Allocator() Allocator[T] {
	if l.alloc == nil {
		l.alloc = Heap[T]{}
	}
	return l.alloc
}

// Len returns the number of values in the list.
//
// Complexity: O(1)
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no values.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first value of the list.
//
// The method panics if the list is empty.
func (l *List[T]) Front() T {
	if l.head.next == nil {
		panic(errEmpty("front"))
	}
	return l.head.next.value
}

// BeforeBegin returns an iterator positioned before the first value. It can be
// passed to any method operating after a position, but must not be
// dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] { return at(&l.head) }

// Begin returns an iterator positioned on the first value.
func (l *List[T]) Begin() Iterator[T] { return at(l.head.next) }

// End returns an iterator positioned past the last value.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// CBeforeBegin is like BeforeBegin but returns a read-only iterator.
func (l *List[T]) CBeforeBegin() ConstIterator[T] { return cat(&l.head) }

// CBegin is like Begin but returns a read-only iterator.
func (l *List[T]) CBegin() ConstIterator[T] { return cat(l.head.next) }

// CEnd is like End but returns a read-only iterator.
func (l *List[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{} }

// All returns a sequence of the values of the list, from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Range calls f for each value of the list, from front to back. If f returns
// false, the iteration is stopped.
func (l *List[T]) Range(f func(T) bool) {
	for n := l.head.next; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// Values returns the values of the list in a newly allocated slice.
func (l *List[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, l.size), l.All())
}

// Clear removes all the values from the list, releasing every node to the
// allocator.
//
// Complexity: O(n)
func (l *List[T]) Clear() {
	l.release(l.head.next)
	l.head.next = nil
	l.size = 0
}

// allocate obtains a node from the allocator and constructs it.
func (l *List[T]) allocate(next *Node[T], value T) (*Node[T], error) {
	n, err := l.Allocator().Allocate()
	if err != nil {
		return nil, err
	}
	return n.construct(next, value), nil
}

// emplace is like allocate but lets init construct the value in place. The
// node is returned to the allocator if init panics.
func (l *List[T]) emplace(next *Node[T], init func(*T)) (*Node[T], error) {
	n, err := l.Allocator().Allocate()
	if err != nil {
		return nil, err
	}
	constructed := false
	defer func() {
		if !constructed {
			l.releaseOne(n)
		}
	}()
	init(&n.value)
	n.next = next
	constructed = true
	return n, nil
}

// release destroys and deallocates the nodes from n to the end of its chain.
func (l *List[T]) release(n *Node[T]) {
	alloc := l.Allocator()
	for n != nil {
		next := n.next
		n.destroy()
		alloc.Deallocate(n)
		n = next
	}
}

// releaseOne destroys and deallocates a single node already unlinked from the
// list.
func (l *List[T]) releaseOne(n *Node[T]) {
	n.destroy()
	l.Allocator().Deallocate(n)
}

// chainOf allocates a chain holding the values of seq in order. Nothing is
// retained if an allocation fails.
func (l *List[T]) chainOf(seq iter.Seq[T]) (chain[T], error) {
	c := chain[T]{}
	for v := range seq {
		n, err := l.allocate(nil, v)
		if err != nil {
			l.release(c.first)
			return chain[T]{}, err
		}
		c.append(n)
	}
	return c, nil
}

// link inserts c after pos.
func (l *List[T]) link(pos *Node[T], c chain[T]) {
	if c.size != 0 {
		c.last.next = pos.next
		pos.next = c.first
		l.size += c.size
	}
}

// adopt takes over the nodes of src, which must use an allocator that compares
// equal to l's, and leaves src empty. The current nodes of l must have been
// released already.
func (l *List[T]) adopt(src *List[T]) {
	l.head.next, l.size = src.head.next, src.size
	src.head.next, src.size = nil, 0
}

// exchange swaps the nodes and the allocators of l and other, regardless of
// the propagation rules.
func (l *List[T]) exchange(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
	l.alloc, other.alloc = other.Allocator(), l.Allocator()
}

func errEmpty(op string) error {
	return fmt.Errorf("slist: %s: the list is empty", op)
}
