package slist

import (
	"errors"
	"iter"
)

var errEndDereference = errors.New("slist: dereference of an iterator positioned at the end of the list")

// cursor is the representation shared by Iterator and ConstIterator: a
// reference to a node, or nil for the end position.
type cursor[T any] struct{ node *Node[T] }

func (c cursor[T]) get() *Node[T] {
	if c.node == nil {
		panic(errEndDereference)
	}
	return c.node
}

// End reports whether the cursor is positioned at the end of the list.
func (c cursor[T]) End() bool { return c.node == nil }

// Iterator is a forward cursor over the nodes of a list, giving mutable access
// to the values.
//
// Iterators are plain values: copies designate the same position, and two
// iterators compare equal with == when they reference the same node. An
// iterator remains valid until the node it references is removed from its
// list; splicing moves the node to another list along with its iterators.
type Iterator[T any] struct{ cursor[T] }

// ConstIterator is like Iterator but only gives read access to the values.
type ConstIterator[T any] struct{ cursor[T] }

func at[T any](n *Node[T]) Iterator[T] { return Iterator[T]{cursor[T]{n}} }

func cat[T any](n *Node[T]) ConstIterator[T] { return ConstIterator[T]{cursor[T]{n}} }

// Value returns a pointer to the value at the iterator position.
//
// The method panics if the iterator is positioned at the end of the list.
func (it Iterator[T]) Value() *T { return &it.get().value }

// Set replaces the value at the iterator position.
func (it Iterator[T]) Set(value T) { it.get().value = value }

// Next returns an iterator positioned on the successor of it.
func (it Iterator[T]) Next() Iterator[T] { return at(it.get().next) }

// Advance moves it to the successor node and returns the advanced position.
func (it *Iterator[T]) Advance() Iterator[T] {
	it.node = it.get().next
	return *it
}

// PostAdvance moves it to the successor node and returns the position it had
// before moving.
func (it *Iterator[T]) PostAdvance() Iterator[T] {
	prev := *it
	it.node = it.get().next
	return prev
}

// Equal reports whether it and other reference the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.node == other.node }

// Const converts it to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return cat(it.node) }

// Value returns the value at the iterator position.
//
// The method panics if the iterator is positioned at the end of the list.
func (it ConstIterator[T]) Value() T { return it.get().value }

// Next returns an iterator positioned on the successor of it.
func (it ConstIterator[T]) Next() ConstIterator[T] { return cat(it.get().next) }

// Advance moves it to the successor node and returns the advanced position.
func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	it.node = it.get().next
	return *it
}

// PostAdvance moves it to the successor node and returns the position it had
// before moving.
func (it *ConstIterator[T]) PostAdvance() ConstIterator[T] {
	prev := *it
	it.node = it.get().next
	return prev
}

// Equal reports whether it and other reference the same node.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it.node == other.node }

// Distance returns the number of advances needed to go from first to last.
//
// Complexity: O(n)
func Distance[T any](first, last ConstIterator[T]) (n int) {
	for it := first; it != last; it.Advance() {
		n++
	}
	return n
}

// Between returns a sequence of the values in [first, last).
func Between[T any](first, last ConstIterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; it != last; it.Advance() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
