package slist

import (
	"fmt"
	"iter"
	"slices"
)

// PushFront inserts value at the front of the list.
//
// Complexity: O(1)
func (l *List[T]) PushFront(value T) error {
	n, err := l.allocate(l.head.next, value)
	if err != nil {
		return fmt.Errorf("slist: push front: %w", err)
	}
	l.head.next = n
	l.size++
	return nil
}

// EmplaceFront inserts a value at the front of the list, letting init
// construct it in the node storage. The method returns a pointer to the new
// value.
//
// Complexity: O(1)
func (l *List[T]) EmplaceFront(init func(*T)) (*T, error) {
	n, err := l.emplace(l.head.next, init)
	if err != nil {
		return nil, fmt.Errorf("slist: emplace front: %w", err)
	}
	l.head.next = n
	l.size++
	return &n.value, nil
}

// PopFront removes the value at the front of the list.
//
// The method panics if the list is empty.
//
// Complexity: O(1)
func (l *List[T]) PopFront() {
	n := l.head.next
	if n == nil {
		panic(errEmpty("pop front"))
	}
	l.head.next = n.next
	l.size--
	l.releaseOne(n)
}

// InsertAfter inserts value after pos, and returns an iterator to the
// inserted value.
//
// Iterators to existing values remain valid. The method panics if pos is the
// end of the list.
//
// Complexity: O(1)
func (l *List[T]) InsertAfter(pos Iterator[T], value T) (Iterator[T], error) {
	p := pos.get()
	n, err := l.allocate(p.next, value)
	if err != nil {
		return pos, fmt.Errorf("slist: insert after: %w", err)
	}
	p.next = n
	l.size++
	return at(n), nil
}

// EmplaceAfter is like InsertAfter but lets init construct the value in the
// node storage.
//
// Complexity: O(1)
func (l *List[T]) EmplaceAfter(pos Iterator[T], init func(*T)) (Iterator[T], error) {
	p := pos.get()
	n, err := l.emplace(p.next, init)
	if err != nil {
		return pos, fmt.Errorf("slist: emplace after: %w", err)
	}
	p.next = n
	l.size++
	return at(n), nil
}

// InsertAfterN inserts n copies of value after pos, and returns an iterator to
// the last inserted value, or pos if n is zero.
//
// Either all the values are inserted or, if an allocation fails, the list is
// left unchanged.
//
// Complexity: O(n)
func (l *List[T]) InsertAfterN(pos Iterator[T], n int, value T) (Iterator[T], error) {
	return l.insertAfter("insert after", pos, func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// InsertAfterSlice inserts the values of s after pos, in order, and returns an
// iterator to the last inserted value, or pos if s is empty.
//
// Either all the values are inserted or, if an allocation fails, the list is
// left unchanged.
//
// Complexity: O(len(s))
func (l *List[T]) InsertAfterSlice(pos Iterator[T], s []T) (Iterator[T], error) {
	return l.insertAfter("insert after", pos, slices.Values(s))
}

// InsertAfterValues is like InsertAfterSlice with values given as arguments.
func (l *List[T]) InsertAfterValues(pos Iterator[T], values ...T) (Iterator[T], error) {
	return l.InsertAfterSlice(pos, values)
}

// InsertAfterRange inserts the values in [first, last) after pos, in order,
// and returns an iterator to the last inserted value, or pos if the range is
// empty. The range may belong to l.
//
// Either all the values are inserted or, if an allocation fails, the list is
// left unchanged.
//
// Complexity: O(distance(first, last))
func (l *List[T]) InsertAfterRange(pos Iterator[T], first, last ConstIterator[T]) (Iterator[T], error) {
	return l.insertAfter("insert after", pos, Between(first, last))
}

func (l *List[T]) insertAfter(op string, pos Iterator[T], values iter.Seq[T]) (Iterator[T], error) {
	p := pos.get()
	c, err := l.chainOf(values)
	if err != nil {
		return pos, fmt.Errorf("slist: %s: %w", op, err)
	}
	if c.size == 0 {
		return pos, nil
	}
	l.link(p, c)
	return at(c.last), nil
}

// EraseAfter removes the value following pos, and returns an iterator to the
// value which now follows pos, or the end of the list if there is none.
//
// If pos has no successor the method does nothing and returns the end of the
// list. Only iterators to the removed value are invalidated.
//
// Complexity: O(1)
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	p := pos.get()
	n := p.next
	if n == nil {
		return l.End()
	}
	p.next = n.next
	l.size--
	l.releaseOne(n)
	return at(p.next)
}

// EraseAfterRange removes the values strictly between first and last, and
// returns last.
//
// The method does nothing if first equals last, and panics if last cannot be
// reached from first.
//
// Complexity: O(distance(first, last))
func (l *List[T]) EraseAfterRange(first, last Iterator[T]) Iterator[T] {
	if first == last {
		return last
	}
	p := first.get()
	for p.next != last.node {
		n := p.next
		if n == nil {
			panic(errUnreachable("erase after"))
		}
		p.next = n.next
		l.size--
		l.releaseOne(n)
	}
	return last
}

// Resize changes the number of values in the list to n, removing values from
// the front or inserting copies of value at the front.
//
// If an allocation fails while growing, the values inserted so far remain in
// the list.
//
// Complexity: O(|n - l.Len()|)
func (l *List[T]) Resize(n int, value T) error {
	if n < 0 {
		panic(fmt.Errorf("slist: resize: negative length %d", n))
	}
	for l.size > n {
		l.PopFront()
	}
	for l.size < n {
		if err := l.PushFront(value); err != nil {
			return fmt.Errorf("slist: resize: %w", err)
		}
	}
	return nil
}

// SpliceAfter moves all the values of other after pos, leaving other empty. No
// node is allocated or copied, and iterators to the moved values remain valid
// and now designate positions in l.
//
// The method panics if the lists use allocators which do not compare equal.
//
// Complexity: O(other.Len())
func (l *List[T]) SpliceAfter(pos Iterator[T], other *List[T]) {
	if other == l || other.head.next == nil {
		return
	}
	l.compatible("splice after", other)
	p := pos.get()
	last := other.head.next
	for last.next != nil {
		last = last.next
	}
	last.next = p.next
	p.next = other.head.next
	l.size += other.size
	other.head.next, other.size = nil, 0
}

// SpliceAfterOne moves the value following it in other after pos.
//
// The method does nothing if it has no successor, or if pos already designates
// it or its successor.
//
// Complexity: O(1)
func (l *List[T]) SpliceAfterOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	p, prev := pos.get(), it.get()
	n := prev.next
	if n == nil || p == prev || p == n {
		return
	}
	l.compatible("splice after", other)
	prev.next = n.next
	n.next = p.next
	p.next = n
	if other != l {
		other.size--
		l.size++
	}
}

// SpliceAfterRange moves the values strictly between first and last in other
// after pos. The method does nothing if the range is empty.
//
// When other is l, pos must not be within the range.
//
// Complexity: O(distance(first, last))
func (l *List[T]) SpliceAfterRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	if first == last {
		return
	}
	f := first.get()
	if f.next == last.node {
		return
	}
	l.compatible("splice after", other)

	n := 0
	tail := f
	for tail.next != last.node {
		if tail.next == nil {
			panic(errUnreachable("splice after"))
		}
		tail = tail.next
		n++
	}

	p := pos.get()
	head := f.next
	f.next = last.node
	tail.next = p.next
	p.next = head

	if other != l {
		other.size -= n
		l.size += n
	}
}

func (l *List[T]) compatible(op string, other *List[T]) {
	if other != l && !l.Allocator().Equal(other.Allocator()) {
		panic(fmt.Errorf("slist: %s: lists use allocators which do not compare equal", op))
	}
}

func errUnreachable(op string) error {
	return fmt.Errorf("slist: %s: the end of the range cannot be reached from its start", op)
}
