package adapter

import "github.com/segmentio/slist/container/slist"

// Linked adapts a singly-linked list to the LIFO interface. Since the list only
// gives constant time access to its first value, the front of the list plays
// the role of the back of the container.
//
// Nodes are obtained from the allocator of the list, so pushing a value may
// fail, for example when the list uses an exhausted slist.Arena.
type Linked[T any] struct {
	list *slist.List[T]
}

// NewLinked returns a LIFO backed by l. The list must not be modified directly
// while the adapter is in use.
func NewLinked[T any](l *slist.List[T]) *Linked[T] {
	return &Linked[T]{list: l}
}

// List returns the list backing s.
func (s *Linked[T]) List() *slist.List[T] {
	if s.list == nil {
		s.list = slist.New[T]()
	}
	return s.list
}

func (s *Linked[T]) Len() int { return s.List().Len() }

func (s *Linked[T]) PushBack(value T) error { return s.List().PushFront(value) }

func (s *Linked[T]) PopBack() T {
	l := s.List()
	if l.Empty() {
		panic(errEmpty("pop back"))
	}
	value := l.Front()
	l.PopFront()
	return value
}

func (s *Linked[T]) Back() T {
	l := s.List()
	if l.Empty() {
		panic(errEmpty("back"))
	}
	return l.Front()
}
