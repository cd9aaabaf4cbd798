package adapter

// Stack is a last-in first-out adapter over a LIFO container.
//
// By default, a Vector is used as backing.
type Stack[T any] struct {
	backend LIFO[T]
}

// Init installs backend as the container of s. Values already held by the
// previous backing are not transferred.
func (s *Stack[T]) Init(backend LIFO[T]) { s.backend = backend }

// Container returns the backing container of s.
func (s *Stack[T]) Container() LIFO[T] {
	if s.backend == nil {
		s.backend = new(Vector[T])
	}
	return s.backend
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	if s.backend != nil {
		return s.backend.Len()
	}
	return 0
}

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool { return s.Len() == 0 }

// Push puts value on top of the stack.
func (s *Stack[T]) Push(value T) error { return s.Container().PushBack(value) }

// Pop removes and returns the value on top of the stack.
//
// The method panics if the stack is empty.
func (s *Stack[T]) Pop() T { return s.Container().PopBack() }

// Top returns the value on top of the stack.
//
// The method panics if the stack is empty.
func (s *Stack[T]) Top() T { return s.Container().Back() }

// Swap exchanges the backing containers of s and other.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.backend, other.backend = other.backend, s.backend
}
