package adapter

// Queue is a first-in first-out adapter over a FIFO container.
//
// By default, a Vector is used as backing.
type Queue[T any] struct {
	backend FIFO[T]
}

// Init installs backend as the container of q. Values already held by the
// previous backing are not transferred.
func (q *Queue[T]) Init(backend FIFO[T]) { q.backend = backend }

// Container returns the backing container of q.
func (q *Queue[T]) Container() FIFO[T] {
	if q.backend == nil {
		q.backend = new(Vector[T])
	}
	return q.backend
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	if q.backend != nil {
		return q.backend.Len()
	}
	return 0
}

// Empty reports whether the queue holds no values.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Push appends value at the back of the queue.
func (q *Queue[T]) Push(value T) error { return q.Container().PushBack(value) }

// Pop removes and returns the value at the front of the queue.
//
// The method panics if the queue is empty.
func (q *Queue[T]) Pop() T { return q.Container().PopFront() }

// Front returns the value at the front of the queue.
func (q *Queue[T]) Front() T { return q.Container().Front() }

// Back returns the value at the back of the queue.
func (q *Queue[T]) Back() T { return q.Container().Back() }

// Swap exchanges the backing containers of q and other.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.backend, other.backend = other.backend, q.backend
}
