// Package adapter contains container adapters restricting a backing sequence
// to the operations of a stack or a queue.
//
// Adapters do not store values themselves, they forward every operation to a
// backing container installed with Init. The zero-value of each adapter is
// valid and uses a Vector as backing.
//
// Like the containers they wrap, adapters are not safe to use concurrently
// from multiple goroutines.
package adapter

import "fmt"

// LIFO is the interface implemented by containers which can back a Stack.
type LIFO[T any] interface {
	// Returns the number of values in the container.
	Len() int

	// Appends a value to the container, returning an error if storage for it
	// could not be obtained.
	PushBack(value T) error

	// Removes and returns the last value. Panics if the container is empty.
	PopBack() T

	// Returns the last value. Panics if the container is empty.
	Back() T
}

// FIFO is the interface implemented by containers which can back a Queue.
type FIFO[T any] interface {
	// Returns the number of values in the container.
	Len() int

	// Appends a value to the container, returning an error if storage for it
	// could not be obtained.
	PushBack(value T) error

	// Removes and returns the first value. Panics if the container is empty.
	PopFront() T

	// Returns the first value. Panics if the container is empty.
	Front() T

	// Returns the last value. Panics if the container is empty.
	Back() T
}

func errEmpty(op string) error {
	return fmt.Errorf("adapter: %s: the container is empty", op)
}
