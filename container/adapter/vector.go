package adapter

import "slices"

// Vector is a sequence of values stored contiguously in a slice. It is the
// default backing of Stack and Queue.
//
// Values removed from the front leave unused space at the beginning of the
// slice, which is reclaimed once it exceeds the number of values held.
type Vector[T any] struct {
	values []T
	head   int
}

// Len returns the number of values in v.
func (v *Vector[T]) Len() int { return len(v.values) - v.head }

// PushBack appends value to v. It never fails.
func (v *Vector[T]) PushBack(value T) error {
	v.values = append(v.values, value)
	return nil
}

// PopBack removes and returns the last value of v.
func (v *Vector[T]) PopBack() T {
	if v.Len() == 0 {
		panic(errEmpty("pop back"))
	}
	i := len(v.values) - 1
	value := v.values[i]
	clear(v.values[i:])
	v.values = v.values[:i]
	v.reset()
	return value
}

// PopFront removes and returns the first value of v.
//
// Complexity: O(1) amortized
func (v *Vector[T]) PopFront() T {
	if v.Len() == 0 {
		panic(errEmpty("pop front"))
	}
	value := v.values[v.head]
	clear(v.values[v.head : v.head+1])
	v.head++

	if v.head > v.Len() {
		n := copy(v.values, v.values[v.head:])
		clear(v.values[n:])
		v.values = v.values[:n]
		v.head = 0
	}

	v.reset()
	return value
}

// Front returns the first value of v.
func (v *Vector[T]) Front() T {
	if v.Len() == 0 {
		panic(errEmpty("front"))
	}
	return v.values[v.head]
}

// Back returns the last value of v.
func (v *Vector[T]) Back() T {
	if v.Len() == 0 {
		panic(errEmpty("back"))
	}
	return v.values[len(v.values)-1]
}

// Values returns a copy of the values of v, from front to back.
func (v *Vector[T]) Values() []T { return slices.Clone(v.values[v.head:]) }

func (v *Vector[T]) reset() {
	if v.Len() == 0 {
		v.values, v.head = v.values[:0], 0
	}
}
