package slist

// Counting wraps an underlying allocator, adding measures of usage.
//
// The zero-value is a valid allocator backed by Heap. A Counting allocator
// compares equal to any allocator its backend compares equal to.
type Counting[T any] struct {
	allocs   int64
	frees    int64
	failures int64
	backend  Allocator[T]
}

// NewCounting constructs a Counting allocator tracking calls to backend.
func NewCounting[T any](backend Allocator[T]) *Counting[T] {
	c := new(Counting[T])
	c.Init(backend)
	return c
}

// Init resets the counters and installs backend as the underlying allocator.
// A nil backend selects Heap.
func (c *Counting[T]) Init(backend Allocator[T]) {
	c.allocs = 0
	c.frees = 0
	c.failures = 0
	c.backend = backend
}

func (c *Counting[T]) Allocate() (*Node[T], error) {
	n, err := c.Unwrap().Allocate()
	if err != nil {
		c.failures++
		return nil, err
	}
	c.allocs++
	return n, nil
}

func (c *Counting[T]) Deallocate(n *Node[T]) {
	c.Unwrap().Deallocate(n)
	c.frees++
}

func (c *Counting[T]) Equal(other Allocator[T]) bool {
	return c.Unwrap().Equal(other)
}

func (c *Counting[T]) Traits() Traits { return c.Unwrap().Traits() }

// SelectOnCopy returns c, so copies keep contributing to the same counters.
func (c *Counting[T]) SelectOnCopy() Allocator[T] { return c }

// Unwrap returns the underlying allocator.
func (c *Counting[T]) Unwrap() Allocator[T] {
	if c.backend == nil {
		c.backend = Heap[T]{}
	}
	return c.backend
}

// Stats returns the current values of the counters.
func (c *Counting[T]) Stats() Stats {
	return Stats{
		Allocs:   c.allocs,
		Frees:    c.frees,
		Failures: c.failures,
	}
}
