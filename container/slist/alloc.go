package slist

// Allocator is the interface implemented by node allocation strategies.
//
// An allocator only manages storage: Allocate returns a zero node which the
// list then constructs, and Deallocate receives a node which the list already
// destroyed. Every node obtained from Allocate is passed back to Deallocate
// exactly once, by a list using an allocator that compares equal.
type Allocator[T any] interface {
	// Returns storage for one node, or an error if none can be provided.
	Allocate() (*Node[T], error)

	// Releases storage previously returned by Allocate.
	Deallocate(*Node[T])

	// Reports whether nodes allocated by the receiver may be deallocated by
	// other, and the other way around.
	Equal(other Allocator[T]) bool

	// Returns the propagation rules of the allocator.
	Traits() Traits

	// Returns the allocator that copies of a list using the receiver should
	// use when no allocator is given explicitly.
	SelectOnCopy() Allocator[T]
}

// Traits carries the rules deciding whether an allocator follows the content
// of a list when the list is assigned or swapped.
//
// When a flag is not set, the target list keeps its own allocator, and the
// elements are reconstructed with it whenever the allocators differ.
type Traits struct {
	PropagateOnCopyAssignment bool
	PropagateOnMoveAssignment bool
	PropagateOnSwap           bool
}

// Stats contains counters tracking usage of an allocator.
type Stats struct {
	Allocs   int64 // nodes handed out
	Frees    int64 // nodes returned
	Failures int64 // allocations that could not be served
}

// Live returns the number of nodes allocated and not yet returned.
func (s Stats) Live() int64 {
	return s.Allocs - s.Frees
}

// Heap is the default allocator, it gets nodes from the Go heap.
//
// Heap never fails and all its instances compare equal, so lists using it can
// always exchange nodes.
type Heap[T any] struct{}

func (Heap[T]) Allocate() (*Node[T], error) { return new(Node[T]), nil }

// Deallocate is a no-op, the garbage collector reclaims destroyed nodes.
func (Heap[T]) Deallocate(*Node[T]) {}

func (Heap[T]) Equal(other Allocator[T]) bool {
	_, ok := unwrap(other).(Heap[T])
	return ok
}

func (Heap[T]) Traits() Traits {
	return Traits{PropagateOnMoveAssignment: true}
}

func (h Heap[T]) SelectOnCopy() Allocator[T] { return h }

// unwrap strips allocator wrappers such as Counting or Traced, returning the
// allocator which actually owns the storage.
func unwrap[T any](a Allocator[T]) Allocator[T] {
	for {
		w, ok := a.(interface{ Unwrap() Allocator[T] })
		if !ok {
			return a
		}
		a = w.Unwrap()
	}
}
