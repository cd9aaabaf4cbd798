package slist

// Node is the storage cell of a list, holding one value and the link to its
// successor. A nil successor is the terminal marker of the list.
//
// Nodes are created and destroyed exclusively by lists, through their
// allocator. Allocator implementations only deal with the raw storage: they
// hand out zero nodes and take them back after the list cleared them.
type Node[T any] struct {
	next  *Node[T]
	value T
}

// construct links n in front of next and stores value in it. It must be called
// on the storage returned by Allocator.Allocate before the node is reachable.
func (n *Node[T]) construct(next *Node[T], value T) *Node[T] {
	n.next = next
	n.value = value
	return n
}

// destroy clears the node so it does not retain references to the value or to
// the rest of the chain once returned to its allocator.
func (n *Node[T]) destroy() {
	*n = Node[T]{}
}

// chain is a run of nodes linked together but not yet reachable from a list.
// Multi-node insertions build a chain first, so that an allocation failure can
// be rolled back without the list ever observing a partial insertion.
type chain[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

func (c *chain[T]) append(n *Node[T]) {
	if c.last == nil {
		c.first = n
	} else {
		c.last.next = n
	}
	c.last = n
	c.size++
}
