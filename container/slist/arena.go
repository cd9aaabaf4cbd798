package slist

import (
	"errors"
	"fmt"
	"unsafe"
)

const (
	// DefaultArenaCapacity is the default number of node slots of an Arena.
	DefaultArenaCapacity = 1024
)

var (
	// ErrNoNodes is returned when all the slots of an arena are in use.
	ErrNoNodes = errors.New("there are no free nodes left in the arena")
)

// ArenaConfig carries the configuration of an arena.
type ArenaConfig struct {
	Capacity int
	Traits   Traits
}

// DefaultArenaConfig constructs a new ArenaConfig instance initialized with
// the default configuration.
func DefaultArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Capacity: DefaultArenaCapacity,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *ArenaConfig) Apply(options ...ArenaOption) {
	for _, opt := range options {
		opt.ConfigureArena(c)
	}
}

// ArenaOption is an interface implemented by options allowing configuration of
// new Arena instances.
type ArenaOption interface {
	ConfigureArena(*ArenaConfig)
}

type arenaOption func(*ArenaConfig)

func (opt arenaOption) ConfigureArena(config *ArenaConfig) { opt(config) }

// Capacity is an arena configuration option setting the number of node slots.
//
// Default: 1024
func Capacity(n int) ArenaOption {
	return arenaOption(func(config *ArenaConfig) { config.Capacity = n })
}

// Propagate is an arena configuration option setting the propagation rules
// reported by the arena.
//
// Default: no propagation
func Propagate(traits Traits) ArenaOption {
	return arenaOption(func(config *ArenaConfig) { config.Traits = traits })
}

// Arena is an Allocator serving nodes from a fixed set of slots allocated up
// front. Slots keep a stable index for the lifetime of the arena, and released
// slots are reused before older ones.
//
// An arena compares equal only to itself. It is not safe for concurrent use;
// lists sharing an arena must be synchronized by the program.
type Arena[T any] struct {
	traits Traits
	slots  []Node[T]
	freed  []int32
	inuse  []bool
	stats  Stats
}

// NewArena constructs a new Arena instance, using the list of options passed as
// arguments to configure it.
func NewArena[T any](options ...ArenaOption) *Arena[T] {
	config := DefaultArenaConfig()
	config.Apply(options...)
	return NewArenaWithConfig[T](config)
}

// NewArenaWithConfig is like NewArena but uses an ArenaConfig instance to pass
// the configuration instead of a list of options.
func NewArenaWithConfig[T any](config *ArenaConfig) *Arena[T] {
	capacity := config.Capacity
	if capacity <= 0 {
		capacity = DefaultArenaCapacity
	}

	a := &Arena[T]{
		traits: config.Traits,
		slots:  make([]Node[T], capacity),
		freed:  make([]int32, capacity),
		inuse:  make([]bool, capacity),
	}

	// Pop order hands out the lowest slots first.
	for i := range a.freed {
		a.freed[i] = int32(capacity - (i + 1))
	}

	return a
}

// Cap returns the number of slots of the arena.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Stats returns the current values of the arena counters.
func (a *Arena[T]) Stats() Stats { return a.stats }

// Live returns the number of slots currently in use.
func (a *Arena[T]) Live() int { return len(a.slots) - len(a.freed) }

// Index returns the slot index of n, and whether n belongs to the arena.
func (a *Arena[T]) Index(n *Node[T]) (int, bool) {
	if n == nil || len(a.slots) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(&a.slots[0]))
	size := unsafe.Sizeof(a.slots[0])
	addr := uintptr(unsafe.Pointer(n))
	if addr < base || addr >= base+size*uintptr(len(a.slots)) {
		return 0, false
	}
	if off := addr - base; off%size == 0 {
		return int(off / size), true
	}
	return 0, false
}

// Allocate returns a free slot, or ErrNoNodes if all of them are in use.
//
// Complexity: O(1)
func (a *Arena[T]) Allocate() (*Node[T], error) {
	i := len(a.freed) - 1
	if i < 0 {
		a.stats.Failures++
		return nil, ErrNoNodes
	}
	slot := a.freed[i]
	a.freed = a.freed[:i]
	a.inuse[slot] = true
	a.stats.Allocs++
	return &a.slots[slot], nil
}

// Deallocate returns the slot of n to the arena.
//
// The method panics if n was not allocated by the arena, or was already
// returned.
//
// Complexity: O(1)
func (a *Arena[T]) Deallocate(n *Node[T]) {
	i, ok := a.Index(n)
	if !ok {
		panic(fmt.Errorf("cannot deallocate node %p which was not allocated by this arena", n))
	}
	if !a.inuse[i] {
		panic(fmt.Errorf("double deallocation of arena slot %d", i))
	}
	a.slots[i] = Node[T]{}
	a.inuse[i] = false
	a.freed = append(a.freed, int32(i))
	a.stats.Frees++
}

func (a *Arena[T]) Equal(other Allocator[T]) bool {
	b, ok := unwrap(other).(*Arena[T])
	return ok && a == b
}

func (a *Arena[T]) Traits() Traits { return a.traits }

func (a *Arena[T]) SelectOnCopy() Allocator[T] { return a }
