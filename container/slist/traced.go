package slist

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Traced wraps an underlying allocator and logs every operation it serves.
// Allocations and deallocations are logged at debug level, failures at warning
// level.
//
// Like Counting, a Traced allocator compares equal to any allocator its
// backend compares equal to.
type Traced[T any] struct {
	backend Allocator[T]
	log     logrus.FieldLogger
	live    int64
}

// NewTraced constructs a Traced allocator logging calls to backend on log. A
// nil backend selects Heap, a nil logger selects the logrus standard logger.
func NewTraced[T any](backend Allocator[T], log logrus.FieldLogger) *Traced[T] {
	if backend == nil {
		backend = Heap[T]{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Traced[T]{backend: backend, log: log}
}

func (t *Traced[T]) Allocate() (*Node[T], error) {
	n, err := t.backend.Allocate()
	if err != nil {
		t.log.WithError(err).WithField("live", t.live).Warn("node allocation failed")
		return nil, err
	}
	t.live++
	t.log.WithFields(logrus.Fields{
		"node": fmt.Sprintf("%p", n),
		"live": t.live,
	}).Debug("allocated node")
	return n, nil
}

func (t *Traced[T]) Deallocate(n *Node[T]) {
	t.backend.Deallocate(n)
	t.live--
	t.log.WithFields(logrus.Fields{
		"node": fmt.Sprintf("%p", n),
		"live": t.live,
	}).Debug("deallocated node")
}

func (t *Traced[T]) Equal(other Allocator[T]) bool { return t.backend.Equal(other) }

func (t *Traced[T]) Traits() Traits { return t.backend.Traits() }

func (t *Traced[T]) SelectOnCopy() Allocator[T] { return t }

// Unwrap returns the underlying allocator.
func (t *Traced[T]) Unwrap() Allocator[T] { return t.backend }

// Live returns the number of nodes allocated through t and not yet returned.
func (t *Traced[T]) Live() int64 { return t.live }
