package slist

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConstruction(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T, *Arena[int])
	}{
		{
			scenario: "the zero-value list is empty and uses the heap allocator",
			function: testZeroValueList,
		},

		{
			scenario: "repeating a value n times produces a list of n values",
			function: testRepeat,
		},

		{
			scenario: "lists constructed from slices retain the order of values",
			function: testFromSlice,
		},

		{
			scenario: "lists constructed from sequences retain the order of values",
			function: testFromSeq,
		},

		{
			scenario: "lists constructed from iterator ranges retain the order of values",
			function: testFromRange,
		},

		{
			scenario: "constructing a list which does not fit in the arena releases all nodes",
			function: testConstructionFailure,
		},

		{
			scenario: "clones share no node with the original list",
			function: testClone,
		},

		{
			scenario: "moving a list with an equal allocator takes over its nodes",
			function: testMoveSameAllocator,
		},

		{
			scenario: "moving a list with a different allocator copies the values and clears the source",
			function: testMoveOtherAllocator,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			a := NewArena[int](Capacity(16))
			test.function(t, a)
		})
	}
}

func testZeroValueList(t *testing.T, _ *Arena[int]) {
	l := List[int]{}
	assertList(t, &l)

	if _, ok := l.Allocator().(Heap[int]); !ok {
		t.Errorf("wrong default allocator: %T", l.Allocator())
	}
	if it := l.Begin(); it != l.End() {
		t.Error("begin of an empty list must be the end of the list")
	}
}

func testRepeat(t *testing.T, a *Arena[int]) {
	for n := 0; n < 5; n++ {
		l, err := Repeat(n, 7, WithAllocator[int](a))
		if err != nil {
			t.Fatal(err)
		}
		assertList(t, l, slices.Repeat([]int{7}, n)...)
		l.Clear()
	}
	assertArenaEmpty(t, a)
}

func testFromSlice(t *testing.T, a *Arena[int]) {
	l, err := FromSlice([]int{1, 2, 3, 4, 5}, WithAllocator[int](a))
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 1, 2, 3, 4, 5)
	if live := a.Live(); live != 5 {
		t.Errorf("wrong number of live nodes: got=%d want=5", live)
	}
}

func testFromSeq(t *testing.T, a *Arena[int]) {
	l, err := FromSeq(slices.Values([]int{1, 2, 3, 4, 5}), WithAllocator[int](a))
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 1, 2, 3, 4, 5)
}

func testFromRange(t *testing.T, a *Arena[int]) {
	src := Of(1, 2, 3, 4, 5)
	l, err := FromRange(src.CBegin().Next(), src.CEnd(), WithAllocator[int](a))
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 2, 3, 4, 5)
	assertList(t, src, 1, 2, 3, 4, 5)
}

func testConstructionFailure(t *testing.T, a *Arena[int]) {
	values := make([]int, a.Cap()+1)

	if _, err := FromSlice(values, WithAllocator[int](a)); !errors.Is(err, ErrNoNodes) {
		t.Errorf("wrong error constructing from a slice: %v", err)
	}
	assertArenaEmpty(t, a)

	if _, err := FromSeq(slices.Values(values), WithAllocator[int](a)); !errors.Is(err, ErrNoNodes) {
		t.Errorf("wrong error constructing from a sequence: %v", err)
	}
	assertArenaEmpty(t, a)

	if _, err := Repeat(len(values), 1, WithAllocator[int](a)); !errors.Is(err, ErrNoNodes) {
		t.Errorf("wrong error constructing repeated values: %v", err)
	}
	assertArenaEmpty(t, a)
}

func testClone(t *testing.T, a *Arena[int]) {
	l, err := FromSlice([]int{1, 2, 3}, WithAllocator[int](a))
	if err != nil {
		t.Fatal(err)
	}

	c, err := l.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if !c.Allocator().Equal(a) {
		t.Error("clone must use the allocator selected by the arena")
	}
	*c.Begin().Value() = 10
	assertList(t, l, 1, 2, 3)
	assertList(t, c, 10, 2, 3)

	h, err := l.CloneWith(Heap[int]{})
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, h, 1, 2, 3)
	if live := a.Live(); live != 6 {
		t.Errorf("wrong number of live nodes: got=%d want=6", live)
	}

	l.Clear()
	c.Clear()
	assertArenaEmpty(t, a)
	assertList(t, h, 1, 2, 3)
}

func testMoveSameAllocator(t *testing.T, a *Arena[int]) {
	src, err := FromSlice([]int{1, 2, 3}, WithAllocator[int](a))
	if err != nil {
		t.Fatal(err)
	}
	first := src.Begin()

	l, err := MoveWith(src, a)
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 1, 2, 3)
	assertList(t, src)

	if l.Begin() != first {
		t.Error("nodes must be taken over by the moved list")
	}
	if live := a.Live(); live != 3 {
		t.Errorf("wrong number of live nodes: got=%d want=3", live)
	}

	m := Move(l)
	assertList(t, m, 1, 2, 3)
	assertList(t, l)
	if m.Begin() != first {
		t.Error("nodes must be taken over by the moved list")
	}
}

func testMoveOtherAllocator(t *testing.T, a *Arena[int]) {
	src := Of(1, 2, 3)

	l, err := MoveWith(src, a)
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 1, 2, 3)
	assertList(t, src)
	if live := a.Live(); live != 3 {
		t.Errorf("wrong number of live nodes: got=%d want=3", live)
	}

	full := NewArena[int](Capacity(2))
	src = Of(1, 2, 3)
	if _, err := MoveWith(src, full); !errors.Is(err, ErrNoNodes) {
		t.Errorf("wrong error moving into a full arena: %v", err)
	}
	assertList(t, src, 1, 2, 3)
	assertArenaEmpty(t, full)
}

func TestAssignment(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T)
	}{
		{
			scenario: "copy assignment keeps the allocator when it does not propagate",
			function: testAssignNoPropagation,
		},

		{
			scenario: "copy assignment adopts the allocator when it propagates",
			function: testAssignPropagation,
		},

		{
			scenario: "failed copy assignment leaves the list untouched",
			function: testAssignFailure,
		},

		{
			scenario: "move assignment between equal allocators takes over the nodes",
			function: testMoveAssignEqual,
		},

		{
			scenario: "move assignment between different allocators copies the values",
			function: testMoveAssignNoPropagation,
		},

		{
			scenario: "move assignment adopts the allocator when it propagates",
			function: testMoveAssignPropagation,
		},

		{
			scenario: "assigning values replaces the content of the list",
			function: testAssignValues,
		},

		{
			scenario: "assigning a list to itself does nothing",
			function: testSelfAssign,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, test.function)
	}
}

func testAssignNoPropagation(t *testing.T) {
	a := NewArena[int](Capacity(8))
	b := NewArena[int](Capacity(8))

	l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
	r, _ := FromSlice([]int{3, 4, 5}, WithAllocator[int](b))

	if err := l.Assign(r); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 3, 4, 5)
	assertList(t, r, 3, 4, 5)

	if l.Allocator() != Allocator[int](a) {
		t.Error("the allocator must not change when it does not propagate on copy assignment")
	}
	if live := a.Live(); live != 3 {
		t.Errorf("wrong number of live nodes in the target arena: got=%d want=3", live)
	}
}

func testAssignPropagation(t *testing.T) {
	traits := Traits{PropagateOnCopyAssignment: true}
	a := NewArena[int](Capacity(8), Propagate(traits))
	b := NewArena[int](Capacity(8), Propagate(traits))

	l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
	r, _ := FromSlice([]int{3, 4, 5}, WithAllocator[int](b))

	if err := l.Assign(r); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 3, 4, 5)

	if l.Allocator() != Allocator[int](b) {
		t.Error("the allocator must propagate on copy assignment")
	}
	assertArenaEmpty(t, a)
	if live := b.Live(); live != 6 {
		t.Errorf("wrong number of live nodes in the source arena: got=%d want=6", live)
	}
}

func testAssignFailure(t *testing.T) {
	a := NewArena[int](Capacity(4))

	l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
	r := Of(3, 4, 5)

	if err := l.Assign(r); !errors.Is(err, ErrNoNodes) {
		t.Errorf("wrong error: %v", err)
	}
	assertList(t, l, 1, 2)
	if live := a.Live(); live != 2 {
		t.Errorf("wrong number of live nodes: got=%d want=2", live)
	}
}

func testMoveAssignEqual(t *testing.T) {
	a := NewArena[int](Capacity(8))

	l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
	r, _ := FromSlice([]int{3, 4, 5}, WithAllocator[int](a))
	first := r.Begin()

	if err := l.MoveAssign(r); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 3, 4, 5)
	assertList(t, r)

	if l.Begin() != first {
		t.Error("nodes must be taken over when allocators compare equal")
	}
	if live := a.Live(); live != 3 {
		t.Errorf("wrong number of live nodes: got=%d want=3", live)
	}
}

func testMoveAssignNoPropagation(t *testing.T) {
	a := NewArena[int](Capacity(8))
	b := NewArena[int](Capacity(8))

	l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
	r, _ := FromSlice([]int{3, 4, 5}, WithAllocator[int](b))

	if err := l.MoveAssign(r); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 3, 4, 5)
	assertList(t, r)

	if l.Allocator() != Allocator[int](a) {
		t.Error("the allocator must not change when it does not propagate on move assignment")
	}
	if live := a.Live(); live != 3 {
		t.Errorf("wrong number of live nodes in the target arena: got=%d want=3", live)
	}
	assertArenaEmpty(t, b)
}

func testMoveAssignPropagation(t *testing.T) {
	traits := Traits{PropagateOnMoveAssignment: true}
	a := NewArena[int](Capacity(8), Propagate(traits))
	b := NewArena[int](Capacity(8), Propagate(traits))

	l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
	r, _ := FromSlice([]int{3, 4, 5}, WithAllocator[int](b))
	first := r.Begin()

	if err := l.MoveAssign(r); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 3, 4, 5)
	assertList(t, r)

	if l.Allocator() != Allocator[int](b) {
		t.Error("the allocator must propagate on move assignment")
	}
	if l.Begin() != first {
		t.Error("nodes must be taken over when the allocator propagates")
	}
	assertArenaEmpty(t, a)
}

func testAssignValues(t *testing.T) {
	a := NewArena[int](Capacity(4))
	l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))

	if err := l.AssignValues(7, 8); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 7, 8)
	if live := a.Live(); live != 2 {
		t.Errorf("wrong number of live nodes: got=%d want=2", live)
	}

	if err := l.AssignValues(1, 2, 3); !errors.Is(err, ErrNoNodes) {
		t.Errorf("wrong error: %v", err)
	}
	assertList(t, l, 7, 8)
}

func testSelfAssign(t *testing.T) {
	l := Of(1, 2, 3)
	if err := l.Assign(l); err != nil {
		t.Fatal(err)
	}
	if err := l.MoveAssign(l); err != nil {
		t.Fatal(err)
	}
	assertList(t, l, 1, 2, 3)
}

func TestSwap(t *testing.T) {
	t.Run("lists with equal allocators exchange their values", func(t *testing.T) {
		l, r := Of(1, 2, 3), Of(4)
		l.Swap(r)
		assertList(t, l, 4)
		assertList(t, r, 1, 2, 3)
	})

	t.Run("allocators are exchanged when they propagate on swap", func(t *testing.T) {
		traits := Traits{PropagateOnSwap: true}
		a := NewArena[int](Capacity(4), Propagate(traits))
		b := NewArena[int](Capacity(4), Propagate(traits))

		l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
		r, _ := FromSlice([]int{3}, WithAllocator[int](b))
		l.Swap(r)

		assertList(t, l, 3)
		assertList(t, r, 1, 2)
		if l.Allocator() != Allocator[int](b) || r.Allocator() != Allocator[int](a) {
			t.Error("allocators were not exchanged")
		}

		l.Clear()
		r.Clear()
		assertArenaEmpty(t, a)
		assertArenaEmpty(t, b)
	})

	t.Run("swapping lists with allocators which cannot exchange nodes panics", func(t *testing.T) {
		a := NewArena[int](Capacity(4))
		l, _ := FromSlice([]int{1, 2}, WithAllocator[int](a))
		r := Of(3)

		assertPanic(t, func() { l.Swap(r) })
		assertList(t, l, 1, 2)
		assertList(t, r, 3)
	})
}

func TestConstructionPathsAgree(t *testing.T) {
	f := func(values []int16) bool {
		a, err := FromSlice(values)
		if err != nil {
			return false
		}
		b, err := FromSeq(slices.Values(values))
		if err != nil {
			return false
		}
		a.checkInvariants()
		b.checkInvariants()
		return Equal(a, b) && a.Len() == len(values)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPushFrontLength(t *testing.T) {
	f := func(n uint8) bool {
		l := New[int]()
		for i := 0; i < int(n); i++ {
			if err := l.PushFront(i); err != nil {
				return false
			}
		}
		l.checkInvariants()
		return l.Len() == int(n) && l.Empty() == (n == 0)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func (l *List[T]) checkInvariants() {
	n := 0
	for x := l.head.next; x != nil; x = x.next {
		if n++; n > l.size {
			panic(fmt.Sprintf("more nodes reachable than the cached size of %d", l.size))
		}
	}
	if n != l.size {
		panic(fmt.Sprintf("cached size mismatch: size=%d reachable=%d", l.size, n))
	}
}

func assertList[T any](t *testing.T, l *List[T], want ...T) {
	t.Helper()
	l.checkInvariants()

	if diff := cmp.Diff(want, l.Values(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("list values mismatch (-want +got):\n%s", diff)
	}
	if n := l.Len(); n != len(want) {
		t.Errorf("list length mismatch: got=%d want=%d", n, len(want))
	}
	if empty := l.Empty(); empty != (len(want) == 0) {
		t.Errorf("list emptiness mismatch: got=%t want=%t", empty, len(want) == 0)
	}
}

func assertArenaEmpty[T any](t *testing.T, a *Arena[T]) {
	t.Helper()
	if live := a.Live(); live != 0 {
		t.Errorf("arena has %d live nodes, expected none", live)
	}
	if s := a.Stats(); s.Live() != 0 {
		t.Errorf("arena stats report %d live nodes (allocs=%d frees=%d)", s.Live(), s.Allocs, s.Frees)
	}
}

func assertPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	f()
}
