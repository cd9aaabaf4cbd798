package main

import (
	"context"
	"flag"
	"slices"

	"github.com/google/subcommands"

	"github.com/segmentio/slist/compare"
	"github.com/segmentio/slist/container/slist"
)

// Merge implements subcommands.Command for the "merge" command.
type Merge struct {
	a, b values
}

// Name implements subcommands.Command.Name.
func (*Merge) Name() string { return "merge" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Merge) Synopsis() string { return "merge two sorted lists into one" }

// Usage implements subcommands.Command.Usage.
func (*Merge) Usage() string {
	return `merge [-a values] [-b values]:
  Merges the values of b into a. Both lists must be sorted.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (m *Merge) SetFlags(f *flag.FlagSet) {
	f.Var(&m.a, "a", "comma separated values of the list merged into (default: list a of the configuration)")
	f.Var(&m.b, "b", "comma separated values of the list merged from (default: list b of the configuration)")
}

// Execute implements subcommands.Command.Execute.
func (m *Merge) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	e := args[0].(*env)
	a, b, status := resolvePair(e, f, &m.a, &m.b)
	if status != subcommands.ExitSuccess {
		return status
	}
	return e.run(m.Name(), [][]int{a, b}, func(lists ...*slist.List[int]) (*slist.List[int], error) {
		for i, l := range lists {
			if !slices.IsSorted(l.Values()) {
				return nil, usageErrorf("list %c is not sorted", 'a'+i)
			}
		}
		slist.Merge(lists[0], lists[1])
		return lists[0], nil
	})
}

// Sort implements subcommands.Command for the "sort" command.
type Sort struct {
	a       values
	reverse bool
}

// Name implements subcommands.Command.Name.
func (*Sort) Name() string { return "sort" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Sort) Synopsis() string { return "sort a list" }

// Usage implements subcommands.Command.Usage.
func (*Sort) Usage() string {
	return `sort [-a values] [-reverse]:
  Sorts the values of a, keeping equal values in their original order.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Sort) SetFlags(f *flag.FlagSet) {
	f.Var(&s.a, "a", "comma separated values of the list (default: list a of the configuration)")
	f.BoolVar(&s.reverse, "reverse", false, "sort in descending order")
}

// Execute implements subcommands.Command.Execute.
func (s *Sort) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	e := args[0].(*env)
	a, status := resolveOne(e, f, &s.a)
	if status != subcommands.ExitSuccess {
		return status
	}
	cmp := compare.Function[int]
	if s.reverse {
		cmp = compare.Reverse(cmp)
	}
	return e.run(s.Name(), [][]int{a}, func(lists ...*slist.List[int]) (*slist.List[int], error) {
		lists[0].SortFunc(cmp)
		return lists[0], nil
	})
}

// Unique implements subcommands.Command for the "unique" command.
type Unique struct {
	a values
}

// Name implements subcommands.Command.Name.
func (*Unique) Name() string { return "unique" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Unique) Synopsis() string { return "remove consecutive duplicate values from a list" }

// Usage implements subcommands.Command.Usage.
func (*Unique) Usage() string {
	return `unique [-a values]:
  Removes every value of a equal to the value preceding it.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (u *Unique) SetFlags(f *flag.FlagSet) {
	f.Var(&u.a, "a", "comma separated values of the list (default: list a of the configuration)")
}

// Execute implements subcommands.Command.Execute.
func (u *Unique) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	e := args[0].(*env)
	a, status := resolveOne(e, f, &u.a)
	if status != subcommands.ExitSuccess {
		return status
	}
	return e.run(u.Name(), [][]int{a}, func(lists ...*slist.List[int]) (*slist.List[int], error) {
		n := slist.Unique(lists[0])
		e.log.WithField("removed", n).Info("removed duplicate values")
		return lists[0], nil
	})
}

// Reverse implements subcommands.Command for the "reverse" command.
type Reverse struct {
	a values
}

// Name implements subcommands.Command.Name.
func (*Reverse) Name() string { return "reverse" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Reverse) Synopsis() string { return "reverse the order of a list" }

// Usage implements subcommands.Command.Usage.
func (*Reverse) Usage() string {
	return `reverse [-a values]:
  Reverses the order of the values of a.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Reverse) SetFlags(f *flag.FlagSet) {
	f.Var(&r.a, "a", "comma separated values of the list (default: list a of the configuration)")
}

// Execute implements subcommands.Command.Execute.
func (r *Reverse) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	e := args[0].(*env)
	a, status := resolveOne(e, f, &r.a)
	if status != subcommands.ExitSuccess {
		return status
	}
	return e.run(r.Name(), [][]int{a}, func(lists ...*slist.List[int]) (*slist.List[int], error) {
		lists[0].Reverse()
		return lists[0], nil
	})
}

// Splice implements subcommands.Command for the "splice" command.
type Splice struct {
	a, b  values
	pos   int
	count int
}

// Name implements subcommands.Command.Name.
func (*Splice) Name() string { return "splice" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Splice) Synopsis() string { return "move values from one list into another" }

// Usage implements subcommands.Command.Usage.
func (*Splice) Usage() string {
	return `splice [-a values] [-b values] [-pos n] [-count n]:
  Moves the first count values of b after the first pos values of a. A
  negative count moves all the values of b.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Splice) SetFlags(f *flag.FlagSet) {
	f.Var(&s.a, "a", "comma separated values of the list moved into (default: list a of the configuration)")
	f.Var(&s.b, "b", "comma separated values of the list moved from (default: list b of the configuration)")
	f.IntVar(&s.pos, "pos", 0, "number of values of a preceding the moved values")
	f.IntVar(&s.count, "count", -1, "number of values of b to move, all of them if negative")
}

// Execute implements subcommands.Command.Execute.
func (s *Splice) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	e := args[0].(*env)
	a, b, status := resolvePair(e, f, &s.a, &s.b)
	if status != subcommands.ExitSuccess {
		return status
	}
	return e.run(s.Name(), [][]int{a, b}, func(lists ...*slist.List[int]) (*slist.List[int], error) {
		dst, src := lists[0], lists[1]
		if s.pos < 0 || s.pos > dst.Len() {
			return nil, usageErrorf("position %d is out of range [0, %d]", s.pos, dst.Len())
		}
		if s.count > src.Len() {
			return nil, usageErrorf("cannot move %d values out of %d", s.count, src.Len())
		}

		pos := nth(dst.BeforeBegin(), s.pos)
		if s.count < 0 {
			dst.SpliceAfter(pos, src)
		} else {
			dst.SpliceAfterRange(pos, src, src.BeforeBegin(), nth(src.BeforeBegin(), s.count+1))
		}

		e.log.WithField("left", src.Len()).Debug("values remaining in b")
		return dst, nil
	})
}

// Remove implements subcommands.Command for the "remove" command.
type Remove struct {
	a      values
	values values
}

// Name implements subcommands.Command.Name.
func (*Remove) Name() string { return "remove" }

// Synopsis implements subcommands.Command.Synopsis.
func (*Remove) Synopsis() string { return "remove values from a list" }

// Usage implements subcommands.Command.Usage.
func (*Remove) Usage() string {
	return `remove [-a values] -values values:
  Removes every occurrence of the given values from a.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Remove) SetFlags(f *flag.FlagSet) {
	f.Var(&r.a, "a", "comma separated values of the list (default: list a of the configuration)")
	f.Var(&r.values, "values", "comma separated values to remove")
}

// Execute implements subcommands.Command.Execute.
func (r *Remove) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	e := args[0].(*env)
	if !r.values.set {
		f.Usage()
		return subcommands.ExitUsageError
	}
	a, status := resolveOne(e, f, &r.a)
	if status != subcommands.ExitSuccess {
		return status
	}
	return e.run(r.Name(), [][]int{a}, func(lists ...*slist.List[int]) (*slist.List[int], error) {
		n := lists[0].RemoveIf(func(v int) bool { return slices.Contains(r.values.list, v) })
		e.log.WithField("removed", n).Info("removed values")
		return lists[0], nil
	})
}

func nth(it slist.Iterator[int], n int) slist.Iterator[int] {
	for ; n > 0 && !it.End(); n-- {
		it.Advance()
	}
	return it
}

func resolveOne(e *env, f *flag.FlagSet, a *values) ([]int, subcommands.ExitStatus) {
	if f.NArg() != 0 {
		f.Usage()
		return nil, subcommands.ExitUsageError
	}
	list, err := a.resolve(e.conf, "a")
	if err != nil {
		e.log.WithError(err).Error("resolving inputs")
		return nil, subcommands.ExitUsageError
	}
	return list, subcommands.ExitSuccess
}

func resolvePair(e *env, f *flag.FlagSet, a, b *values) ([]int, []int, subcommands.ExitStatus) {
	x, status := resolveOne(e, f, a)
	if status != subcommands.ExitSuccess {
		return nil, nil, status
	}
	y, err := b.resolve(e.conf, "b")
	if err != nil {
		e.log.WithError(err).Error("resolving inputs")
		return nil, nil, subcommands.ExitUsageError
	}
	return x, y, subcommands.ExitSuccess
}
