package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/segmentio/slist/container/slist"
)

// errUsage is wrapped by errors caused by invalid command line arguments.
var errUsage = errors.New("usage error")

func usageErrorf(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(msg, args...))
}

// env is passed to every command as first argument of Execute.
type env struct {
	conf *Config
	log  logrus.FieldLogger
	out  io.Writer
}

// algorithm runs on the lists built from the command inputs, and returns the
// list to print, which must be one of its arguments.
type algorithm func(lists ...*slist.List[int]) (*slist.List[int], error)

// run builds one list per input, all of them allocating nodes from the same
// arena, applies f and prints the result. The command fails if nodes are still
// live in the arena once every list was cleared.
func (e *env) run(name string, inputs [][]int, f algorithm) subcommands.ExitStatus {
	log := e.log.WithField("command", name)
	arena := slist.NewArena[int](slist.Capacity(e.conf.Arena.Capacity))
	alloc := slist.NewTraced[int](arena, log)

	status := e.execute(log, alloc, inputs, f)

	stats := arena.Stats()
	log = log.WithFields(logrus.Fields{
		"allocs":   stats.Allocs,
		"frees":    stats.Frees,
		"failures": stats.Failures,
	})
	if live := arena.Live(); live != 0 {
		log.WithField("live", live).Error("nodes were not released to the arena")
		return subcommands.ExitFailure
	}
	log.Debug("arena released")
	return status
}

func (e *env) execute(log logrus.FieldLogger, alloc slist.Allocator[int], inputs [][]int, f algorithm) subcommands.ExitStatus {
	lists := make([]*slist.List[int], 0, len(inputs))
	defer func() {
		for _, l := range lists {
			l.Clear()
		}
	}()

	for i, values := range inputs {
		l, err := slist.FromSlice(values, slist.WithAllocator(alloc))
		if err != nil {
			log.WithError(err).WithField("input", i).Error("building list")
			return subcommands.ExitFailure
		}
		lists = append(lists, l)
	}

	result, err := f(lists...)
	if err != nil {
		log.WithError(err).Error("running command")
		if errors.Is(err, errUsage) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	fmt.Fprintln(e.out, format(result))
	return subcommands.ExitSuccess
}

func format(l *slist.List[int]) string {
	v := values{list: l.Values()}
	return v.String()
}
