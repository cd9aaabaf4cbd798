// Command slist runs the algorithms of the singly-linked list package on lists
// of integers given on the command line or in a configuration file.
//
// Every list of a run allocates its nodes from one arena, allocations are
// logged at debug level, and the command fails if the arena still holds live
// nodes when it exits.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML or YAML configuration file")
		logLevel   = flag.String("log-level", "", "minimum level of log entries, overrides the configuration")
		logFormat  = flag.String("log-format", "", "log format, text or json, overrides the configuration")
	)

	forEachCmd(subcommands.Register)
	flag.Parse()

	conf := DefaultConfig()
	if *configPath != "" {
		c, err := LoadConfig(*configPath)
		if err != nil {
			logrus.WithError(err).Error("loading configuration")
			os.Exit(int(subcommands.ExitUsageError))
		}
		conf = c
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	if *logFormat != "" {
		conf.LogFormat = *logFormat
	}

	log, err := conf.NewLogger(os.Stderr)
	if err != nil {
		logrus.WithError(err).Error("configuring logger")
		os.Exit(int(subcommands.ExitUsageError))
	}

	e := &env{conf: conf, log: log, out: os.Stdout}
	os.Exit(int(subcommands.Execute(context.Background(), e)))
}

// forEachCmd invokes the passed callback for each command supported by slist.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")
	cb(subcommands.CommandsCommand(), "")

	const group = "algorithms"
	cb(new(Merge), group)
	cb(new(Sort), group)
	cb(new(Unique), group)
	cb(new(Reverse), group)
	cb(new(Splice), group)
	cb(new(Remove), group)
}
