package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/segmentio/slist/container/slist"
)

// Config is the configuration of the slist command.
type Config struct {
	// LogLevel is the minimum level of the log entries written to stderr, one
	// of the levels known to logrus.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// LogFormat selects the log formatter, "text" or "json".
	LogFormat string `toml:"log_format" yaml:"log_format"`

	Arena ArenaConfig `toml:"arena" yaml:"arena"`

	// Lists holds named lists of values which commands use when the values
	// are not given on the command line.
	Lists map[string][]int `toml:"lists" yaml:"lists"`
}

// ArenaConfig configures the arena serving the nodes of every list.
type ArenaConfig struct {
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Arena: ArenaConfig{
			Capacity: slist.DefaultArenaCapacity,
		},
	}
}

// LoadConfig reads the configuration file at path on top of the default
// configuration. The format is selected by the file extension.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		d := yaml.NewDecoder(f)
		d.KnownFields(true)
		if err := d.Decode(c); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q for %s", ext, path)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Arena.Capacity < 0 {
		return fmt.Errorf("negative arena capacity: %d", c.Arena.Capacity)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}

// NewLogger constructs the logger writing to w described by c.
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)

	switch c.LogFormat {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return log, nil
}
