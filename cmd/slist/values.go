package main

import (
	"fmt"
	"strconv"
	"strings"
)

// values is a flag.Value holding a comma separated list of integers. The
// flag remembers whether it was set so configuration file values are only
// overridden explicitly.
type values struct {
	list []int
	set  bool
}

func (v *values) String() string {
	s := make([]string, len(v.list))
	for i, x := range v.list {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, ",")
}

func (v *values) Set(s string) error {
	list, err := parseValues(s)
	if err != nil {
		return err
	}
	v.list, v.set = list, true
	return nil
}

func parseValues(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	list := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid value at index %d: %w", i, err)
		}
		list[i] = x
	}
	return list, nil
}

// resolve returns the values of v if the flag was set, or the list called
// name in the configuration otherwise.
func (v *values) resolve(conf *Config, name string) ([]int, error) {
	if v.set {
		return v.list, nil
	}
	if list, ok := conf.Lists[name]; ok {
		return list, nil
	}
	return nil, fmt.Errorf("no values given for list %q", name)
}
