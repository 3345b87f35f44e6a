package utils

import (
	"flag"
	"strings"
)

// CommaSeparatedFlags creates a flag.Value that accepts a comma-separated list
// of strings as a single command-line argument. values holds the defaults.
//
// Call InitFlag() on the returned value before calling flag.Parse().
func CommaSeparatedFlags(name string, values []string, usage string) CommaSeparatedFlagsData {
	return CommaSeparatedFlagsData{
		Name:   name,
		Values: values,
		Info:   usage,
	}
}

type CommaSeparatedFlagsData struct {
	Name   string
	Values []string
	Info   string
}

// Set replaces the current values. Entries are trimmed and blank entries are
// dropped, so "a, b,," yields ["a" "b"].
func (csl *CommaSeparatedFlagsData) Set(values string) error {
	csl.Values = nil
	for _, v := range strings.Split(values, ",") {
		if v = strings.TrimSpace(v); v != "" {
			csl.Values = append(csl.Values, v)
		}
	}
	return nil
}

func (csl *CommaSeparatedFlagsData) String() string {
	return strings.Join(csl.Values, ",")
}

func (csl *CommaSeparatedFlagsData) InitFlag() {
	flag.Var(csl, csl.Name, csl.Info)
}
