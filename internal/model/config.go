// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Config, the parsed form of the command line.
//
// Why keep Args as a nil-able slice?
//
// "--args was not given" and "--args '[]'" are different inputs and the
// program reports them differently. Keeping nil and empty distinct lets the
// serialized form carry that difference, so a round trip through it must
// preserve it too.
package model

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds everything parsed from the command line.
type Config struct {
	// Verbosity counts -v occurrences. Anything above 2 is treated the same
	// by every consumer, but the value itself is kept as given.
	Verbosity int
	// Flag enables the serialization round-trip check.
	Flag bool
	// Args is nil when --args was not passed. Elements are NFC strings.
	Args []string
	// LogFormat is either "text" or "json".
	LogFormat string
	// Operation is nil when no subcommand was given.
	Operation *Operation
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{LogFormat: LogFormatText}
}

// Validate checks the invariants the parser and the decoder both rely on.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must be non-negative, got %d", c.Verbosity)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	for i, arg := range c.Args {
		if !norm.NFC.IsNormalString(arg) {
			return fmt.Errorf("args[%d] %q is not in Unicode NFC form", i, arg)
		}
	}
	if c.Operation != nil {
		if _, ok := opKindNames[c.Operation.Kind]; !ok {
			return fmt.Errorf("invalid operation kind %s", c.Operation.Kind)
		}
	}
	return nil
}
