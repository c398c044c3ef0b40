// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Operation selected by a subcommand.
//
// Why a tagged struct instead of one type per operation?
//
// Every operation carries exactly one integer and none of them owns state, so
// a single struct with a kind tag keeps the config flat. It serializes as one
// labeled block and compares with plain structural equality.
package model

import "fmt"

// OpKind identifies which counting operation a subcommand selected.
type OpKind int

const (
	OpUnknown OpKind = iota
	OpIncrement
	OpDecrement
	OpSplit
)

var opKindNames = map[OpKind]string{
	OpIncrement: "increment",
	OpDecrement: "decrement",
	OpSplit:     "split",
}

// String returns the subcommand name for the kind.
func (k OpKind) String() string {
	if name, ok := opKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// ParseOpKind maps a subcommand name back to its kind.
func ParseOpKind(name string) (OpKind, error) {
	for kind, n := range opKindNames {
		if n == name {
			return kind, nil
		}
	}
	return OpUnknown, fmt.Errorf("unknown operation %q: must be 'increment', 'decrement', or 'split'", name)
}

// OpKinds lists the valid kinds in subcommand order.
func OpKinds() []OpKind {
	return []OpKind{OpIncrement, OpDecrement, OpSplit}
}

// Operation is a counting operation together with its single argument.
type Operation struct {
	Kind   OpKind
	Number int32
}
