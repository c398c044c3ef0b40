// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a tallygo invocation: the
// Config produced by the command-line parser and the Operation it selects.
//
// # Core Concepts
//
//   - Config: The root value. It is built once from the process arguments,
//     optionally re-derived through the HCL codec to check that the mapping is
//     lossless, and finally consumed by the dispatcher.
//
//   - Operation: A tagged choice among increment, decrement and split, each
//     carrying one int32 argument.
//
// The model knows nothing about flags or HCL. The cli package fills it in and
// the hcl package maps it to and from text, which keeps both mappings testable
// against the same plain structs.
package model
