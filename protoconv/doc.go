// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package protoconv provides bidirectional type conversion between the
// simulator's wire messages and the [google.golang.org/genai] SDK shapes.
//
// The package is a pure function library: no shared state, no I/O, no
// mutation of inputs. Every conversion allocates a fresh output tree with no
// aliasing back to the input, so callers may mutate either side afterward
// and may invoke any converter concurrently.
//
// # Conversion Categories
//
//   - Content & Parts: text, function calls, function results, inline blobs
//     and thought markers
//   - Schema Definitions: the recursive type-descriptor dialect, both
//     wire ⇄ SDK and SDK → JSON Schema for the dynamic form renderer
//   - Tools & Functions: function declarations and built-in capability markers
//   - Safety: harm category and block threshold enums
//   - Generation Config: sampling and decoding parameters
//   - Requests & Responses: the composition roots, plus response constructors
//     for the common simulator replies
//
// # Error Handling
//
// No conversion fails. Unknown enum values resolve to their UNSPECIFIED
// counterpart and log a warning through the [context.Context] logger (see
// [github.com/kevinaud/adk-sim-plugin/pkg/logging]); cross-schema concepts a
// target cannot represent surface as warning strings returned alongside the
// result.
package protoconv
