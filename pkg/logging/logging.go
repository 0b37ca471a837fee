// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging using [log/slog].
//
// Converters that can emit policy warnings (unknown enum values and the like)
// retrieve their logger from the [context.Context] they are handed, so the
// host application decides where warnings go by installing a logger with
// [NewContext]. Without one, log output is discarded; a pure conversion
// library must not write to process streams on its own.
package logging

import (
	"context"
	"log/slog"
)

// contextKey is how we find [*slog.Logger] in a [context.Context].
type contextKey struct{}

// NewContext returns a new [context.Context], derived from ctx, which carries the provided [*slog.Logger].
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the [*slog.Logger] carried by ctx.
//
// If no logger is found, this returns a logger with [slog.DiscardHandler].
func FromContext(ctx context.Context) *slog.Logger {
	if v := ctx.Value(contextKey{}); v != nil {
		return v.(*slog.Logger)
	}
	return slog.New(slog.DiscardHandler)
}
