// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package types defines the SDK-side shapes the simulator plugin works with.
//
// The package wraps [google.golang.org/genai] composites into the two
// top-level exchange types, [LLMRequest] and [LLMResponse], and declares the
// minimal [Tool] contract that gives LLMRequest.ToolMap its meaning. The
// genai types themselves are used directly wherever they fit; only the
// bundling the simulator needs lives here.
package types
