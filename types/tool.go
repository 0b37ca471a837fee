// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"

	"google.golang.org/genai"
)

// Tool is a callable function the host runtime resolves for a request.
//
// Instances live in [LLMRequest.ToolMap]. They are host-runtime objects and
// cannot be reconstructed from serialized data, which is why a request built
// from a wire message always carries an empty map.
type Tool interface {
	// Name returns the name of the tool.
	Name() string

	// Description returns the description of the tool.
	Description() string

	// GetDeclaration returns the function declaration of this tool as a
	// [*genai.FunctionDeclaration].
	GetDeclaration() *genai.FunctionDeclaration

	// Run runs the tool with the given arguments.
	Run(ctx context.Context, args map[string]any) (any, error)
}
