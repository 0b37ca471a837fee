// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"context"

	"github.com/bytedance/sonic"
	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/wire"
)

// Tool Conversions

// FromWireTool converts wire.Tool to genai.Tool.
// Returns nil if input is nil.
func FromWireTool(ctx context.Context, tool *wire.Tool) *genai.Tool {
	if tool == nil {
		return nil
	}

	result := &genai.Tool{}

	if len(tool.FunctionDeclarations) > 0 {
		result.FunctionDeclarations = make([]*genai.FunctionDeclaration, len(tool.FunctionDeclarations))
		for i, fd := range tool.FunctionDeclarations {
			result.FunctionDeclarations[i] = FromWireFunctionDeclaration(ctx, fd)
		}
	}

	// Built-in capability markers carry no fields; presence is the signal.
	if tool.CodeExecution != nil {
		result.CodeExecution = &genai.ToolCodeExecution{}
	}
	if tool.GoogleSearch != nil {
		result.GoogleSearch = &genai.GoogleSearch{}
	}
	if tool.GoogleSearchRetrieval != nil {
		result.GoogleSearchRetrieval = &genai.GoogleSearchRetrieval{}
	}

	return result
}

// ToWireTool converts genai.Tool to wire.Tool.
// Returns nil if input is nil.
func ToWireTool(ctx context.Context, tool *genai.Tool) *wire.Tool {
	if tool == nil {
		return nil
	}

	result := &wire.Tool{}

	if len(tool.FunctionDeclarations) > 0 {
		result.FunctionDeclarations = make([]*wire.FunctionDeclaration, len(tool.FunctionDeclarations))
		for i, fd := range tool.FunctionDeclarations {
			result.FunctionDeclarations[i] = ToWireFunctionDeclaration(ctx, fd)
		}
	}

	if tool.CodeExecution != nil {
		result.CodeExecution = &wire.CodeExecution{}
	}
	if tool.GoogleSearch != nil {
		result.GoogleSearch = &wire.GoogleSearch{}
	}
	if tool.GoogleSearchRetrieval != nil {
		result.GoogleSearchRetrieval = &wire.GoogleSearchRetrieval{}
	}

	return result
}

// FromWireTools converts a slice of wire.Tool to genai.Tool.
// Returns nil if input is nil.
func FromWireTools(ctx context.Context, tools []*wire.Tool) []*genai.Tool {
	if tools == nil {
		return nil
	}

	result := make([]*genai.Tool, len(tools))
	for i, tool := range tools {
		result[i] = FromWireTool(ctx, tool)
	}
	return result
}

// ToWireTools converts a slice of genai.Tool to wire.Tool.
// Returns nil if input is nil.
func ToWireTools(ctx context.Context, tools []*genai.Tool) []*wire.Tool {
	if tools == nil {
		return nil
	}

	result := make([]*wire.Tool, len(tools))
	for i, tool := range tools {
		result[i] = ToWireTool(ctx, tool)
	}
	return result
}

// FunctionDeclaration Conversions

// FromWireFunctionDeclaration converts wire.FunctionDeclaration to
// genai.FunctionDeclaration. Returns nil if input is nil.
//
// A declaration that arrives with an already-JSON-Schema-shaped parameter or
// response description keeps it verbatim instead of routing it through the
// Schema converter: both dialects spell that shape identically, and the
// pass-through tests pin the assumption so schema drift fails loudly.
func FromWireFunctionDeclaration(ctx context.Context, fd *wire.FunctionDeclaration) *genai.FunctionDeclaration {
	if fd == nil {
		return nil
	}

	result := &genai.FunctionDeclaration{
		Name:        fd.Name,
		Description: fd.Description,
	}

	if fd.ParametersJsonSchema != nil {
		result.ParametersJsonSchema = passthroughJSONSchema(fd.ParametersJsonSchema)
	} else {
		result.Parameters = FromWireSchema(ctx, fd.Parameters)
	}

	if fd.ResponseJsonSchema != nil {
		result.ResponseJsonSchema = passthroughJSONSchema(fd.ResponseJsonSchema)
	} else {
		result.Response = FromWireSchema(ctx, fd.Response)
	}

	return result
}

// ToWireFunctionDeclaration converts genai.FunctionDeclaration to
// wire.FunctionDeclaration. Returns nil if input is nil. A missing name
// converts to the wire's empty string, never an error.
func ToWireFunctionDeclaration(ctx context.Context, fd *genai.FunctionDeclaration) *wire.FunctionDeclaration {
	if fd == nil {
		return nil
	}

	result := &wire.FunctionDeclaration{
		Name:        fd.Name,
		Description: fd.Description,
	}

	if fd.ParametersJsonSchema != nil {
		result.ParametersJsonSchema = passthroughJSONSchema(fd.ParametersJsonSchema)
	} else {
		result.Parameters = ToWireSchema(ctx, fd.Parameters)
	}

	if fd.ResponseJsonSchema != nil {
		result.ResponseJsonSchema = passthroughJSONSchema(fd.ResponseJsonSchema)
	} else {
		result.Response = ToWireSchema(ctx, fd.Response)
	}

	return result
}

// passthroughJSONSchema detaches a JSON-schema-shaped value from its input
// tree via a JSON round trip. The value itself is not interpreted; it is
// already in the target dialect.
func passthroughJSONSchema(v any) any {
	raw, err := sonic.Marshal(v)
	if err != nil {
		// Not JSON-shaped; the transport could not have carried it either.
		return v
	}

	var out any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
