// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Tool groups function declarations and built-in capability markers.
type Tool struct {
	FunctionDeclarations []*FunctionDeclaration `json:"functionDeclarations,omitempty"`

	// CodeExecution enables the built-in code execution capability.
	// Presence, not content, is the signal.
	CodeExecution *CodeExecution `json:"codeExecution,omitempty"`

	GoogleSearch *GoogleSearch `json:"googleSearch,omitempty"`

	GoogleSearchRetrieval *GoogleSearchRetrieval `json:"googleSearchRetrieval,omitempty"`
}

// FunctionDeclaration describes one callable function. Parameter and response
// shapes come either as a wire Schema or as an already-JSON-Schema-shaped
// value; at most one of each pair is set.
type FunctionDeclaration struct {
	Name string `json:"name,omitempty"`

	Description string `json:"description,omitempty"`

	Parameters *Schema `json:"parameters,omitempty"`

	ParametersJsonSchema any `json:"parametersJsonSchema,omitempty"`

	Response *Schema `json:"response,omitempty"`

	ResponseJsonSchema any `json:"responseJsonSchema,omitempty"`
}

// CodeExecution is an empty capability marker.
type CodeExecution struct{}

// GoogleSearch is an empty capability marker.
type GoogleSearch struct{}

// GoogleSearchRetrieval is an empty capability marker.
type GoogleSearchRetrieval struct{}
