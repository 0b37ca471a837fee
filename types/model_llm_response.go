// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"strings"

	"google.golang.org/genai"
)

// LLMResponse is a response from a language model, or an error condition
// standing in for one.
type LLMResponse struct {
	// Content is the content of the response.
	Content *genai.Content `json:"content,omitempty"`

	// GroundingMetadata is the grounding metadata of the response.
	GroundingMetadata *genai.GroundingMetadata `json:"grounding_metadata,omitempty"`

	// FinishReason reports why the model stopped generating.
	FinishReason genai.FinishReason `json:"finish_reason,omitempty"`

	// UsageMetadata is the token accounting of the response.
	UsageMetadata *genai.GenerateContentResponseUsageMetadata `json:"usage_metadata,omitempty"`

	// ModelVersion identifies the model build that produced the response.
	ModelVersion string `json:"model_version,omitempty"`

	// Partial indicates whether the text content is part of an unfinished
	// text stream. Only used for streaming mode.
	Partial bool `json:"partial,omitempty"`

	// TurnComplete indicates whether the response from the model is complete.
	// Only used for streaming mode.
	TurnComplete bool `json:"turn_complete,omitempty"`

	// ErrorCode is the error code if the response is an error. Code varies by model.
	ErrorCode string `json:"error_code,omitempty"`

	// ErrorMessage is the error message if the response is an error.
	ErrorMessage string `json:"error_message,omitempty"`

	// Interrupted indicates that the model was interrupted while generating.
	Interrupted bool `json:"interrupted,omitempty"`

	// CustomMetadata is an optional key-value pair to label the response.
	// The entire map must be JSON serializable.
	CustomMetadata map[string]any `json:"custom_metadata,omitempty"`
}

// Text returns the concatenated text of all text parts.
func (r *LLMResponse) Text() string {
	if r.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range r.Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
