// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// GenerateContentRequest is a complete inbound model request.
type GenerateContentRequest struct {
	// Model is the fully-qualified model resource name, e.g.
	// "models/gemini-2.0-flash".
	Model string `json:"model,omitempty"`

	Contents []*Content `json:"contents,omitempty"`

	SystemInstruction *Content `json:"systemInstruction,omitempty"`

	Tools []*Tool `json:"tools,omitempty"`

	SafetySettings []*SafetySetting `json:"safetySettings,omitempty"`

	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}
