// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/internal/pool"
)

// LLMRequest is a model request bundling contents with tools, output schema
// and system instruction.
type LLMRequest struct {
	// The model name.
	Model string `json:"model,omitempty"`

	// The contents to send to the model.
	Contents []*genai.Content `json:"contents"`

	// Additional config for the generate content request.
	Config *genai.GenerateContentConfig `json:"config,omitempty"`

	// LiveConnectConfig is the live-connection handle of the request. A
	// request rebuilt from a wire message carries an empty value here; the
	// handle itself cannot cross a serialization boundary.
	LiveConnectConfig *genai.LiveConnectConfig `json:"live_connect_config,omitempty"`

	// ToolMap holds the resolved callable tools, keyed by name. Like
	// LiveConnectConfig, it is always present and empty after wire
	// conversion; presence is a structural contract, not a payload.
	ToolMap map[string]Tool `json:"-"`
}

// NewLLMRequest creates a new [LLMRequest] with an empty tool map.
func NewLLMRequest(contents []*genai.Content) *LLMRequest {
	return &LLMRequest{
		Contents:          contents,
		LiveConnectConfig: &genai.LiveConnectConfig{},
		ToolMap:           make(map[string]Tool),
	}
}

// AppendInstructions appends instructions to the system instruction.
func (r *LLMRequest) AppendInstructions(instructions ...string) {
	if r.Config == nil {
		r.Config = &genai.GenerateContentConfig{}
	}

	part := &genai.Part{
		Text: "\n\n" + strings.Join(instructions, "\n\n"),
	}

	if r.Config.SystemInstruction == nil {
		r.Config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{part},
		}
		return
	}

	r.Config.SystemInstruction.Parts = append(r.Config.SystemInstruction.Parts, part)
}

// AppendTools adds tools to the request, declaring them in the config and
// registering them in the tool map.
func (r *LLMRequest) AppendTools(tools ...Tool) *LLMRequest {
	if r.Config == nil {
		r.Config = &genai.GenerateContentConfig{}
	}
	if r.ToolMap == nil {
		r.ToolMap = make(map[string]Tool)
	}

	var declarations []*genai.FunctionDeclaration
	for _, tool := range tools {
		declarations = append(declarations, tool.GetDeclaration())
		r.ToolMap[tool.Name()] = tool
	}
	r.Config.Tools = append(r.Config.Tools, &genai.Tool{
		FunctionDeclarations: declarations,
	})

	return r
}

// SetOutputSchema configures the expected response format.
func (r *LLMRequest) SetOutputSchema(schema *genai.Schema) *LLMRequest {
	if r.Config == nil {
		r.Config = &genai.GenerateContentConfig{}
	}

	r.Config.ResponseSchema = schema
	r.Config.ResponseMIMEType = "application/json"

	return r
}

// ToJSON converts the request to a JSON string.
func (r *LLMRequest) ToJSON() (string, error) {
	sb := pool.String.Get()
	if err := json.MarshalWrite(sb, r); err != nil {
		return "", fmt.Errorf("failed to marshal LLMRequest to JSON: %w", err)
	}
	out := sb.String()
	sb.Reset()
	pool.String.Put(sb)
	return out, nil
}
