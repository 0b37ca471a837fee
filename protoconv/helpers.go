// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"fmt"
	"slices"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/types"
)

// Response Builders

// ResponseContent normalizes the loose content forms a scenario author may
// supply into a [*genai.Content]. Accepted forms are a plain string, a part
// slice, or a ready-made content; anything else returns nil. Contents
// without a role default to "model".
func ResponseContent(v any) *genai.Content {
	switch v := v.(type) {
	case string:
		return genai.NewContentFromText(v, genai.RoleModel)
	case []*genai.Part:
		return &genai.Content{
			Role:  string(genai.RoleModel),
			Parts: slices.Clone(v),
		}
	case *genai.Content:
		if v == nil {
			return nil
		}
		content := &genai.Content{
			Role:  v.Role,
			Parts: slices.Clone(v.Parts),
		}
		if content.Role == "" {
			content.Role = string(genai.RoleModel)
		}
		return content
	default:
		return nil
	}
}

// NewTextResponse builds a completed single-turn response holding one text
// part.
func NewTextResponse(text string) *types.LLMResponse {
	return singlePartResponse(genai.NewPartFromText(text))
}

// NewToolInvocationResponse builds a completed response asking the host to
// run the named tool. An empty id is replaced with a minted "adk-" prefixed
// identifier so repeated invocations in a turn stay distinguishable. The
// args map is deep-copied; later mutation of the original does not leak
// into the response.
func NewToolInvocationResponse(id, name string, args map[string]any) *types.LLMResponse {
	if id == "" {
		id = "adk-" + uuid.NewString()
	}

	return singlePartResponse(&genai.Part{
		FunctionCall: &genai.FunctionCall{
			ID:   id,
			Name: name,
			Args: copyValueMap(args),
		},
	})
}

// NewFunctionResultResponse builds a completed response reporting the named
// tool's output back to the model.
func NewFunctionResultResponse(id, name string, result map[string]any) *types.LLMResponse {
	return singlePartResponse(&genai.Part{
		FunctionResponse: &genai.FunctionResponse{
			ID:       id,
			Name:     name,
			Response: copyValueMap(result),
		},
	})
}

// NewStructuredResponse builds a completed response whose single text part
// is the JSON serialization of v, for callers that requested a structured
// output schema.
func NewStructuredResponse(v any) (*types.LLMResponse, error) {
	text, err := sonic.MarshalString(v)
	if err != nil {
		return nil, fmt.Errorf("marshal structured response: %w", err)
	}
	return singlePartResponse(genai.NewPartFromText(text)), nil
}

func singlePartResponse(part *genai.Part) *types.LLMResponse {
	return &types.LLMResponse{
		Content: &genai.Content{
			Role:  string(genai.RoleModel),
			Parts: []*genai.Part{part},
		},
		FinishReason:  genai.FinishReasonStop,
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{},
	}
}
