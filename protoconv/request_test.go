// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/protoconv"
	"github.com/kevinaud/adk-sim-plugin/types"
	"github.com/kevinaud/adk-sim-plugin/wire"
)

func TestFromWireRequest(t *testing.T) {
	ctx := t.Context()

	t.Run("nil", func(t *testing.T) {
		if got := protoconv.FromWireRequest(ctx, nil); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("model prefix stripped exactly once", func(t *testing.T) {
		tests := map[string]string{
			"models/gemini-2.0-flash":        "gemini-2.0-flash",
			"gemini-2.0-flash":               "gemini-2.0-flash",
			"models/models/gemini-2.0-flash": "models/gemini-2.0-flash",
			"":                               "",
		}
		for input, want := range tests {
			got := protoconv.FromWireRequest(ctx, &wire.GenerateContentRequest{Model: input})
			if got.Model != want {
				t.Errorf("model %q: expected %q, got %q", input, want, got.Model)
			}
		}
	})

	t.Run("empty request still carries runtime structure", func(t *testing.T) {
		got := protoconv.FromWireRequest(ctx, &wire.GenerateContentRequest{})

		if got.Config == nil {
			t.Error("expected non-nil config")
		}
		if got.LiveConnectConfig == nil {
			t.Error("expected non-nil live connect config")
		}
		if got.ToolMap == nil {
			t.Error("expected non-nil tool map")
		}
		if len(got.ToolMap) != 0 {
			t.Errorf("expected empty tool map, got %d entries", len(got.ToolMap))
		}
	})

	t.Run("absent sections stay absent", func(t *testing.T) {
		got := protoconv.FromWireRequest(ctx, &wire.GenerateContentRequest{
			Model: "models/gemini-2.0-flash",
		})

		if got.Config.SystemInstruction != nil {
			t.Errorf("expected no system instruction, got %+v", got.Config.SystemInstruction)
		}
		if got.Config.Tools != nil {
			t.Errorf("expected no tools, got %v", got.Config.Tools)
		}
		if got.Config.SafetySettings != nil {
			t.Errorf("expected no safety settings, got %v", got.Config.SafetySettings)
		}
	})

	t.Run("full request", func(t *testing.T) {
		req := &wire.GenerateContentRequest{
			Model: "models/gemini-2.0-flash",
			Contents: []*wire.Content{
				{Role: "user", Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "hello"}}}},
			},
			SystemInstruction: &wire.Content{
				Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "be brief"}}},
			},
			Tools: []*wire.Tool{
				{FunctionDeclarations: []*wire.FunctionDeclaration{{Name: "get_weather"}}},
			},
			SafetySettings: []*wire.SafetySetting{
				{Category: wire.HarmCategoryHarassment, Threshold: wire.BlockOnlyHigh},
			},
			GenerationConfig: &wire.GenerationConfig{
				Temperature: types.ToPtr(float32(0.5)),
			},
		}

		got := protoconv.FromWireRequest(ctx, req)

		if got.Model != "gemini-2.0-flash" {
			t.Errorf("unexpected model %q", got.Model)
		}
		if len(got.Contents) != 1 || got.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("unexpected contents %+v", got.Contents)
		}
		if got.Config.SystemInstruction == nil || got.Config.SystemInstruction.Parts[0].Text != "be brief" {
			t.Errorf("unexpected system instruction %+v", got.Config.SystemInstruction)
		}
		if len(got.Config.Tools) != 1 || got.Config.Tools[0].FunctionDeclarations[0].Name != "get_weather" {
			t.Errorf("unexpected tools %+v", got.Config.Tools)
		}
		if len(got.Config.SafetySettings) != 1 {
			t.Errorf("unexpected safety settings %+v", got.Config.SafetySettings)
		}
		if got.Config.Temperature == nil || *got.Config.Temperature != 0.5 {
			t.Errorf("unexpected temperature %v", got.Config.Temperature)
		}
	})
}

func TestLLMRequestToWire(t *testing.T) {
	ctx := t.Context()

	t.Run("nil", func(t *testing.T) {
		if got := protoconv.LLMRequestToWire(ctx, nil); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("model gains exactly one prefix", func(t *testing.T) {
		tests := map[string]string{
			"gemini-2.0-flash":        "models/gemini-2.0-flash",
			"models/gemini-2.0-flash": "models/gemini-2.0-flash",
			"":                        "",
		}
		for input, want := range tests {
			got := protoconv.LLMRequestToWire(ctx, &types.LLMRequest{Model: input})
			if got.Model != want {
				t.Errorf("model %q: expected %q, got %q", input, want, got.Model)
			}
		}
	})

	t.Run("empty config sections are omitted", func(t *testing.T) {
		got := protoconv.LLMRequestToWire(ctx, &types.LLMRequest{
			Model:  "gemini-2.0-flash",
			Config: &genai.GenerateContentConfig{},
		})

		if got.SystemInstruction != nil || got.Tools != nil || got.SafetySettings != nil {
			t.Errorf("expected empty sections to be omitted, got %+v", got)
		}
		if got.GenerationConfig != nil {
			t.Errorf("expected no generation config, got %+v", got.GenerationConfig)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		original := &wire.GenerateContentRequest{
			Model: "models/gemini-2.0-flash",
			Contents: []*wire.Content{
				{Role: "user", Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "hello"}}}},
				{Role: "model", Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "hi"}}}},
			},
			SystemInstruction: &wire.Content{
				Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "be brief"}}},
			},
			Tools: []*wire.Tool{
				{FunctionDeclarations: []*wire.FunctionDeclaration{{
					Name: "get_weather",
					Parameters: &wire.Schema{
						Type: wire.TypeObject,
						Properties: map[string]*wire.Schema{
							"city": {Type: wire.TypeString},
						},
					},
				}}},
			},
			SafetySettings: []*wire.SafetySetting{
				{Category: wire.HarmCategoryHateSpeech, Threshold: wire.BlockMediumAndAbove},
			},
			GenerationConfig: &wire.GenerationConfig{
				Temperature:     types.ToPtr(float32(0.7)),
				MaxOutputTokens: types.ToPtr(int32(256)),
			},
		}

		roundTrip := protoconv.LLMRequestToWire(ctx, protoconv.FromWireRequest(ctx, original))
		if diff := cmp.Diff(original, roundTrip); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}
