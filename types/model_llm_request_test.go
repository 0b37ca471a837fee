// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/types"
)

// fakeTool is a minimal Tool for registration tests.
type fakeTool struct {
	name string
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return "a fake tool" }

func (t *fakeTool) GetDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.name,
		Description: t.Description(),
	}
}

func (t *fakeTool) Run(ctx context.Context, args map[string]any) (any, error) {
	return map[string]any{"ok": true}, nil
}

func TestNewLLMRequest(t *testing.T) {
	req := types.NewLLMRequest(nil)

	if req.ToolMap == nil {
		t.Error("expected non-nil tool map")
	}
	if req.LiveConnectConfig == nil {
		t.Error("expected non-nil live connect config")
	}
}

func TestAppendInstructions(t *testing.T) {
	t.Run("creates the system instruction", func(t *testing.T) {
		req := types.NewLLMRequest(nil)
		req.AppendInstructions("be brief", "answer in English")

		si := req.Config.SystemInstruction
		if si == nil {
			t.Fatal("expected a system instruction")
		}
		if len(si.Parts) != 1 {
			t.Fatalf("expected 1 part, got %d", len(si.Parts))
		}
		if !strings.Contains(si.Parts[0].Text, "be brief") || !strings.Contains(si.Parts[0].Text, "answer in English") {
			t.Errorf("unexpected instruction text %q", si.Parts[0].Text)
		}
	})

	t.Run("appends to an existing instruction", func(t *testing.T) {
		req := types.NewLLMRequest(nil)
		req.AppendInstructions("first")
		req.AppendInstructions("second")

		si := req.Config.SystemInstruction
		if len(si.Parts) != 2 {
			t.Fatalf("expected 2 parts, got %d", len(si.Parts))
		}
	})
}

func TestAppendTools(t *testing.T) {
	req := types.NewLLMRequest(nil)
	req.AppendTools(&fakeTool{name: "get_weather"}, &fakeTool{name: "get_time"})

	if len(req.Config.Tools) != 1 {
		t.Fatalf("expected 1 tool group, got %d", len(req.Config.Tools))
	}
	if len(req.Config.Tools[0].FunctionDeclarations) != 2 {
		t.Errorf("expected 2 declarations, got %d", len(req.Config.Tools[0].FunctionDeclarations))
	}
	if _, ok := req.ToolMap["get_weather"]; !ok {
		t.Error("expected get_weather in the tool map")
	}
	if _, ok := req.ToolMap["get_time"]; !ok {
		t.Error("expected get_time in the tool map")
	}
}

func TestSetOutputSchema(t *testing.T) {
	req := types.NewLLMRequest(nil)
	req.SetOutputSchema(&genai.Schema{Type: genai.TypeObject})

	if req.Config.ResponseSchema == nil {
		t.Error("expected a response schema")
	}
	if req.Config.ResponseMIMEType != "application/json" {
		t.Errorf("expected application/json, got %q", req.Config.ResponseMIMEType)
	}
}

func TestLLMRequestToJSON(t *testing.T) {
	req := types.NewLLMRequest([]*genai.Content{
		genai.NewContentFromText("hello", genai.RoleUser),
	})
	req.Model = "gemini-2.0-flash"

	out, err := req.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "gemini-2.0-flash") {
		t.Errorf("expected the model name in %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected the content text in %q", out)
	}
}

func TestLLMResponseText(t *testing.T) {
	t.Run("nil content", func(t *testing.T) {
		resp := &types.LLMResponse{}
		if got := resp.Text(); got != "" {
			t.Errorf("expected empty text, got %q", got)
		}
	})

	t.Run("concatenates text parts", func(t *testing.T) {
		resp := &types.LLMResponse{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "Hello, "},
					{Text: "world"},
				},
			},
		}
		if got := resp.Text(); got != "Hello, world" {
			t.Errorf("expected %q, got %q", "Hello, world", got)
		}
	})
}
