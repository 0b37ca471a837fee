// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/protoconv"
	"github.com/kevinaud/adk-sim-plugin/wire"
)

func TestFromWirePart(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if got := protoconv.FromWirePart(nil); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("text", func(t *testing.T) {
		part := &wire.Part{
			Data: &wire.Part_Text{Text: "hello"},
		}

		got := protoconv.FromWirePart(part)
		want := &genai.Part{Text: "hello"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FromWirePart mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("thought text", func(t *testing.T) {
		part := &wire.Part{
			Data:    &wire.Part_Text{Text: "planning"},
			Thought: true,
		}

		got := protoconv.FromWirePart(part)
		if !got.Thought {
			t.Error("expected Thought to be set")
		}
		if got.Text != "planning" {
			t.Errorf("expected text %q, got %q", "planning", got.Text)
		}
	})

	t.Run("function call", func(t *testing.T) {
		part := &wire.Part{
			Data: &wire.Part_FunctionCall{
				FunctionCall: &wire.FunctionCall{
					ID:   "call-1",
					Name: "get_weather",
					Args: map[string]any{"city": "Tokyo"},
				},
			},
		}

		got := protoconv.FromWirePart(part)
		want := &genai.Part{
			FunctionCall: &genai.FunctionCall{
				ID:   "call-1",
				Name: "get_weather",
				Args: map[string]any{"city": "Tokyo"},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FromWirePart mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no payload is an empty part", func(t *testing.T) {
		got := protoconv.FromWirePart(&wire.Part{})
		want := &genai.Part{}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FromWirePart mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestToWirePart(t *testing.T) {
	t.Run("exactly one payload branch", func(t *testing.T) {
		parts := []*genai.Part{
			{Text: "hi"},
			{FunctionCall: &genai.FunctionCall{Name: "f"}},
			{FunctionResponse: &genai.FunctionResponse{Name: "f"}},
			{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1}}},
		}

		for _, part := range parts {
			got := protoconv.ToWirePart(part)
			if got.GetData() == nil {
				t.Errorf("part %+v: expected a payload discriminant", part)
			}
		}
	})

	t.Run("no payload yields nil discriminant", func(t *testing.T) {
		got := protoconv.ToWirePart(&genai.Part{})
		if got.GetData() != nil {
			t.Errorf("expected nil discriminant, got %T", got.GetData())
		}
	})

	t.Run("round trip", func(t *testing.T) {
		original := &wire.Content{
			Role: "user",
			Parts: []*wire.Part{
				{Data: &wire.Part_Text{Text: "describe this"}},
				{Data: &wire.Part_InlineData{InlineData: &wire.Blob{
					MimeType: "image/png",
					Data:     "AAEC",
				}}},
				{Data: &wire.Part_FunctionResponse{FunctionResponse: &wire.FunctionResponse{
					ID:       "call-2",
					Name:     "lookup",
					Response: map[string]any{"ok": true},
				}}},
			},
		}

		roundTrip := protoconv.ToWireContent(protoconv.FromWireContent(original))
		if diff := cmp.Diff(original, roundTrip); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBlobConversion(t *testing.T) {
	t.Run("bytes survive encode and decode", func(t *testing.T) {
		original := &genai.Blob{
			MIMEType: "application/octet-stream",
			Data:     []byte{0x00, 0xff, 0x10, 0x80},
		}

		roundTrip := protoconv.FromWireBlob(protoconv.ToWireBlob(original))
		if diff := cmp.Diff(original, roundTrip); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed base64 carries empty payload", func(t *testing.T) {
		got := protoconv.FromWireBlob(&wire.Blob{
			MimeType: "image/png",
			Data:     "not base64!!!",
		})
		if got == nil {
			t.Fatal("expected non-nil blob")
		}
		if got.MIMEType != "image/png" {
			t.Errorf("expected MIME type to survive, got %q", got.MIMEType)
		}
		if len(got.Data) != 0 {
			t.Errorf("expected empty data, got %d bytes", len(got.Data))
		}
	})
}

func TestFunctionCallConversion(t *testing.T) {
	t.Run("args do not alias the input", func(t *testing.T) {
		args := map[string]any{
			"city":   "Tokyo",
			"nested": map[string]any{"units": "metric"},
		}
		fc := &wire.FunctionCall{ID: "c1", Name: "get_weather", Args: args}

		got := protoconv.FromWireFunctionCall(fc)

		args["city"] = "Osaka"
		args["nested"].(map[string]any)["units"] = "imperial"

		if got.Args["city"] != "Tokyo" {
			t.Errorf("expected copied args, got %v", got.Args["city"])
		}
		if got.Args["nested"].(map[string]any)["units"] != "metric" {
			t.Errorf("expected deep-copied nested args, got %v", got.Args["nested"])
		}
	})

	t.Run("nil args stay nil", func(t *testing.T) {
		got := protoconv.ToWireFunctionCall(&genai.FunctionCall{Name: "f"})
		if got.Args != nil {
			t.Errorf("expected nil args, got %v", got.Args)
		}
	})
}

func TestContentsConversion(t *testing.T) {
	t.Run("nil in nil out", func(t *testing.T) {
		if got := protoconv.FromWireContents(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
		if got := protoconv.ToWireContents(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		contents := []*wire.Content{
			{Role: "user", Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "first"}}}},
			{Role: "model", Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "second"}}}},
			{Role: "user", Parts: []*wire.Part{{Data: &wire.Part_Text{Text: "third"}}}},
		}

		got := protoconv.FromWireContents(contents)
		if len(got) != 3 {
			t.Fatalf("expected 3 contents, got %d", len(got))
		}
		for i, text := range []string{"first", "second", "third"} {
			if got[i].Parts[0].Text != text {
				t.Errorf("content %d: expected %q, got %q", i, text, got[i].Parts[0].Text)
			}
		}
	})
}
