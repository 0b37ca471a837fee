// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"encoding/base64"
	"maps"

	"github.com/tiendc/go-deepcopy"
	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/wire"
)

// blobEncoding is the single codec for blob data in both directions, so that
// encode and decode are exact inverses for arbitrary byte sequences.
var blobEncoding = base64.StdEncoding

// Content Conversions

// FromWireContent converts wire.Content to genai.Content.
// Returns nil if input is nil.
func FromWireContent(content *wire.Content) *genai.Content {
	if content == nil {
		return nil
	}

	result := &genai.Content{
		Role: content.Role,
	}

	if len(content.Parts) > 0 {
		result.Parts = make([]*genai.Part, len(content.Parts))
		for i, part := range content.Parts {
			result.Parts[i] = FromWirePart(part)
		}
	}

	return result
}

// ToWireContent converts genai.Content to wire.Content.
// Returns nil if input is nil.
func ToWireContent(content *genai.Content) *wire.Content {
	if content == nil {
		return nil
	}

	result := &wire.Content{
		Role: content.Role,
	}

	if len(content.Parts) > 0 {
		result.Parts = make([]*wire.Part, len(content.Parts))
		for i, part := range content.Parts {
			result.Parts[i] = ToWirePart(part)
		}
	}

	return result
}

// FromWireContents converts a slice of wire.Content to genai.Content.
// Returns nil if input is nil.
func FromWireContents(contents []*wire.Content) []*genai.Content {
	if contents == nil {
		return nil
	}

	result := make([]*genai.Content, len(contents))
	for i, content := range contents {
		result[i] = FromWireContent(content)
	}
	return result
}

// ToWireContents converts a slice of genai.Content to wire.Content.
// Returns nil if input is nil.
func ToWireContents(contents []*genai.Content) []*wire.Content {
	if contents == nil {
		return nil
	}

	result := make([]*wire.Content, len(contents))
	for i, content := range contents {
		result[i] = ToWireContent(content)
	}
	return result
}

// Part Conversions

// FromWirePart converts wire.Part to genai.Part.
// Returns nil if input is nil.
//
// A part whose payload discriminant is unset or unknown converts to a part
// with no payload fields set; that is the "empty part" contract, not an
// error.
func FromWirePart(part *wire.Part) *genai.Part {
	if part == nil {
		return nil
	}

	result := &genai.Part{}

	switch data := part.Data.(type) {
	case *wire.Part_Text:
		result.Text = data.Text

	case *wire.Part_FunctionCall:
		result.FunctionCall = FromWireFunctionCall(data.FunctionCall)

	case *wire.Part_FunctionResponse:
		result.FunctionResponse = FromWireFunctionResponse(data.FunctionResponse)

	case *wire.Part_InlineData:
		result.InlineData = FromWireBlob(data.InlineData)
	}

	if part.Thought {
		result.Thought = true
	}

	return result
}

// ToWirePart converts genai.Part to wire.Part.
// Returns nil if input is nil.
//
// At most one payload branch is taken, so the wire invariant of a single
// discriminant holds on output. A part with no payload set converts to a
// part with a nil discriminant.
func ToWirePart(part *genai.Part) *wire.Part {
	if part == nil {
		return nil
	}

	result := &wire.Part{}

	switch {
	case part.Text != "":
		result.Data = &wire.Part_Text{
			Text: part.Text,
		}

	case part.FunctionCall != nil:
		result.Data = &wire.Part_FunctionCall{
			FunctionCall: ToWireFunctionCall(part.FunctionCall),
		}

	case part.FunctionResponse != nil:
		result.Data = &wire.Part_FunctionResponse{
			FunctionResponse: ToWireFunctionResponse(part.FunctionResponse),
		}

	case part.InlineData != nil:
		result.Data = &wire.Part_InlineData{
			InlineData: ToWireBlob(part.InlineData),
		}
	}

	if part.Thought {
		result.Thought = true
	}

	return result
}

// Blob Conversions

// FromWireBlob converts wire.Blob to genai.Blob, decoding the base64 payload
// to raw bytes. Returns nil if input is nil.
func FromWireBlob(blob *wire.Blob) *genai.Blob {
	if blob == nil {
		return nil
	}

	data, err := blobEncoding.DecodeString(blob.Data)
	if err != nil {
		// Malformed base64 has no byte representation; carry an empty
		// payload rather than failing the conversion.
		data = nil
	}

	return &genai.Blob{
		MIMEType: blob.MimeType,
		Data:     data,
	}
}

// ToWireBlob converts genai.Blob to wire.Blob, encoding the raw bytes as
// base64 text. Returns nil if input is nil.
func ToWireBlob(blob *genai.Blob) *wire.Blob {
	if blob == nil {
		return nil
	}

	return &wire.Blob{
		MimeType: blob.MIMEType,
		Data:     blobEncoding.EncodeToString(blob.Data),
	}
}

// FunctionCall Conversions

// FromWireFunctionCall converts wire.FunctionCall to genai.FunctionCall.
// Returns nil if input is nil.
func FromWireFunctionCall(fc *wire.FunctionCall) *genai.FunctionCall {
	if fc == nil {
		return nil
	}

	return &genai.FunctionCall{
		ID:   fc.ID,
		Name: fc.Name,
		Args: copyValueMap(fc.Args),
	}
}

// ToWireFunctionCall converts genai.FunctionCall to wire.FunctionCall.
// Returns nil if input is nil.
func ToWireFunctionCall(fc *genai.FunctionCall) *wire.FunctionCall {
	if fc == nil {
		return nil
	}

	return &wire.FunctionCall{
		ID:   fc.ID,
		Name: fc.Name,
		Args: copyValueMap(fc.Args),
	}
}

// FunctionResponse Conversions

// FromWireFunctionResponse converts wire.FunctionResponse to genai.FunctionResponse.
// Returns nil if input is nil.
func FromWireFunctionResponse(fr *wire.FunctionResponse) *genai.FunctionResponse {
	if fr == nil {
		return nil
	}

	return &genai.FunctionResponse{
		ID:       fr.ID,
		Name:     fr.Name,
		Response: copyValueMap(fr.Response),
	}
}

// ToWireFunctionResponse converts genai.FunctionResponse to wire.FunctionResponse.
// Returns nil if input is nil.
func ToWireFunctionResponse(fr *genai.FunctionResponse) *wire.FunctionResponse {
	if fr == nil {
		return nil
	}

	return &wire.FunctionResponse{
		ID:       fr.ID,
		Name:     fr.Name,
		Response: copyValueMap(fr.Response),
	}
}

// copyValueMap deep-copies a JSON-shaped value map so the output side never
// aliases the input side. Returns nil if input is nil.
func copyValueMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	if err := deepcopy.Copy(&dst, src); err != nil {
		// JSON-shaped values always deep-copy; a shallow clone still keeps
		// the top level detached.
		return maps.Clone(src)
	}
	return dst
}
