// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/types"
	"github.com/kevinaud/adk-sim-plugin/wire"
)

// modelPrefix is the resource-name prefix model names carry on the wire.
const modelPrefix = "models/"

// Request Conversions

// FromWireRequest assembles an inbound wire request into an SDK-shaped
// [*types.LLMRequest]. Returns nil if input is nil.
//
// Exactly one leading "models/" prefix is stripped from the model name, so
// a doubly-prefixed name keeps one prefix layer. Config sections are
// populated only when the corresponding wire field is present; empty
// collections never become non-nil SDK fields. LiveConnectConfig and
// ToolMap are always emitted empty: they stand for host-runtime objects
// that cannot be reconstructed from serialized data.
func FromWireRequest(ctx context.Context, req *wire.GenerateContentRequest) *types.LLMRequest {
	if req == nil {
		return nil
	}

	result := &types.LLMRequest{
		Model:             strings.TrimPrefix(req.Model, modelPrefix),
		Contents:          FromWireContents(req.Contents),
		Config:            &genai.GenerateContentConfig{},
		LiveConnectConfig: &genai.LiveConnectConfig{},
		ToolMap:           make(map[string]types.Tool),
	}

	if req.SystemInstruction != nil {
		result.Config.SystemInstruction = FromWireContent(req.SystemInstruction)
	}
	if len(req.Tools) > 0 {
		result.Config.Tools = FromWireTools(ctx, req.Tools)
	}
	if len(req.SafetySettings) > 0 {
		result.Config.SafetySettings = FromWireSafetySettings(ctx, req.SafetySettings)
	}

	ApplyWireGenerationConfig(ctx, req.GenerationConfig, result.Config)

	return result
}

// LLMRequestToWire disassembles an SDK-shaped request into an outbound wire
// request. Returns nil if input is nil.
//
// The model name gains exactly one "models/" prefix when it lacks one; an
// empty name stays empty. ToolMap and LiveConnectConfig are host-runtime
// state and do not cross the wire.
func LLMRequestToWire(ctx context.Context, req *types.LLMRequest) *wire.GenerateContentRequest {
	if req == nil {
		return nil
	}

	result := &wire.GenerateContentRequest{
		Model:    wireModelName(req.Model),
		Contents: ToWireContents(req.Contents),
	}

	if cfg := req.Config; cfg != nil {
		if cfg.SystemInstruction != nil {
			result.SystemInstruction = ToWireContent(cfg.SystemInstruction)
		}
		if len(cfg.Tools) > 0 {
			result.Tools = ToWireTools(ctx, cfg.Tools)
		}
		if len(cfg.SafetySettings) > 0 {
			result.SafetySettings = ToWireSafetySettings(ctx, cfg.SafetySettings)
		}
		result.GenerationConfig = ToWireGenerationConfig(ctx, cfg)
	}

	return result
}

// wireModelName qualifies a bare model name with the resource prefix.
// Already-qualified and empty names pass through unchanged.
func wireModelName(model string) string {
	if model == "" || strings.HasPrefix(model, modelPrefix) {
		return model
	}
	return modelPrefix + model
}
