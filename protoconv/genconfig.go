// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"context"
	"slices"

	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/types"
	"github.com/kevinaud/adk-sim-plugin/wire"
)

// GenerationConfig Conversions

// ApplyWireGenerationConfig merges the generation parameters of gc into cfg.
//
// The SDK bundles generation parameters with system instruction, tools and
// safety settings in one config object, so this merges into the caller's
// config rather than returning a standalone one. Every copy is conditional
// on the field being defined on the source: a config carrying only a
// temperature produces a fragment carrying only a temperature, and absent
// fields are never defaulted to zero values. An explicit zero, e.g.
// temperature 0 or seed 0, survives as zero.
func ApplyWireGenerationConfig(ctx context.Context, gc *wire.GenerationConfig, cfg *genai.GenerateContentConfig) {
	if gc == nil || cfg == nil {
		return
	}

	if len(gc.StopSequences) > 0 {
		cfg.StopSequences = slices.Clone(gc.StopSequences)
	}
	if gc.ResponseMimeType != "" {
		cfg.ResponseMIMEType = gc.ResponseMimeType
	}
	if gc.ResponseSchema != nil {
		cfg.ResponseSchema = FromWireSchema(ctx, gc.ResponseSchema)
	}

	if gc.CandidateCount != nil {
		cfg.CandidateCount = *gc.CandidateCount
	}
	if gc.MaxOutputTokens != nil {
		cfg.MaxOutputTokens = *gc.MaxOutputTokens
	}

	if gc.Temperature != nil {
		cfg.Temperature = types.ToPtr(*gc.Temperature)
	}
	if gc.TopP != nil {
		cfg.TopP = types.ToPtr(*gc.TopP)
	}
	if gc.TopK != nil {
		// The wire carries top-k as an integer, the SDK as a float.
		cfg.TopK = types.ToPtr(float32(*gc.TopK))
	}
	if gc.PresencePenalty != nil {
		cfg.PresencePenalty = types.ToPtr(*gc.PresencePenalty)
	}
	if gc.FrequencyPenalty != nil {
		cfg.FrequencyPenalty = types.ToPtr(*gc.FrequencyPenalty)
	}
	if gc.Seed != nil {
		cfg.Seed = types.ToPtr(*gc.Seed)
	}
}

// ToWireGenerationConfig extracts the generation parameters of cfg as a wire
// GenerationConfig. Returns nil if cfg is nil or carries no generation
// parameters, so an empty config never invents a wire message.
func ToWireGenerationConfig(ctx context.Context, cfg *genai.GenerateContentConfig) *wire.GenerationConfig {
	if cfg == nil {
		return nil
	}

	result := &wire.GenerationConfig{}
	set := false

	if len(cfg.StopSequences) > 0 {
		result.StopSequences = slices.Clone(cfg.StopSequences)
		set = true
	}
	if cfg.ResponseMIMEType != "" {
		result.ResponseMimeType = cfg.ResponseMIMEType
		set = true
	}
	if cfg.ResponseSchema != nil {
		result.ResponseSchema = ToWireSchema(ctx, cfg.ResponseSchema)
		set = true
	}

	if cfg.CandidateCount != 0 {
		result.CandidateCount = types.ToPtr(cfg.CandidateCount)
		set = true
	}
	if cfg.MaxOutputTokens != 0 {
		result.MaxOutputTokens = types.ToPtr(cfg.MaxOutputTokens)
		set = true
	}

	if cfg.Temperature != nil {
		result.Temperature = types.ToPtr(*cfg.Temperature)
		set = true
	}
	if cfg.TopP != nil {
		result.TopP = types.ToPtr(*cfg.TopP)
		set = true
	}
	if cfg.TopK != nil {
		result.TopK = types.ToPtr(int32(*cfg.TopK))
		set = true
	}
	if cfg.PresencePenalty != nil {
		result.PresencePenalty = types.ToPtr(*cfg.PresencePenalty)
		set = true
	}
	if cfg.FrequencyPenalty != nil {
		result.FrequencyPenalty = types.ToPtr(*cfg.FrequencyPenalty)
		set = true
	}
	if cfg.Seed != nil {
		result.Seed = types.ToPtr(*cfg.Seed)
		set = true
	}

	if !set {
		return nil
	}
	return result
}
