// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"context"

	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/pkg/logging"
	"github.com/kevinaud/adk-sim-plugin/wire"
)

// HarmCategory Conversions
//
// Both directions are explicit, exhaustive lookup tables. Categories that
// exist on one side only map to UNSPECIFIED in the direction where no
// counterpart exists; values absent from a table are a policy event that
// logs a warning and resolves to UNSPECIFIED, never a crash.

// fromWireHarmCategory covers every known wire code. Codes 1-6 are the
// legacy PaLM-era categories the SDK never had.
var fromWireHarmCategory = map[wire.HarmCategory]genai.HarmCategory{
	wire.HarmCategoryUnspecified:      genai.HarmCategoryUnspecified,
	wire.HarmCategoryDerogatory:       genai.HarmCategoryUnspecified,
	wire.HarmCategoryToxicity:         genai.HarmCategoryUnspecified,
	wire.HarmCategoryViolence:         genai.HarmCategoryUnspecified,
	wire.HarmCategorySexual:           genai.HarmCategoryUnspecified,
	wire.HarmCategoryMedical:          genai.HarmCategoryUnspecified,
	wire.HarmCategoryDangerous:        genai.HarmCategoryUnspecified,
	wire.HarmCategoryHarassment:       genai.HarmCategoryHarassment,
	wire.HarmCategoryHateSpeech:       genai.HarmCategoryHateSpeech,
	wire.HarmCategorySexuallyExplicit: genai.HarmCategorySexuallyExplicit,
	wire.HarmCategoryDangerousContent: genai.HarmCategoryDangerousContent,
	wire.HarmCategoryCivicIntegrity:   genai.HarmCategoryCivicIntegrity,
}

// toWireHarmCategory covers every known SDK value. The image-specific
// categories are SDK-only; the wire protocol has no counterpart for them.
var toWireHarmCategory = map[genai.HarmCategory]wire.HarmCategory{
	genai.HarmCategoryUnspecified:      wire.HarmCategoryUnspecified,
	genai.HarmCategoryHarassment:       wire.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech:       wire.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit: wire.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent: wire.HarmCategoryDangerousContent,
	genai.HarmCategoryCivicIntegrity:   wire.HarmCategoryCivicIntegrity,

	genai.HarmCategory("HARM_CATEGORY_IMAGE_HATE"):              wire.HarmCategoryUnspecified,
	genai.HarmCategory("HARM_CATEGORY_IMAGE_HARASSMENT"):        wire.HarmCategoryUnspecified,
	genai.HarmCategory("HARM_CATEGORY_IMAGE_SEXUALLY_EXPLICIT"): wire.HarmCategoryUnspecified,
	genai.HarmCategory("HARM_CATEGORY_IMAGE_DANGEROUS_CONTENT"): wire.HarmCategoryUnspecified,
}

// FromWireHarmCategory converts wire.HarmCategory to genai.HarmCategory.
func FromWireHarmCategory(ctx context.Context, category wire.HarmCategory) genai.HarmCategory {
	if result, ok := fromWireHarmCategory[category]; ok {
		return result
	}
	logging.FromContext(ctx).Warn("Unknown harm category", "category", category)
	return genai.HarmCategoryUnspecified
}

// ToWireHarmCategory converts genai.HarmCategory to wire.HarmCategory.
func ToWireHarmCategory(ctx context.Context, category genai.HarmCategory) wire.HarmCategory {
	if result, ok := toWireHarmCategory[category]; ok {
		return result
	}
	logging.FromContext(ctx).Warn("Unknown harm category", "category", string(category))
	return wire.HarmCategoryUnspecified
}

// HarmBlockThreshold Conversions

var fromWireHarmBlockThreshold = map[wire.HarmBlockThreshold]genai.HarmBlockThreshold{
	wire.HarmBlockThresholdUnspecified: genai.HarmBlockThresholdUnspecified,
	wire.BlockLowAndAbove:              genai.HarmBlockThresholdBlockLowAndAbove,
	wire.BlockMediumAndAbove:           genai.HarmBlockThresholdBlockMediumAndAbove,
	wire.BlockOnlyHigh:                 genai.HarmBlockThresholdBlockOnlyHigh,
	wire.BlockNone:                     genai.HarmBlockThresholdBlockNone,
	wire.BlockOff:                      genai.HarmBlockThresholdOff,
}

var toWireHarmBlockThreshold = map[genai.HarmBlockThreshold]wire.HarmBlockThreshold{
	genai.HarmBlockThresholdUnspecified:         wire.HarmBlockThresholdUnspecified,
	genai.HarmBlockThresholdBlockLowAndAbove:    wire.BlockLowAndAbove,
	genai.HarmBlockThresholdBlockMediumAndAbove: wire.BlockMediumAndAbove,
	genai.HarmBlockThresholdBlockOnlyHigh:       wire.BlockOnlyHigh,
	genai.HarmBlockThresholdBlockNone:           wire.BlockNone,
	genai.HarmBlockThresholdOff:                 wire.BlockOff,
}

// FromWireHarmBlockThreshold converts wire.HarmBlockThreshold to genai.HarmBlockThreshold.
func FromWireHarmBlockThreshold(ctx context.Context, threshold wire.HarmBlockThreshold) genai.HarmBlockThreshold {
	if result, ok := fromWireHarmBlockThreshold[threshold]; ok {
		return result
	}
	logging.FromContext(ctx).Warn("Unknown harm block threshold", "threshold", threshold)
	return genai.HarmBlockThresholdUnspecified
}

// ToWireHarmBlockThreshold converts genai.HarmBlockThreshold to wire.HarmBlockThreshold.
func ToWireHarmBlockThreshold(ctx context.Context, threshold genai.HarmBlockThreshold) wire.HarmBlockThreshold {
	if result, ok := toWireHarmBlockThreshold[threshold]; ok {
		return result
	}
	logging.FromContext(ctx).Warn("Unknown harm block threshold", "threshold", string(threshold))
	return wire.HarmBlockThresholdUnspecified
}

// SafetySetting Conversions

// FromWireSafetySetting converts wire.SafetySetting to genai.SafetySetting.
// Returns nil if input is nil.
func FromWireSafetySetting(ctx context.Context, setting *wire.SafetySetting) *genai.SafetySetting {
	if setting == nil {
		return nil
	}

	return &genai.SafetySetting{
		Category:  FromWireHarmCategory(ctx, setting.Category),
		Threshold: FromWireHarmBlockThreshold(ctx, setting.Threshold),
	}
}

// ToWireSafetySetting converts genai.SafetySetting to wire.SafetySetting.
// Returns nil if input is nil.
func ToWireSafetySetting(ctx context.Context, setting *genai.SafetySetting) *wire.SafetySetting {
	if setting == nil {
		return nil
	}

	return &wire.SafetySetting{
		Category:  ToWireHarmCategory(ctx, setting.Category),
		Threshold: ToWireHarmBlockThreshold(ctx, setting.Threshold),
	}
}

// FromWireSafetySettings converts a slice of wire.SafetySetting to genai.SafetySetting.
// Returns nil if input is nil.
func FromWireSafetySettings(ctx context.Context, settings []*wire.SafetySetting) []*genai.SafetySetting {
	if settings == nil {
		return nil
	}

	result := make([]*genai.SafetySetting, len(settings))
	for i, setting := range settings {
		result[i] = FromWireSafetySetting(ctx, setting)
	}
	return result
}

// ToWireSafetySettings converts a slice of genai.SafetySetting to wire.SafetySetting.
// Returns nil if input is nil.
func ToWireSafetySettings(ctx context.Context, settings []*genai.SafetySetting) []*wire.SafetySetting {
	if settings == nil {
		return nil
	}

	result := make([]*wire.SafetySetting, len(settings))
	for i, setting := range settings {
		result[i] = ToWireSafetySetting(ctx, setting)
	}
	return result
}
