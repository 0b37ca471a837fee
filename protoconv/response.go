// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/pkg/logging"
	"github.com/kevinaud/adk-sim-plugin/types"
	"github.com/kevinaud/adk-sim-plugin/wire"
)

// finishReasonsByName maps SDK finish-reason names to their wire codes.
// Reasons the wire enum has no code for collapse onto OTHER.
var finishReasonsByName = map[string]wire.FinishReason{
	"FINISH_REASON_UNSPECIFIED": wire.FinishReasonUnspecified,
	"STOP":                      wire.FinishReasonStop,
	"MAX_TOKENS":                wire.FinishReasonMaxTokens,
	"SAFETY":                    wire.FinishReasonSafety,
	"RECITATION":                wire.FinishReasonRecitation,
	"LANGUAGE":                  wire.FinishReasonLanguage,
	"OTHER":                     wire.FinishReasonOther,
	"BLOCKLIST":                 wire.FinishReasonOther,
	"PROHIBITED_CONTENT":        wire.FinishReasonOther,
	"SPII":                      wire.FinishReasonOther,
	"MALFORMED_FUNCTION_CALL":   wire.FinishReasonOther,
	"IMAGE_SAFETY":              wire.FinishReasonOther,
	"UNEXPECTED_TOOL_CALL":      wire.FinishReasonOther,
}

var fromWireFinishReasons = map[wire.FinishReason]genai.FinishReason{
	wire.FinishReasonUnspecified: "",
	wire.FinishReasonStop:        genai.FinishReasonStop,
	wire.FinishReasonMaxTokens:   genai.FinishReasonMaxTokens,
	wire.FinishReasonSafety:      genai.FinishReasonSafety,
	wire.FinishReasonRecitation:  genai.FinishReasonRecitation,
	wire.FinishReasonLanguage:    genai.FinishReasonLanguage,
	wire.FinishReasonOther:       genai.FinishReasonOther,
}

// Response Conversions

// LLMResponseToWire disassembles an internal response into an outbound wire
// response with a single candidate. Returns nil if input is nil.
//
// Conditions that do not survive serialization are reported as warnings
// rather than errors so a degraded response still reaches the client: an
// unrepresentable finish reason is downgraded to UNSPECIFIED, and error
// codes carried on the response are noted and dropped. Usage metadata is
// always emitted, zeroed when the response carries none.
func LLMResponseToWire(resp *types.LLMResponse) (*wire.GenerateContentResponse, []string) {
	if resp == nil {
		return nil, nil
	}

	var warnings []string

	candidate := &wire.Candidate{
		Content: ToWireContent(resp.Content),
	}

	if resp.FinishReason != "" {
		reason, ok := finishReasonsByName[strings.ToUpper(string(resp.FinishReason))]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Unknown finish reason %q, sending FINISH_REASON_UNSPECIFIED", resp.FinishReason))
			reason = wire.FinishReasonUnspecified
		}
		candidate.FinishReason = reason
	}

	if resp.ErrorCode != "" || resp.ErrorMessage != "" {
		warnings = append(warnings, fmt.Sprintf("Response carries error code %q (%s); the wire format has no error field, dropping it", resp.ErrorCode, resp.ErrorMessage))
	}

	result := &wire.GenerateContentResponse{
		Candidates:    []*wire.Candidate{candidate},
		UsageMetadata: ToWireUsageMetadata(resp.UsageMetadata),
		ModelVersion:  resp.ModelVersion,
	}
	if result.UsageMetadata == nil {
		result.UsageMetadata = &wire.UsageMetadata{}
	}

	return result, warnings
}

// FromWireResponse assembles an inbound wire response into an internal
// response, reading only the first candidate. Returns nil if input is nil.
//
// A response with no candidates is still a valid response; it simply
// carries no content.
func FromWireResponse(ctx context.Context, resp *wire.GenerateContentResponse) *types.LLMResponse {
	if resp == nil {
		return nil
	}

	result := &types.LLMResponse{
		UsageMetadata: FromWireUsageMetadata(resp.UsageMetadata),
		ModelVersion:  resp.ModelVersion,
	}

	if len(resp.Candidates) > 0 {
		candidate := resp.Candidates[0]
		result.Content = FromWireContent(candidate.Content)
		result.FinishReason = fromWireFinishReason(ctx, candidate.FinishReason)
	}

	return result
}

func fromWireFinishReason(ctx context.Context, reason wire.FinishReason) genai.FinishReason {
	if mapped, ok := fromWireFinishReasons[reason]; ok {
		return mapped
	}
	logging.FromContext(ctx).Warn("Unknown finish reason", "reason", reason)
	return ""
}

// FromWireUsageMetadata converts wire token accounting to the SDK type.
// Returns nil if input is nil.
func FromWireUsageMetadata(meta *wire.UsageMetadata) *genai.GenerateContentResponseUsageMetadata {
	if meta == nil {
		return nil
	}

	return &genai.GenerateContentResponseUsageMetadata{
		PromptTokenCount:        meta.PromptTokenCount,
		CandidatesTokenCount:    meta.CandidatesTokenCount,
		TotalTokenCount:         meta.TotalTokenCount,
		CachedContentTokenCount: meta.CachedContentTokenCount,
	}
}

// ToWireUsageMetadata converts SDK token accounting to the wire type.
// Returns nil if input is nil.
func ToWireUsageMetadata(meta *genai.GenerateContentResponseUsageMetadata) *wire.UsageMetadata {
	if meta == nil {
		return nil
	}

	return &wire.UsageMetadata{
		PromptTokenCount:        meta.PromptTokenCount,
		CandidatesTokenCount:    meta.CandidatesTokenCount,
		TotalTokenCount:         meta.TotalTokenCount,
		CachedContentTokenCount: meta.CachedContentTokenCount,
	}
}
