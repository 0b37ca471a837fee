// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// GenerationConfig is the flat bag of sampling and decoding parameters.
//
// Scalar fields are optional so an explicit zero, e.g. temperature 0, stays
// distinguishable from a parameter that was never set.
type GenerationConfig struct {
	StopSequences []string `json:"stopSequences,omitempty"`

	ResponseMimeType string `json:"responseMimeType,omitempty"`

	// ResponseSchema constrains structured output; only meaningful together
	// with an application/json response MIME type.
	ResponseSchema *Schema `json:"responseSchema,omitempty"`

	CandidateCount *int32 `json:"candidateCount,omitempty"`

	MaxOutputTokens *int32 `json:"maxOutputTokens,omitempty"`

	Temperature *float32 `json:"temperature,omitempty"`

	TopP *float32 `json:"topP,omitempty"`

	TopK *int32 `json:"topK,omitempty"`

	PresencePenalty *float32 `json:"presencePenalty,omitempty"`

	FrequencyPenalty *float32 `json:"frequencyPenalty,omitempty"`

	Seed *int32 `json:"seed,omitempty"`
}
