// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "strconv"

// FinishReason is the numeric enum explaining why a candidate stopped.
type FinishReason int32

const (
	FinishReasonUnspecified FinishReason = 0
	FinishReasonStop        FinishReason = 1
	FinishReasonMaxTokens   FinishReason = 2
	FinishReasonSafety      FinishReason = 3
	FinishReasonRecitation  FinishReason = 4
	FinishReasonLanguage    FinishReason = 5
	FinishReasonOther       FinishReason = 6
)

var finishReasonNames = map[FinishReason]string{
	FinishReasonUnspecified: "FINISH_REASON_UNSPECIFIED",
	FinishReasonStop:        "STOP",
	FinishReasonMaxTokens:   "MAX_TOKENS",
	FinishReasonSafety:      "SAFETY",
	FinishReasonRecitation:  "RECITATION",
	FinishReasonLanguage:    "LANGUAGE",
	FinishReasonOther:       "OTHER",
}

// String returns the proto enum name, or the numeric value for codes outside
// the known range.
func (r FinishReason) String() string {
	if name, ok := finishReasonNames[r]; ok {
		return name
	}
	return strconv.FormatInt(int64(r), 10)
}

// Candidate is one generated response alternative.
type Candidate struct {
	Content *Content `json:"content,omitempty"`

	FinishReason FinishReason `json:"finishReason,omitempty"`

	Index int32 `json:"index,omitempty"`
}

// UsageMetadata is the token accounting of a response.
type UsageMetadata struct {
	PromptTokenCount int32 `json:"promptTokenCount,omitempty"`

	CandidatesTokenCount int32 `json:"candidatesTokenCount,omitempty"`

	TotalTokenCount int32 `json:"totalTokenCount,omitempty"`

	CachedContentTokenCount int32 `json:"cachedContentTokenCount,omitempty"`
}

// GenerateContentResponse is a complete outbound model response.
type GenerateContentResponse struct {
	Candidates []*Candidate `json:"candidates,omitempty"`

	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`

	ModelVersion string `json:"modelVersion,omitempty"`
}
