// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "strconv"

// HarmCategory is the numeric harm-category enum. Codes 1 through 6 are
// legacy PaLM-era categories with no SDK counterpart.
type HarmCategory int32

const (
	HarmCategoryUnspecified      HarmCategory = 0
	HarmCategoryDerogatory       HarmCategory = 1
	HarmCategoryToxicity         HarmCategory = 2
	HarmCategoryViolence         HarmCategory = 3
	HarmCategorySexual           HarmCategory = 4
	HarmCategoryMedical          HarmCategory = 5
	HarmCategoryDangerous        HarmCategory = 6
	HarmCategoryHarassment       HarmCategory = 7
	HarmCategoryHateSpeech       HarmCategory = 8
	HarmCategorySexuallyExplicit HarmCategory = 9
	HarmCategoryDangerousContent HarmCategory = 10
	HarmCategoryCivicIntegrity   HarmCategory = 11
)

var harmCategoryNames = map[HarmCategory]string{
	HarmCategoryUnspecified:      "HARM_CATEGORY_UNSPECIFIED",
	HarmCategoryDerogatory:       "HARM_CATEGORY_DEROGATORY",
	HarmCategoryToxicity:         "HARM_CATEGORY_TOXICITY",
	HarmCategoryViolence:         "HARM_CATEGORY_VIOLENCE",
	HarmCategorySexual:           "HARM_CATEGORY_SEXUAL",
	HarmCategoryMedical:          "HARM_CATEGORY_MEDICAL",
	HarmCategoryDangerous:        "HARM_CATEGORY_DANGEROUS",
	HarmCategoryHarassment:       "HARM_CATEGORY_HARASSMENT",
	HarmCategoryHateSpeech:       "HARM_CATEGORY_HATE_SPEECH",
	HarmCategorySexuallyExplicit: "HARM_CATEGORY_SEXUALLY_EXPLICIT",
	HarmCategoryDangerousContent: "HARM_CATEGORY_DANGEROUS_CONTENT",
	HarmCategoryCivicIntegrity:   "HARM_CATEGORY_CIVIC_INTEGRITY",
}

// String returns the proto enum name, or the numeric value for codes outside
// the known range.
func (c HarmCategory) String() string {
	if name, ok := harmCategoryNames[c]; ok {
		return name
	}
	return strconv.FormatInt(int64(c), 10)
}

// HarmBlockThreshold is the numeric blocking-threshold enum.
type HarmBlockThreshold int32

const (
	HarmBlockThresholdUnspecified HarmBlockThreshold = 0
	BlockLowAndAbove              HarmBlockThreshold = 1
	BlockMediumAndAbove           HarmBlockThreshold = 2
	BlockOnlyHigh                 HarmBlockThreshold = 3
	BlockNone                     HarmBlockThreshold = 4
	BlockOff                      HarmBlockThreshold = 5
)

var harmBlockThresholdNames = map[HarmBlockThreshold]string{
	HarmBlockThresholdUnspecified: "HARM_BLOCK_THRESHOLD_UNSPECIFIED",
	BlockLowAndAbove:              "BLOCK_LOW_AND_ABOVE",
	BlockMediumAndAbove:           "BLOCK_MEDIUM_AND_ABOVE",
	BlockOnlyHigh:                 "BLOCK_ONLY_HIGH",
	BlockNone:                     "BLOCK_NONE",
	BlockOff:                      "OFF",
}

// String returns the proto enum name, or the numeric value for codes outside
// the known range.
func (t HarmBlockThreshold) String() string {
	if name, ok := harmBlockThresholdNames[t]; ok {
		return name
	}
	return strconv.FormatInt(int64(t), 10)
}

// SafetySetting pairs a harm category with its blocking threshold.
type SafetySetting struct {
	Category HarmCategory `json:"category,omitempty"`

	Threshold HarmBlockThreshold `json:"threshold,omitempty"`
}
