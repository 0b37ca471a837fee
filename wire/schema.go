// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "strconv"

// Type is the numeric primitive-type enum of a Schema.
type Type int32

const (
	TypeUnspecified Type = 0
	TypeString      Type = 1
	TypeNumber      Type = 2
	TypeInteger     Type = 3
	TypeBoolean     Type = 4
	TypeArray       Type = 5
	TypeObject      Type = 6
	TypeNull        Type = 7
)

var typeNames = map[Type]string{
	TypeUnspecified: "TYPE_UNSPECIFIED",
	TypeString:      "STRING",
	TypeNumber:      "NUMBER",
	TypeInteger:     "INTEGER",
	TypeBoolean:     "BOOLEAN",
	TypeArray:       "ARRAY",
	TypeObject:      "OBJECT",
	TypeNull:        "NULL",
}

// String returns the proto enum name, or the numeric value for codes outside
// the known range.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return strconv.FormatInt(int64(t), 10)
}

// Schema is a recursive type descriptor for function parameters, responses
// and structured output.
//
// Count-like constraints are 64-bit integers where zero means unset; they
// serialize as decimal strings per proto3 JSON. Minimum and Maximum are
// optional so an explicit zero bound stays distinguishable from no bound.
type Schema struct {
	Type Type `json:"type,omitempty"`

	Format string `json:"format,omitempty"`

	Title string `json:"title,omitempty"`

	Description string `json:"description,omitempty"`

	// Nullable reports whether null is permitted in addition to Type.
	Nullable bool `json:"nullable,omitempty"`

	Enum []string `json:"enum,omitempty"`

	// Items describes array elements when Type is ARRAY.
	Items *Schema `json:"items,omitempty"`

	// AnyOf lists union alternatives; when set, Type is typically unset.
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Properties describes object fields when Type is OBJECT.
	Properties map[string]*Schema `json:"properties,omitempty"`

	Required []string `json:"required,omitempty"`

	// PropertyOrdering fixes the display order of Properties.
	PropertyOrdering []string `json:"propertyOrdering,omitempty"`

	MinItems int64 `json:"minItems,string,omitempty"`
	MaxItems int64 `json:"maxItems,string,omitempty"`

	MinLength int64 `json:"minLength,string,omitempty"`
	MaxLength int64 `json:"maxLength,string,omitempty"`

	MinProperties int64 `json:"minProperties,string,omitempty"`
	MaxProperties int64 `json:"maxProperties,string,omitempty"`

	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	Pattern string `json:"pattern,omitempty"`
}
