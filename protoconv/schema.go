// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"context"
	"slices"

	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/pkg/logging"
	"github.com/kevinaud/adk-sim-plugin/types"
	"github.com/kevinaud/adk-sim-plugin/wire"
)

// Type Conversions

// fromWireType maps every known wire type code to its SDK counterpart. The
// SDK has no NULL primitive, so NULL joins UNSPECIFIED in mapping to "no
// type set".
var fromWireType = map[wire.Type]genai.Type{
	wire.TypeUnspecified: "",
	wire.TypeString:      genai.TypeString,
	wire.TypeNumber:      genai.TypeNumber,
	wire.TypeInteger:     genai.TypeInteger,
	wire.TypeBoolean:     genai.TypeBoolean,
	wire.TypeArray:       genai.TypeArray,
	wire.TypeObject:      genai.TypeObject,
	wire.TypeNull:        "",
}

var toWireType = map[genai.Type]wire.Type{
	"":                    wire.TypeUnspecified,
	genai.TypeUnspecified: wire.TypeUnspecified,
	genai.TypeString:      wire.TypeString,
	genai.TypeNumber:      wire.TypeNumber,
	genai.TypeInteger:     wire.TypeInteger,
	genai.TypeBoolean:     wire.TypeBoolean,
	genai.TypeArray:       wire.TypeArray,
	genai.TypeObject:      wire.TypeObject,
	genai.TypeNULL:        wire.TypeNull,
}

// FromWireType converts wire.Type to genai.Type. Codes outside the known
// range log a warning and resolve to "no type set".
func FromWireType(ctx context.Context, t wire.Type) genai.Type {
	if result, ok := fromWireType[t]; ok {
		return result
	}
	logging.FromContext(ctx).Warn("Unknown wire schema type", "type", t)
	return ""
}

// ToWireType converts genai.Type to wire.Type. Unknown values log a warning
// and resolve to TYPE_UNSPECIFIED.
func ToWireType(ctx context.Context, t genai.Type) wire.Type {
	if result, ok := toWireType[t]; ok {
		return result
	}
	logging.FromContext(ctx).Warn("Unknown SDK schema type", "type", string(t))
	return wire.TypeUnspecified
}

// Schema Conversions

// FromWireSchema converts wire.Schema to genai.Schema, recursing over
// properties, items and union alternatives. Returns nil if input is nil.
//
// Count constraints widen from zero-means-unset integers to optional
// integers; Minimum and Maximum pass through as-is so an explicit zero bound
// survives. Empty collections are omitted, never copied.
func FromWireSchema(ctx context.Context, schema *wire.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}

	result := &genai.Schema{
		Type:        FromWireType(ctx, schema.Type),
		Format:      schema.Format,
		Title:       schema.Title,
		Description: schema.Description,
		Pattern:     schema.Pattern,
		Items:       FromWireSchema(ctx, schema.Items),
	}

	if schema.Nullable {
		result.Nullable = types.ToPtr(true)
	}

	if len(schema.Enum) > 0 {
		result.Enum = slices.Clone(schema.Enum)
	}
	if len(schema.Required) > 0 {
		result.Required = slices.Clone(schema.Required)
	}
	if len(schema.PropertyOrdering) > 0 {
		result.PropertyOrdering = slices.Clone(schema.PropertyOrdering)
	}

	if len(schema.AnyOf) > 0 {
		result.AnyOf = make([]*genai.Schema, len(schema.AnyOf))
		for i, alt := range schema.AnyOf {
			result.AnyOf[i] = FromWireSchema(ctx, alt)
		}
	}

	if len(schema.Properties) > 0 {
		result.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for k, v := range schema.Properties {
			result.Properties[k] = FromWireSchema(ctx, v)
		}
	}

	if schema.MinItems != 0 {
		result.MinItems = types.ToPtr(schema.MinItems)
	}
	if schema.MaxItems != 0 {
		result.MaxItems = types.ToPtr(schema.MaxItems)
	}
	if schema.MinLength != 0 {
		result.MinLength = types.ToPtr(schema.MinLength)
	}
	if schema.MaxLength != 0 {
		result.MaxLength = types.ToPtr(schema.MaxLength)
	}
	if schema.MinProperties != 0 {
		result.MinProperties = types.ToPtr(schema.MinProperties)
	}
	if schema.MaxProperties != 0 {
		result.MaxProperties = types.ToPtr(schema.MaxProperties)
	}

	if schema.Minimum != nil {
		result.Minimum = types.ToPtr(*schema.Minimum)
	}
	if schema.Maximum != nil {
		result.Maximum = types.ToPtr(*schema.Maximum)
	}

	return result
}

// ToWireSchema converts genai.Schema to wire.Schema, the inverse of
// [FromWireSchema]. Returns nil if input is nil.
func ToWireSchema(ctx context.Context, schema *genai.Schema) *wire.Schema {
	if schema == nil {
		return nil
	}

	result := &wire.Schema{
		Type:        ToWireType(ctx, schema.Type),
		Format:      schema.Format,
		Title:       schema.Title,
		Description: schema.Description,
		Pattern:     schema.Pattern,
		Nullable:    types.Deref(schema.Nullable, false),
		Items:       ToWireSchema(ctx, schema.Items),

		MinItems:      types.Deref(schema.MinItems, 0),
		MaxItems:      types.Deref(schema.MaxItems, 0),
		MinLength:     types.Deref(schema.MinLength, 0),
		MaxLength:     types.Deref(schema.MaxLength, 0),
		MinProperties: types.Deref(schema.MinProperties, 0),
		MaxProperties: types.Deref(schema.MaxProperties, 0),
	}

	if len(schema.Enum) > 0 {
		result.Enum = slices.Clone(schema.Enum)
	}
	if len(schema.Required) > 0 {
		result.Required = slices.Clone(schema.Required)
	}
	if len(schema.PropertyOrdering) > 0 {
		result.PropertyOrdering = slices.Clone(schema.PropertyOrdering)
	}

	if len(schema.AnyOf) > 0 {
		result.AnyOf = make([]*wire.Schema, len(schema.AnyOf))
		for i, alt := range schema.AnyOf {
			result.AnyOf[i] = ToWireSchema(ctx, alt)
		}
	}

	if len(schema.Properties) > 0 {
		result.Properties = make(map[string]*wire.Schema, len(schema.Properties))
		for k, v := range schema.Properties {
			result.Properties[k] = ToWireSchema(ctx, v)
		}
	}

	if schema.Minimum != nil {
		result.Minimum = types.ToPtr(*schema.Minimum)
	}
	if schema.Maximum != nil {
		result.Maximum = types.ToPtr(*schema.Maximum)
	}

	return result
}
