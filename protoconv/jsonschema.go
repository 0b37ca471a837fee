// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package protoconv

import (
	"encoding/json"

	"github.com/bytedance/sonic"
	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"

	"github.com/kevinaud/adk-sim-plugin/types"
)

// jsonSchemaTypeNames is the explicit table from SDK type enum to the JSON
// Schema type vocabulary. Absent entries (unspecified, null) carry no type
// keyword at all.
var jsonSchemaTypeNames = map[genai.Type]string{
	genai.TypeString:  "string",
	genai.TypeNumber:  "number",
	genai.TypeInteger: "integer",
	genai.TypeBoolean: "boolean",
	genai.TypeArray:   "array",
	genai.TypeObject:  "object",
}

// ToJSONSchema re-expresses an SDK schema as JSON Schema for the dynamic
// form renderer. Returns nil if input is nil. One-directional: forms only
// consume this shape, they never produce it.
//
// A schema marked nullable becomes {oneOf: [<schema without nullable>,
// {type: "null"}]}; the non-null alternative is the full recursive
// conversion of the same schema, so descriptions, constraints and nested
// properties all survive inside it, and no top-level type keyword is set
// alongside oneOf.
func ToJSONSchema(schema *genai.Schema) *jsonschema.Schema {
	if schema == nil {
		return nil
	}

	if types.Deref(schema.Nullable, false) {
		base := *schema
		base.Nullable = nil
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				ToJSONSchema(&base),
				{Type: "null"},
			},
		}
	}

	result := &jsonschema.Schema{
		Title:       schema.Title,
		Description: schema.Description,
		Format:      schema.Format,
		Pattern:     schema.Pattern,
		Items:       ToJSONSchema(schema.Items),
	}

	if name, ok := jsonSchemaTypeNames[schema.Type]; ok {
		result.Type = name
	}

	if len(schema.Enum) > 0 {
		result.Enum = make([]any, len(schema.Enum))
		for i, v := range schema.Enum {
			result.Enum[i] = v
		}
	}

	if len(schema.Required) > 0 {
		result.Required = append([]string(nil), schema.Required...)
	}

	if len(schema.AnyOf) > 0 {
		result.AnyOf = make([]*jsonschema.Schema, len(schema.AnyOf))
		for i, alt := range schema.AnyOf {
			result.AnyOf[i] = ToJSONSchema(alt)
		}
	}

	if len(schema.Properties) > 0 {
		result.Properties = make(map[string]*jsonschema.Schema, len(schema.Properties))
		for k, v := range schema.Properties {
			result.Properties[k] = ToJSONSchema(v)
		}
	}

	// Present count constraints narrow to native ints; an explicit zero is a
	// real bound and must survive as 0, only absence is skipped.
	if schema.MinItems != nil {
		result.MinItems = types.ToPtr(int(*schema.MinItems))
	}
	if schema.MaxItems != nil {
		result.MaxItems = types.ToPtr(int(*schema.MaxItems))
	}
	if schema.MinLength != nil {
		result.MinLength = types.ToPtr(int(*schema.MinLength))
	}
	if schema.MaxLength != nil {
		result.MaxLength = types.ToPtr(int(*schema.MaxLength))
	}
	if schema.MinProperties != nil {
		result.MinProperties = types.ToPtr(int(*schema.MinProperties))
	}
	if schema.MaxProperties != nil {
		result.MaxProperties = types.ToPtr(int(*schema.MaxProperties))
	}

	if schema.Minimum != nil {
		result.Minimum = types.ToPtr(*schema.Minimum)
	}
	if schema.Maximum != nil {
		result.Maximum = types.ToPtr(*schema.Maximum)
	}

	if schema.Default != nil {
		if raw, err := sonic.Marshal(schema.Default); err == nil {
			result.Default = json.RawMessage(raw)
		}
	}

	return result
}
