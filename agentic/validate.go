// Copyright (c) Microsoft. All rights reserved.

package agentic

import (
	"encoding/json"
	"fmt"
	"math"
)

// declaredSchema is the subset of JSON Schema the registry checks before
// invoking a tool: required parameter presence and primitive type
// conformance. Anything beyond that is left to the tool itself.
type declaredSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]declaredSchema `json:"properties"`
	Required   []string                  `json:"required"`
}

// validateArguments checks raw against the tool's declared parameter
// schema. A nil or empty schema accepts anything. Errors wrap
// [ErrInvalidArguments].
func validateArguments(name string, schema, raw json.RawMessage) error {
	if len(schema) == 0 {
		return nil
	}

	var decl declaredSchema
	if err := json.Unmarshal(schema, &decl); err != nil {
		// A schema the registry cannot read is not the model's fault;
		// skip boundary validation and let the tool decode.
		return nil
	}

	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return &ToolError{
				ToolName: name,
				Message:  "arguments are not a JSON object",
				Err:      ErrInvalidArguments,
			}
		}
	}

	for _, field := range decl.Required {
		if _, ok := args[field]; !ok {
			return &ToolError{
				ToolName: name,
				Message:  fmt.Sprintf("missing required parameter %q", field),
				Err:      ErrInvalidArguments,
			}
		}
	}

	for key, value := range args {
		prop, ok := decl.Properties[key]
		if !ok || prop.Type == "" {
			continue
		}
		if err := conformsToType(value, prop.Type); err != nil {
			return &ToolError{
				ToolName: name,
				Message:  fmt.Sprintf("parameter %q: %v", key, err),
				Err:      ErrInvalidArguments,
			}
		}
	}

	return nil
}

// conformsToType checks a decoded JSON value against a JSON Schema
// primitive type name. Decoded numbers arrive as float64, so integers
// are floats with no fractional part.
func conformsToType(value any, expected string) error {
	switch expected {
	case "string":
		if _, ok := value.(string); ok {
			return nil
		}
	case "number":
		if _, ok := value.(float64); ok {
			return nil
		}
	case "integer":
		if f, ok := value.(float64); ok && math.Trunc(f) == f {
			return nil
		}
	case "boolean":
		if _, ok := value.(bool); ok {
			return nil
		}
	case "object":
		if _, ok := value.(map[string]any); ok {
			return nil
		}
	case "array":
		if _, ok := value.([]any); ok {
			return nil
		}
	case "null":
		if value == nil {
			return nil
		}
	default:
		// Unrecognized declared type; accept and let the tool decode.
		return nil
	}
	return fmt.Errorf("expected %s but got %T", expected, value)
}
