package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// planSchema is the JSON Schema every plan document must satisfy before
// field-level validation runs. It catches structural mistakes (wrong types,
// unknown pattern names, missing count) with precise locations.
const planSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["patterns"],
  "properties": {
    "name": {"type": "string"},
    "settings": {
      "type": "object",
      "properties": {
        "baseUrl": {"type": "string"},
        "endpoint": {"type": "string"},
        "timeout": {"type": "string"},
        "userAgent": {"type": "string"}
      },
      "additionalProperties": false
    },
    "patterns": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["pattern", "count"],
        "properties": {
          "pattern": {"enum": ["burst", "sustained", "delayed"]},
          "count": {"type": "integer", "minimum": 1},
          "interval": {"type": "string"},
          "initialDelay": {"type": "string"},
          "delayIncrement": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// validateSchema checks a decoded plan document against planSchema.
// The document must contain only JSON-compatible values.
func validateSchema(doc interface{}) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("plan.json", strings.NewReader(planSchema)); err != nil {
		return fmt.Errorf("invalid plan schema: %w", err)
	}

	schema, err := compiler.Compile("plan.json")
	if err != nil {
		return fmt.Errorf("invalid plan schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("plan does not match schema: %w", err)
	}
	return nil
}

// toJSONDocument round-trips a YAML-decoded value through encoding/json so
// the schema validator sees the value kinds it expects (float64 numbers,
// map[string]interface{} objects).
func toJSONDocument(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
