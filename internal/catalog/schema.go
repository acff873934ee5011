package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema is the JSON Schema every user-supplied catalog file must
// satisfy before struct-level validation runs.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Trait Catalog",
  "type": "object",
  "required": ["traits"],
  "properties": {
    "traits": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "group", "source_column", "direction", "kind"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "group": {"type": "string", "minLength": 1},
          "source_column": {"type": "string", "minLength": 1},
          "direction": {"enum": ["higher_is_better", "lower_is_better"]},
          "kind": {"enum": ["numeric", "categorical"]},
          "weight": {"type": "number", "exclusiveMinimum": 0}
        },
        "additionalProperties": false
      }
    },
    "group_weights": {
      "type": "object",
      "additionalProperties": {"type": "number", "exclusiveMinimum": 0}
    }
  },
  "additionalProperties": false
}`

// Parse decodes and validates catalog JSON. Traits without an explicit
// weight default to 1.0 (no working weight source exists today; the field
// stays first-class so a future weighted scheme needs no structural change).
func Parse(data []byte) (*Catalog, error) {
	if err := validateAgainstSchema(data); err != nil {
		return nil, err
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	for i := range c.Traits {
		if c.Traits[i].Weight == 0 {
			c.Traits[i].Weight = 1.0
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validateAgainstSchema checks raw catalog JSON against the embedded schema.
func validateAgainstSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("catalog schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("catalog schema validation failed:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf("\n  %s: %s", field, desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
