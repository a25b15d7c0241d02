package scrapegraph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The agentic scraper accepts two fields in either structured or
// string-encoded form, depending on how the calling agent serialized
// them. Normalization resolves each to its structured form up front;
// a string that cannot be resolved is a ValidationError, never an
// implicit fallback.

// NormalizeSteps resolves the steps field to an ordered list of
// instructions. Accepted shapes:
//   - a list of strings, passed through;
//   - a string holding a JSON-encoded array, decoded;
//   - any other string, wrapped as a single step.
func NormalizeSteps(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		steps := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, newValidationError("steps",
					fmt.Sprintf("element %d is not a string", i))
			}
			steps = append(steps, s)
		}
		return steps, nil
	case string:
		if v == "" {
			return nil, nil
		}
		// A JSON-encoded array decodes to its elements; anything else
		// is treated as a single instruction.
		if strings.HasPrefix(strings.TrimSpace(v), "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(v), &decoded); err == nil {
				return decoded, nil
			}
		}
		return []string{v}, nil
	default:
		return nil, newValidationError("steps",
			fmt.Sprintf("expected a list of strings or a string, got %T", value))
	}
}

// NormalizeOutputSchema resolves the output_schema field to a JSON
// object. A structured object passes through; a string must decode to
// a JSON object or the call fails validation.
func NormalizeOutputSchema(value any) (map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		var decoded map[string]any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, newValidationError("output_schema",
				"string value is not valid JSON object: "+err.Error())
		}
		return decoded, nil
	default:
		return nil, newValidationError("output_schema",
			fmt.Sprintf("expected an object or a JSON-encoded string, got %T", value))
	}
}
