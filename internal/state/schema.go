package state

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// stateSchema is the structural contract a state file must meet before
// it is accepted. Files missing required fields are rejected as corrupt
// rather than silently defaulted.
var stateSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"plan_name":          map[string]any{"type": "string"},
		"rich_content_level": map[string]any{"type": "string"},
		"problems": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "integer"},
					"title":          map[string]any{"type": "string"},
					"category":       map[string]any{"type": "string"},
					"status":         map[string]any{"enum": []any{"pending", "completed"}},
					"scheduled_date": map[string]any{"type": "string"},
					"next_repetition_date": map[string]any{
						"type": []any{"string", "null"},
					},
					"repetition_level": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"completion_history": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"date", "rating"},
						},
					},
				},
				"required": []any{
					"id", "title", "status", "scheduled_date",
					"repetition_level", "completion_history",
				},
			},
		},
	},
	"required": []any{"plan_name", "problems"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateState checks raw state JSON against the embedded schema.
func validateState(raw []byte) error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://state.json", stateSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://state.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile state schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
