package planlist

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// listSchema is the structural contract for a plan-list file. Only
// identity fields are required; all resource fields are optional.
var listSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{"type": "string"},
		"categories": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "integer"},
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"id", "title"},
				},
			},
		},
	},
	"required": []any{"name", "categories"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func validateList(raw []byte) error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://planlist.json", listSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://planlist.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile plan-list schema: %w", compileErr)
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
