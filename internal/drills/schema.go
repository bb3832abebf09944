package drills

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// drillSetSchemaDef is the structural contract for a generation response.
// It is deliberately loose about per-kind fields — shape-level checks live
// in validateStructure so they can produce precise reasons — but it is the
// hard gate for "there is a drills array of objects with known kinds".
var drillSetSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"drills": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"open", "multiple_choice", "scenario", "checklist"},
					},
				},
				"required": []any{"kind"},
			},
		},
	},
	"required": []any{"drills"},
}

var (
	schemaOnce     sync.Once
	drillSetSchema *jsonschema.Schema
	schemaErr      error
)

// compiledSchema compiles the drill set schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		b, err := json.Marshal(drillSetSchemaDef)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://drill-set.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		drillSetSchema, schemaErr = c.Compile(url)
	})
	return drillSetSchema, schemaErr
}
