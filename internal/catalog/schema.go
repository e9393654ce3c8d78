package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the JSON schema every catalog document must satisfy
// before it is decoded into typed categories.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+\.[0-9]+\.[0-9]+`,
		},
		"categories": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key":         map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"icon":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id": map[string]any{"type": "integer"},
								"difficulty": map[string]any{
									"type": "string",
									"enum": []any{"easy", "medium", "hard"},
								},
								"prompt": map[string]any{"type": "string", "minLength": 1},
								"options": map[string]any{
									"type":     "array",
									"minItems": OptionCount,
									"maxItems": OptionCount,
									"items":    map[string]any{"type": "string"},
								},
								"correct_index": map[string]any{
									"type":    "integer",
									"minimum": 0,
									"maximum": OptionCount - 1,
								},
								"explanation": map[string]any{"type": "string"},
							},
							"required":             []any{"id", "difficulty", "prompt", "options", "correct_index", "explanation"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"key", "title", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "categories"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks a generic decoded document against documentSchema.
func validateDocument(doc any) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	// The jsonschema library expects JSON-shaped values, so round-trip the
	// YAML tree through encoding/json first.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal catalog document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("parse catalog document: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles documentSchema once and caches the result.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://snakequiz-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
