package export

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidImport reports a document that failed structural
// validation before any state was touched.
type ErrInvalidImport struct {
	Err error
}

func (e *ErrInvalidImport) Error() string {
	return fmt.Sprintf("invalid import document: %v", e.Err)
}

func (e *ErrInvalidImport) Unwrap() error { return e.Err }

// progressSchema is the structural contract of an export document. It
// is deliberately loose about unknown keys so newer exports import
// into older builds, but strict about the shapes it does name.
const progressSchema = `{
	"type": "object",
	"required": ["completedLessons"],
	"properties": {
		"completedLessons": {
			"type": "object",
			"additionalProperties": {"type": "integer", "minimum": 0}
		},
		"eventMastery": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"properties": {
					"location":      {"type": "string"},
					"date":          {"type": "string"},
					"what":          {"type": "string"},
					"description":   {"type": "string"},
					"timesReviewed": {"type": "integer", "minimum": 0},
					"overall":       {"type": "integer", "minimum": 0, "maximum": 12}
				}
			}
		},
		"seenEvents":    {"type": "array", "items": {"type": "string"}},
		"starredEvents": {"type": "array", "items": {"type": "string"}},
		"totalXP":       {"type": "integer", "minimum": 0},
		"currentStreak": {"type": "integer", "minimum": 0},
		"lastActiveDate": {"type": "string"},
		"settings": {
			"type": "object",
			"properties": {
				"cardsPerLesson": {"type": "integer", "minimum": 1, "maximum": 3},
				"recapPerCard":   {"type": "integer", "minimum": 0, "maximum": 2},
				"reminderHour":   {"type": "integer", "minimum": 0, "maximum": 23},
				"reminderMinute": {"type": "integer", "minimum": 0, "maximum": 59}
			}
		}
	}
}`

var compileOnce = sync.OnceValues(compileSchema)

// validate checks raw JSON against the export document schema.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidImport{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileOnce()
	if err != nil {
		return fmt.Errorf("compile progress schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidImport{Err: err}
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not
	// raw bytes.
	var def any
	if err := json.Unmarshal([]byte(progressSchema), &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://chronos-progress.json"
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
