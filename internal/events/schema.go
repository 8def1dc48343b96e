package events

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// logSchema is the shape a decrypted event-log blob must match before its
// contents are trusted. The decrypted payload comes from storage the host
// shares with whatever else runs in the profile, so shape is checked
// explicitly instead of trusting the unmarshal.
var logSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"userToken":  map[string]any{"type": "string"},
			"sessionId":  map[string]any{"type": "string"},
			"timestamp":  map[string]any{"type": "string"},
			"itemId":     map[string]any{"type": "string"},
			"isCorrect":  map[string]any{"type": "boolean"},
			"difficulty": map[string]any{"enum": []any{"easy", "medium", "hard"}},
		},
		"required": []any{"userToken", "sessionId", "timestamp", "itemId", "isCorrect", "difficulty"},
	},
}

var (
	logSchemaOnce     sync.Once
	logSchemaCompiled *jsonschema.Schema
	logSchemaErr      error
)

// decodeLog parses and validates a decrypted event-log blob. Anything that
// fails parsing or validation yields an empty log.
func decodeLog(raw string) ([]Event, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledLogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile log schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var evs []Event
	if err := json.Unmarshal([]byte(raw), &evs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return evs, nil
}

func compiledLogSchema() (*jsonschema.Schema, error) {
	logSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(logSchema)
		if err != nil {
			logSchemaErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			logSchemaErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://eventlog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			logSchemaErr = err
			return
		}
		logSchemaCompiled, logSchemaErr = c.Compile(schemaURL)
	})
	return logSchemaCompiled, logSchemaErr
}
