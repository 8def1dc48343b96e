package privacy

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// preferencesSchema is the shape a persisted preferences blob must match
// before it is trusted. Unknown fields are tolerated; wrong types are not.
var preferencesSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"shareDemographics":    map[string]any{"type": "boolean"},
		"allowPersonalization": map[string]any{"type": "boolean"},
		"encryptionLevel":      map[string]any{"enum": []any{"standard", "enhanced"}},
		"region":               map[string]any{"type": "string"},
		"ageGroup":             map[string]any{"type": "string"},
	},
	"required": []any{"shareDemographics", "allowPersonalization", "encryptionLevel"},
}

var (
	prefsSchemaOnce     sync.Once
	prefsSchemaCompiled *jsonschema.Schema
	prefsSchemaErr      error
)

// ValidatePreferencesJSON checks a raw preferences blob against the schema.
func ValidatePreferencesJSON(raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledPreferencesSchema()
	if err != nil {
		return fmt.Errorf("compile preferences schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledPreferencesSchema() (*jsonschema.Schema, error) {
	prefsSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(preferencesSchema)
		if err != nil {
			prefsSchemaErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			prefsSchemaErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://preferences.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			prefsSchemaErr = err
			return
		}
		prefsSchemaCompiled, prefsSchemaErr = c.Compile(schemaURL)
	})
	return prefsSchemaCompiled, prefsSchemaErr
}
