package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "profile.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// Validate checks the wire form of doc against the portfolio schema: enum
// values, list bounds, distinct tags and the timestamp format.
func Validate(doc *Document) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("validate profile: marshal: %w", err)
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("validate profile: unmarshal: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	return nil
}
