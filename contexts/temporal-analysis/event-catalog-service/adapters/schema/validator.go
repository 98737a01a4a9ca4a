package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed event_batch.schema.json
var eventBatchSchema []byte

// Validator checks JSON batch payloads against the embedded import
// schema. Construct it once with NewValidator; compilation of the
// schema happens at that point, not per request.
type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("event_batch.schema.json", bytes.NewReader(eventBatchSchema)); err != nil {
		return nil, fmt.Errorf("register batch schema: %w", err)
	}
	compiled, err := compiler.Compile("event_batch.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile batch schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

func (v *Validator) Validate(payload []byte) error {
	var instance any
	if err := json.Unmarshal(payload, &instance); err != nil {
		return fmt.Errorf("payload is not valid json: %w", err)
	}
	if err := v.schema.Validate(instance); err != nil {
		return err
	}
	return nil
}
