package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// compileSchema verifies that a generated input schema is valid Draft 7.
// Registration is the only caller: a descriptor whose schema does not
// compile is a programming error surfaced at startup, not at call time.
func compileSchema(name string, schema map[string]any) error {
	raw, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema for %q: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("add schema resource for %q: %w", name, err)
	}
	if _, err := compiler.Compile(resource); err != nil {
		return fmt.Errorf("compile schema for %q: %w", name, err)
	}
	return nil
}
