package defs

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of a catalog file.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(new(Catalog))
	s.Title = "Arcane Survivors Catalog"
	s.Description = "Weapons, passives, enemies, characters and wave data loaded by the simulation"
	return s
}

// SchemaJSON renders Schema as indented JSON with a trailing newline.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog schema: %w", err)
	}
	return append(data, '\n'), nil
}
