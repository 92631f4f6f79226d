package pwf

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encode renders a document as block-style YAML text. It is purely
// structural and works on both the typed document structs and generic
// decoded values.
func Encode(doc any) (string, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	return string(out), nil
}

// Decode parses YAML text into a generic in-memory value with no schema
// awareness. Objects decode to maps, sequences to []any, scalars to their
// natural Go types.
func Decode(text string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return v, nil
}
