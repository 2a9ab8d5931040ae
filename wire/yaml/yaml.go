// Package yaml implements a YAML wire format backed by gopkg.in/yaml.v3.
// YAML input is projected onto the JSON data model: integers become
// float64, timestamps become RFC3339 strings, and non-string map keys are
// rejected.
package yaml

import (
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/reoring/forval/internal/foreign"
)

// Wire parses and prints YAML. The zero value is ready to use.
type Wire struct{}

// New returns the YAML wire format.
func New() Wire { return Wire{} }

func (Wire) Parse(data []byte) (any, error) {
	var v any
	if err := yamlv3.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return foreign.Normalize(v)
}

func (Wire) Print(v any) ([]byte, error) {
	return yamlv3.Marshal(v)
}

func (Wire) Name() string { return "yaml" }
