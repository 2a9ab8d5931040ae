// Package json implements the JSON wire format backed by goccy/go-json.
// It is the process-wide default installed by the root package.
package json

import (
	gojson "github.com/goccy/go-json"
)

// Wire parses and prints JSON. The zero value is ready to use.
type Wire struct{}

// New returns the JSON wire format.
func New() Wire { return Wire{} }

// Parse materializes JSON text into the foreign value model. go-json
// already decodes into the canonical shapes (float64 numbers,
// map[string]any objects), so no further normalization is needed.
func (Wire) Parse(data []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Print serializes a foreign value to JSON text. Object keys are emitted
// in sorted order, so output is deterministic.
func (Wire) Print(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

func (Wire) Name() string { return "json" }
