// Package msgpack implements a MessagePack wire format backed by
// vmihailenco/msgpack/v5, projected onto the JSON data model (integers
// become float64, binary becomes base64 text).
package msgpack

import (
	msgpackv5 "github.com/vmihailenco/msgpack/v5"

	"github.com/reoring/forval/internal/foreign"
)

// Wire parses and prints MessagePack. The zero value is ready to use.
type Wire struct{}

// New returns the MessagePack wire format.
func New() Wire { return Wire{} }

func (Wire) Parse(data []byte) (any, error) {
	var v any
	if err := msgpackv5.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return foreign.Normalize(v)
}

func (Wire) Print(v any) ([]byte, error) {
	return msgpackv5.Marshal(v)
}

func (Wire) Name() string { return "msgpack" }
