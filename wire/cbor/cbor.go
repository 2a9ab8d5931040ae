// Package cbor implements a CBOR wire format backed by fxamacker/cbor/v2.
// CBOR values are projected onto the JSON data model: integers become
// float64, byte strings become base64 text, tagged time values become
// RFC3339 strings.
package cbor

import (
	cborv2 "github.com/fxamacker/cbor/v2"

	"github.com/reoring/forval/internal/foreign"
)

// Wire parses and prints CBOR. The zero value is NOT ready to use;
// construct with New or Must.
type Wire struct {
	enc cborv2.EncMode
	dec cborv2.DecMode
}

// New constructs a CBOR wire format.
//   - deterministic=true uses CoreDetEncOptions (RFC 8949 Core
//     Deterministic) for byte-for-byte stable output.
//   - Otherwise PreferredUnsortedEncOptions are used.
func New(deterministic bool) (Wire, error) {
	var eo cborv2.EncOptions
	if deterministic {
		eo = cborv2.CoreDetEncOptions()
	} else {
		eo = cborv2.PreferredUnsortedEncOptions()
	}
	eo.Time = cborv2.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return Wire{}, err
	}
	dm, err := (cborv2.DecOptions{}).DecMode()
	if err != nil {
		return Wire{}, err
	}
	return Wire{enc: em, dec: dm}, nil
}

// Must is like New but panics on error. Handy for package-level
// variables in tests and examples.
func Must(deterministic bool) Wire {
	w, err := New(deterministic)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Wire) Parse(data []byte) (any, error) {
	var v any
	if err := w.dec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return foreign.Normalize(v)
}

func (w Wire) Print(v any) ([]byte, error) {
	return w.enc.Marshal(v)
}

func (Wire) Name() string { return "cbor" }
