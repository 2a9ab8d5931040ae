// Package foreign canonicalizes decoder output into the foreign value
// model shared by every wire format: nil, bool, float64, string, []any,
// map[string]any. Each wire format's decoder has its own preferred shapes
// (yaml.v3 yields map[string]any but also map[any]any and ints, cbor
// yields uint64/int64/[]byte and tagged values, msgpack yields int64),
// and the codec engines only ever see the canonical six.
package foreign

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Normalize rewrites v into the canonical foreign value model. Values
// with no JSON counterpart are mapped the way encoding/json would map
// them ([]byte to base64, time.Time to RFC3339Nano); anything else is
// reported as an error rather than smuggled through.
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, float64, string:
		return t, nil
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case float32:
		return float64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("foreign: bad number %q: %w", string(t), err)
		}
		return f, nil
	case []byte:
		return base64.StdEncoding.EncodeToString(t), nil
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano), nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			nv, err := Normalize(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			nv, err := Normalize(mv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("foreign: non-string object key %v (%T)", k, k)
			}
			nv, err := Normalize(mv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("foreign: unsupported value of type %T", v)
	}
}
