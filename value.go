package forval

import (
	"encoding/json"
	"fmt"
)

// Kind names of the foreign value model, used as TypeMismatch.Expected by
// the built-in codecs.
const (
	KindNull    = "Null"
	KindBoolean = "Boolean"
	KindNumber  = "Number"
	KindString  = "String"
	KindArray   = "Array"
	KindObject  = "Object"
)

// DescribeValue names the foreign-value kind of v for diagnostics.
// Values outside the canonical model (nil, bool, float64, string, []any,
// map[string]any) are described by their Go type so a misuse is visible
// in the error message rather than masked as a generic kind.
func DescribeValue(v any) string {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return fmt.Sprintf("%T", v)
	}
}
