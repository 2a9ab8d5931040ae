package forval

// Codec converts between the foreign value representation (the dynamic
// JSON data model: nil, bool, float64, string, []any, map[string]any) and
// a typed Go value.
//
// Decode failures are recoverable ErrorList values. Encode is total over
// well-formed inputs and has no error path; it panics only on broken
// construction-time invariants (for example a Variant whose tag is not
// part of its union schema), which signal a programming bug rather than
// bad data.
//
// Codecs are immutable once built and safe for concurrent use.
type Codec[T any] interface {
	Decode(v any) (T, error)
	Encode(x T) any
}

// Variant is the runtime value of a tagged union: a case tag drawn from
// the union schema paired with that case's decoded payload. Construct
// variants only with tags declared on the schema that will encode them;
// encoding an undeclared tag panics.
type Variant struct {
	Tag   string
	Value any
}

// Decode runs c over an already-materialized foreign value.
func Decode[T any](c Codec[T], v any) (T, error) {
	return c.Decode(v)
}

// Encode produces the foreign value representation of x.
func Encode[T any](c Codec[T], x T) any {
	return c.Encode(x)
}

// SafeDecode decodes v, returning (zero, false) on failure.
func SafeDecode[T any](c Codec[T], v any) (T, bool) {
	out, err := c.Decode(v)
	if err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// Is reports whether v decodes successfully under c.
func Is[T any](c Codec[T], v any) bool {
	_, err := c.Decode(v)
	return err == nil
}
