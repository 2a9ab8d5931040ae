package dsl

import (
	"strconv"

	forval "github.com/reoring/forval"
)

type recordField struct {
	name string
	c    AnyCodec
}

// RecordBuilder accumulates an ordered field list for a record codec.
// Declaration order is the processing order: decode walks fields in the
// order they were declared, and the first failing field is the one
// reported.
type RecordBuilder struct {
	fields []recordField
	seen   map[string]struct{}
	dup    string
}

// Record creates a new record builder.
func Record() *RecordBuilder {
	return &RecordBuilder{seen: map[string]struct{}{}}
}

// Field appends a field with its adapter. Fields are required unless the
// adapter is Optional.
func (b *RecordBuilder) Field(name string, c AnyCodec) *RecordBuilder {
	if _, ok := b.seen[name]; ok && b.dup == "" {
		b.dup = name
	}
	b.seen[name] = struct{}{}
	b.fields = append(b.fields, recordField{name: name, c: c})
	return b
}

// Build validates the builder and returns the record codec.
func (b *RecordBuilder) Build() (forval.Codec[map[string]any], error) {
	if b.dup != "" {
		return nil, forval.Fail(&forval.Message{Text: "duplicate record field " + strconv.Quote(b.dup)})
	}
	fields := make([]recordField, len(b.fields))
	copy(fields, b.fields)
	return &recordCodec{fields: fields}, nil
}

// MustBuild is like Build but panics on error.
func (b *RecordBuilder) MustBuild() forval.Codec[map[string]any] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

type recordCodec struct {
	fields []recordField
}

// Decode walks the field list in declaration order. The first failing
// field aborts the whole record with a singleton ErrorList wrapped under
// its property name; no further fields are attempted. Absent Optional
// fields leave their key out of the result.
func (r *recordCodec) Decode(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, forval.Mismatch(forval.KindObject, v)
	}
	out := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		pv, exists := obj[f.name]
		if !exists {
			if f.c.optional {
				continue
			}
			return nil, forval.Fail(&forval.AtProperty{
				Name: f.name,
				Err:  &forval.Message{Text: "No value was found."},
			})
		}
		if pv == nil && f.c.optional {
			// explicit null and missing key are the same for Optional
			continue
		}
		fv, err := f.c.decode(pv)
		if err != nil {
			return nil, forval.WrapProperty(f.name, err)
		}
		out[f.name] = fv
	}
	return out, nil
}

// Encode walks the field list in declaration order and always succeeds on
// well-formed input. A required key absent from the input map is a
// construction bug and panics; Optional fields are simply omitted.
func (r *recordCodec) Encode(x map[string]any) any {
	out := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		val, exists := x[f.name]
		if !exists || (val == nil && f.c.optional) {
			if f.c.optional {
				continue
			}
			panic("forval/dsl: record encode: required property " + strconv.Quote(f.name) + " is missing")
		}
		out[f.name] = f.c.encode(val)
	}
	return out
}
