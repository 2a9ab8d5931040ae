package dsl

import (
	"strconv"

	forval "github.com/reoring/forval"
)

type unionCase struct {
	name string
	c    AnyCodec
}

// UnionBuilder accumulates an ordered case list for a tagged-union codec.
// Case order is semantically significant: decode tries cases strictly in
// declaration order.
type UnionBuilder struct {
	cases []unionCase
	seen  map[string]struct{}
	dup   string
}

// Union creates a new union builder.
func Union() *UnionBuilder {
	return &UnionBuilder{seen: map[string]struct{}{}}
}

// Case appends a named case with its payload adapter.
func (b *UnionBuilder) Case(name string, c AnyCodec) *UnionBuilder {
	if _, ok := b.seen[name]; ok && b.dup == "" {
		b.dup = name
	}
	b.seen[name] = struct{}{}
	b.cases = append(b.cases, unionCase{name: name, c: c})
	return b
}

// Build validates the builder and returns the union codec.
func (b *UnionBuilder) Build() (forval.Codec[forval.Variant], error) {
	if b.dup != "" {
		return nil, forval.Fail(&forval.Message{Text: "duplicate union case " + strconv.Quote(b.dup)})
	}
	cases := make([]unionCase, len(b.cases))
	copy(cases, b.cases)
	return &unionCodec{cases: cases}, nil
}

// MustBuild is like Build but panics on error.
func (b *UnionBuilder) MustBuild() forval.Codec[forval.Variant] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

type unionCodec struct {
	cases []unionCase
}

// Decode tries each case in declaration order against the original input.
// An attempt fails on a tag mismatch OR on a payload decode failure; both
// advance to the next case, so the first case whose full attempt succeeds
// wins, not the first whose tag matches. Per-case errors are discarded;
// exhausting the case list surfaces only the terminal message.
func (u *unionCodec) Decode(v any) (forval.Variant, error) {
	for _, cs := range u.cases {
		payload, err := decodeCase(cs, v)
		if err == nil {
			return forval.Variant{Tag: cs.name, Value: payload}, nil
		}
	}
	var zero forval.Variant
	return zero, forval.Fail(&forval.Message{Text: "Unable to match any variant member."})
}

// decodeCase reads the two-key {type, value} wire shape: "type" eagerly,
// "value" only once the tag has matched.
func decodeCase(cs unionCase, v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, forval.Mismatch(forval.KindObject, v)
	}
	tv, exists := obj["type"]
	if !exists {
		return nil, forval.Fail(&forval.AtProperty{
			Name: "type",
			Err:  &forval.Message{Text: "No value was found."},
		})
	}
	tag, ok := tv.(string)
	if !ok {
		return nil, forval.WrapProperty("type", forval.Mismatch(forval.KindString, tv))
	}
	if tag != cs.name {
		return nil, forval.Fail(&forval.Message{Text: "Did not match variant tag " + cs.name})
	}
	pv, exists := obj["value"]
	if !exists {
		return nil, forval.Fail(&forval.AtProperty{
			Name: "value",
			Err:  &forval.Message{Text: "No value was found."},
		})
	}
	return cs.c.decode(pv)
}

// Encode looks the case up by the runtime tag and produces the two-key
// wire object. A tag outside the schema means the variant was built by
// hand rather than decoded, so it panics instead of returning an error.
func (u *unionCodec) Encode(x forval.Variant) any {
	for _, cs := range u.cases {
		if cs.name == x.Tag {
			return map[string]any{
				"type":  x.Tag,
				"value": cs.c.encode(x.Value),
			}
		}
	}
	panic("forval/dsl: union encode: tag " + strconv.Quote(x.Tag) + " is not a member of the union")
}
