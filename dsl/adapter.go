package dsl

import (
	"fmt"

	forval "github.com/reoring/forval"
)

// AnyCodec adapts Codec[T] to an any-typed wrapper so heterogeneous field
// and case lists can be declared without per-type glue. The optional flag
// is consulted by the record engine and by Bind; Nullable needs no flag,
// its behavior lives in the wrapped closures.
type AnyCodec struct {
	decode   func(v any) (any, error)
	encode   func(x any) any
	optional bool
}

// Of wraps a strongly typed Codec[T] as an AnyCodec for field and case
// builders. The erased encode side asserts its input back to T and panics
// on a mismatch: a record or union value carrying the wrong Go type is a
// construction bug, not a data error.
func Of[T any](c forval.Codec[T]) AnyCodec {
	return AnyCodec{
		decode: func(v any) (any, error) { return c.Decode(v) },
		encode: func(x any) any { return c.Encode(mustType[T](x)) },
	}
}

func mustType[T any](x any) T {
	tv, ok := x.(T)
	if !ok {
		panic(fmt.Sprintf("forval/dsl: encode expects %T, got %T", tv, x))
	}
	return tv
}

// Optional marks the adapter as absent-or-null-tolerant. The distinction
// is only observable at a record-field boundary: a missing key or an
// explicit null both decode to "absent" (the key is omitted from the
// record's output), and encode omits the key again. Everywhere else the
// adapter behaves like its inner codec.
func Optional(ad AnyCodec) AnyCodec {
	prev := ad.decode
	out := ad
	out.optional = true
	out.decode = func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return prev(v)
	}
	return out
}

// Optional enables fluent chaining: dsl.IntOf[int]().Optional().
func (ad AnyCodec) Optional() AnyCodec { return Optional(ad) }

// Nullable marks the adapter as null-preserving: an explicit null decodes
// to a present null and round-trips back to an explicit null, while a
// missing key remains an error on required fields. A failing non-null
// decode that reports a bare TypeMismatch is rewritten with a "Nullable "
// prefix on the expected type for diagnostic clarity.
func Nullable(ad AnyCodec) AnyCodec {
	prevDecode := ad.decode
	prevEncode := ad.encode
	out := ad
	out.decode = func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		x, err := prevDecode(v)
		if err != nil {
			return nil, prefixNullable(err)
		}
		return x, nil
	}
	out.encode = func(x any) any {
		if x == nil {
			return nil
		}
		return prevEncode(x)
	}
	return out
}

// Nullable enables fluent chaining: dsl.StringOf[string]().Nullable().
func (ad AnyCodec) Nullable() AnyCodec { return Nullable(ad) }

// prefixNullable rewrites a singleton unwrapped TypeMismatch so the
// expected type reads "Nullable X". Wrapped or ad hoc failures pass
// through untouched.
func prefixNullable(err error) error {
	el, ok := forval.AsErrorList(err)
	if !ok || len(el) != 1 {
		return err
	}
	tm, ok := el[0].(*forval.TypeMismatch)
	if !ok {
		return err
	}
	return forval.Fail(&forval.TypeMismatch{
		Expected: "Nullable " + tm.Expected,
		Actual:   tm.Actual,
	})
}
