package dsl

import (
	forval "github.com/reoring/forval"
)

// Array returns an array codec with the given element codec. Decoding
// aborts at the first failing element, wrapped with its index; elements
// past the failure are not attempted.
func Array[E any](elem forval.Codec[E]) forval.Codec[[]E] {
	return arrayCodec[E]{elem: elem}
}

// ArrayOf adapts Array[E] to an AnyCodec for use in record and union
// builders.
func ArrayOf[E any](elem forval.Codec[E]) AnyCodec {
	return Of[[]E](Array(elem))
}

type arrayCodec[E any] struct{ elem forval.Codec[E] }

func (a arrayCodec[E]) Decode(v any) ([]E, error) {
	switch src := v.(type) {
	case []E:
		return src, nil
	case []any:
		out := make([]E, 0, len(src))
		for i := range src {
			ev, err := a.elem.Decode(src[i])
			if err != nil {
				return nil, forval.WrapIndex(i, err)
			}
			out = append(out, ev)
		}
		return out, nil
	default:
		return nil, forval.Mismatch(forval.KindArray, v)
	}
}

func (a arrayCodec[E]) Encode(x []E) any {
	out := make([]any, len(x))
	for i := range x {
		out[i] = a.elem.Encode(x[i])
	}
	return out
}
