package dsl

import (
	"sort"

	forval "github.com/reoring/forval"
)

// Map returns a codec for homogeneous string-keyed mappings: every entry
// value is decoded with elem, keys pass through unchanged.
//
// A failing entry aborts the decode with that entry's error as-is: the
// key is deliberately NOT wrapped the way array indices and record
// properties are. Entries are visited in sorted key order so the
// surfaced error is deterministic.
func Map[V any](elem forval.Codec[V]) forval.Codec[map[string]V] {
	return mapCodec[V]{elem: elem}
}

// MapOf adapts Map[V] to an AnyCodec for use in record and union
// builders.
func MapOf[V any](elem forval.Codec[V]) AnyCodec {
	return Of[map[string]V](Map(elem))
}

type mapCodec[V any] struct{ elem forval.Codec[V] }

func (m mapCodec[V]) Decode(v any) (map[string]V, error) {
	switch src := v.(type) {
	case map[string]V:
		return src, nil
	case map[string]any:
		keys := make([]string, 0, len(src))
		for k := range src {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]V, len(src))
		for _, k := range keys {
			ev, err := m.elem.Decode(src[k])
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	default:
		return nil, forval.Mismatch(forval.KindObject, v)
	}
}

func (m mapCodec[V]) Encode(x map[string]V) any {
	out := make(map[string]any, len(x))
	for k, ev := range x {
		out[k] = m.elem.Encode(ev)
	}
	return out
}
