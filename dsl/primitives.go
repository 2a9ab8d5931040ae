package dsl

import (
	"encoding/json"
	"unicode/utf8"

	forval "github.com/reoring/forval"
)

// Bool returns the boolean codec.
func Bool() forval.Codec[bool] { return boolCodec{} }

// String returns the string codec.
func String() forval.Codec[string] { return stringCodec{} }

// Number returns the float64 codec over JSON numbers.
func Number() forval.Codec[float64] { return numberCodec{} }

// Int returns the strict integer codec: a JSON number decodes only when
// it is exactly representable as an int (no fractional part, in range).
func Int() forval.Codec[int] { return intCodec{} }

// Char returns the single-character string codec.
func Char() forval.Codec[rune] { return charCodec{} }

type boolCodec struct{}

func (boolCodec) Decode(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, forval.Mismatch(forval.KindBoolean, v)
	}
	return b, nil
}

func (boolCodec) Encode(x bool) any { return x }

type stringCodec struct{}

func (stringCodec) Decode(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", forval.Mismatch(forval.KindString, v)
	}
	return s, nil
}

func (stringCodec) Encode(x string) any { return x }

type numberCodec struct{}

// Decode accepts the canonical float64 plus direct Go integers and
// json.Number, so hand-built foreign values read naturally.
func (numberCodec) Decode(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
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
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, forval.Mismatch(forval.KindNumber, v)
		}
		return f, nil
	default:
		return 0, forval.Mismatch(forval.KindNumber, v)
	}
}

func (numberCodec) Encode(x float64) any { return x }

type intCodec struct{}

func (intCodec) Decode(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int8:
		return int(t), nil
	case int16:
		return int(t), nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case uint:
		return int(t), nil
	case uint8:
		return int(t), nil
	case uint16:
		return int(t), nil
	case uint32:
		return int(t), nil
	}
	f, err := Number().Decode(v)
	if err != nil {
		return 0, forval.Mismatch("Int", v)
	}
	// Exactness check: the round-trip through int rejects fractional
	// parts, NaN/Inf, and out-of-range magnitudes in one comparison.
	i := int(f)
	if float64(i) != f {
		return 0, forval.Mismatch("Int", v)
	}
	return i, nil
}

func (intCodec) Encode(x int) any { return float64(x) }

type charCodec struct{}

func (charCodec) Decode(v any) (rune, error) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, forval.Mismatch("Char", v)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func (charCodec) Encode(x rune) any { return string(x) }

// ---- AnyCodec constructors with domain-type projection ----

// BoolOf returns an AnyCodec for a bool wire value projected to domain
// type T.
func BoolOf[T ~bool]() AnyCodec {
	return AnyCodec{
		decode: func(v any) (any, error) {
			b, err := Bool().Decode(v)
			if err != nil {
				return nil, err
			}
			return T(b), nil
		},
		encode: func(x any) any { return Bool().Encode(bool(mustType[T](x))) },
	}
}

// StringOf returns an AnyCodec for a string wire value projected to
// domain type T.
func StringOf[T ~string]() AnyCodec {
	return AnyCodec{
		decode: func(v any) (any, error) {
			s, err := String().Decode(v)
			if err != nil {
				return nil, err
			}
			return T(s), nil
		},
		encode: func(x any) any { return String().Encode(string(mustType[T](x))) },
	}
}

// NumberOf returns an AnyCodec for a number wire value projected to
// domain type T.
func NumberOf[T ~float64]() AnyCodec {
	return AnyCodec{
		decode: func(v any) (any, error) {
			f, err := Number().Decode(v)
			if err != nil {
				return nil, err
			}
			return T(f), nil
		},
		encode: func(x any) any { return Number().Encode(float64(mustType[T](x))) },
	}
}

// IntOf returns an AnyCodec for a strict-integer wire value projected to
// domain type T.
func IntOf[T ~int]() AnyCodec {
	return AnyCodec{
		decode: func(v any) (any, error) {
			i, err := Int().Decode(v)
			if err != nil {
				return nil, err
			}
			return T(i), nil
		},
		encode: func(x any) any { return Int().Encode(int(mustType[T](x))) },
	}
}

// CharOf returns an AnyCodec for a single-character string projected to
// domain type T (rune is int32, so T defaults to rune).
func CharOf[T ~int32]() AnyCodec {
	return AnyCodec{
		decode: func(v any) (any, error) {
			r, err := Char().Decode(v)
			if err != nil {
				return nil, err
			}
			return T(r), nil
		},
		encode: func(x any) any { return Char().Encode(rune(mustType[T](x))) },
	}
}
