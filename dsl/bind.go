package dsl

import (
	"reflect"
	"strconv"

	forval "github.com/reoring/forval"
)

// Bind builds the record codec and binds it to struct type T; T may be
// the struct type or a pointer to it. Keys resolve via
// forval.ResolveStructKey (forval tag, then json tag, then field name).
// Optional and Nullable fields are naturally expressed as pointer
// fields: an absent or null property decodes to a nil pointer, and on
// encode a nil pointer omits the key (Optional) or emits an explicit
// null (Nullable).
func Bind[T any](b *RecordBuilder) (forval.Codec[T], error) {
	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	rec, ok := c.(*recordCodec)
	if !ok {
		return nil, forval.Fail(&forval.Message{Text: "unexpected codec type for Bind"})
	}
	return newBoundRecordCodec[T](rec)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *RecordBuilder) forval.Codec[T] {
	c, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return c
}

type boundRecordCodec[T any] struct {
	inner      *recordCodec
	rt         reflect.Type
	ptr        bool           // T is *struct rather than struct
	fieldByKey map[string]int // record field name -> struct field index
}

func newBoundRecordCodec[T any](rec *recordCodec) (forval.Codec[T], error) {
	var t T
	rt := reflect.TypeOf(t)
	ptr := false
	if rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
		ptr = true
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, forval.Fail(&forval.Message{Text: "Bind[T] requires struct T"})
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := forval.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	fm := make(map[string]int, len(rec.fields))
	for _, f := range rec.fields {
		i, ok := idxByName[f.name]
		if !ok {
			if f.c.optional {
				continue
			}
			return nil, forval.Fail(&forval.Message{
				Text: "Bind[T]: no struct field for required property " + strconv.Quote(f.name),
			})
		}
		fm[f.name] = i
	}
	return &boundRecordCodec[T]{inner: rec, rt: rt, ptr: ptr, fieldByKey: fm}, nil
}

// Decode maps wire -> map via the record engine, then into struct fields.
func (s *boundRecordCodec[T]) Decode(v any) (T, error) {
	var zero T
	m, err := s.inner.Decode(v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(s.rt).Elem()
	for _, f := range s.inner.fields {
		idx, ok := s.fieldByKey[f.name]
		if !ok {
			continue
		}
		val, present := m[f.name]
		fv := rv.Field(idx)
		if !present || val == nil {
			// absent Optional or explicit null: nillable fields get nil,
			// the rest keep their zero value
			fv.Set(reflect.Zero(fv.Type()))
			continue
		}
		if err := setField(fv, val); err != nil {
			return zero, forval.WrapProperty(f.name, err)
		}
	}
	if s.ptr {
		return rv.Addr().Interface().(T), nil
	}
	return rv.Interface().(T), nil
}

// setField assigns val into fv, auto-allocating one level of pointer so
// Optional/Nullable values land in pointer fields.
func setField(fv reflect.Value, val any) error {
	vv := reflect.ValueOf(val)
	ft := fv.Type()
	switch {
	case vv.Type().AssignableTo(ft):
		fv.Set(vv)
	case ft.Kind() == reflect.Pointer && vv.Type().AssignableTo(ft.Elem()):
		p := reflect.New(ft.Elem())
		p.Elem().Set(vv)
		fv.Set(p)
	case ft.Kind() == reflect.Pointer && vv.Type().ConvertibleTo(ft.Elem()):
		p := reflect.New(ft.Elem())
		p.Elem().Set(vv.Convert(ft.Elem()))
		fv.Set(p)
	case vv.Type().ConvertibleTo(ft):
		fv.Set(vv.Convert(ft))
	default:
		return forval.Fail(&forval.TypeMismatch{
			Expected: ft.String(),
			Actual:   vv.Type().String(),
		})
	}
	return nil
}

// Encode maps struct fields back into the wire map and delegates to the
// record engine. Nil pointers on Optional fields drop the key; nil
// pointers elsewhere become explicit nulls (the Nullable adapter encodes
// them; a nil on a plain required field is a construction bug and the
// record engine panics on it).
func (s *boundRecordCodec[T]) Encode(x T) any {
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	m := make(map[string]any, len(s.fieldByKey))
	for _, f := range s.inner.fields {
		idx, ok := s.fieldByKey[f.name]
		if !ok {
			continue
		}
		fv := rv.Field(idx)
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			if fv.IsNil() {
				if f.c.optional {
					continue
				}
				m[f.name] = nil
				continue
			}
			if fv.Kind() == reflect.Pointer {
				m[f.name] = fv.Elem().Interface()
				continue
			}
			m[f.name] = fv.Interface()
		default:
			m[f.name] = fv.Interface()
		}
	}
	return s.inner.Encode(m)
}
