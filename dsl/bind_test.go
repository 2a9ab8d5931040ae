package dsl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	forval "github.com/reoring/forval"
	g "github.com/reoring/forval/dsl"
)

type person struct {
	Name string  `json:"name"`
	Age  *int    `json:"age"`
	Nick *string `json:"nick"`
}

func personCodec() forval.Codec[person] {
	return g.MustBind[person](g.Record().
		Field("name", g.StringOf[string]()).
		Field("age", g.IntOf[int]().Optional()).
		Field("nick", g.StringOf[string]().Nullable()))
}

func TestBind_DecodeIntoStruct(t *testing.T) {
	c := personCodec()

	v, err := c.Decode(map[string]any{"name": "ada", "age": 36.0, "nick": "al"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	age, nick := 36, "al"
	want := person{Name: "ada", Age: &age, Nick: &nick}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("unexpected struct (-want +got):\n%s", diff)
	}
}

func TestBind_AbsentAndNullBecomeNilPointers(t *testing.T) {
	c := personCodec()

	v, err := c.Decode(map[string]any{"name": "ada", "nick": nil})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Age != nil || v.Nick != nil {
		t.Fatalf("expected nil pointers, got: %#v", v)
	}
}

func TestBind_EncodeDistinguishesOptionalFromNullable(t *testing.T) {
	c := personCodec()

	enc, ok := c.Encode(person{Name: "ada"}).(map[string]any)
	if !ok {
		t.Fatalf("bound record must encode as object")
	}
	if _, present := enc["age"]; present {
		t.Fatalf("nil optional pointer must omit its key: %#v", enc)
	}
	if got, present := enc["nick"]; !present || got != nil {
		t.Fatalf("nil nullable pointer must encode as explicit null: %#v", enc)
	}
}

func TestBind_RoundTrip(t *testing.T) {
	c := personCodec()

	age := 36
	in := person{Name: "ada", Age: &age}
	back, err := c.Decode(c.Encode(in))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBind_ErrorPathUsesPropertyName(t *testing.T) {
	c := personCodec()

	_, err := c.Decode(map[string]any{"name": 1.0})
	el, ok := forval.AsErrorList(err)
	if !ok {
		t.Fatalf("expected ErrorList, got: %v", err)
	}
	if got := forval.Path(el[0]); got != "/name" {
		t.Fatalf("unexpected path: %q", got)
	}
}

func TestBind_PointerTarget(t *testing.T) {
	c := g.MustBind[*person](g.Record().
		Field("name", g.StringOf[string]()).
		Field("age", g.IntOf[int]().Optional()).
		Field("nick", g.StringOf[string]().Nullable()))

	v, err := c.Decode(map[string]any{"name": "ada", "nick": nil})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v == nil || v.Name != "ada" || v.Age != nil || v.Nick != nil {
		t.Fatalf("unexpected struct: %#v", v)
	}

	back, err := c.Decode(c.Encode(v))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(v, back); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

type tagged struct {
	Label string `forval:"name=display_name" json:"label"`
}

// The forval tag wins over the json tag when both are present.
func TestBind_ForvalTagTakesPrecedence(t *testing.T) {
	c := g.MustBind[tagged](g.Record().
		Field("display_name", g.StringOf[string]()))

	v, err := c.Decode(map[string]any{"display_name": "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Label != "x" {
		t.Fatalf("unexpected struct: %#v", v)
	}
}

func TestBind_RequiredFieldWithoutStructCounterpart(t *testing.T) {
	type slim struct {
		Name string `json:"name"`
	}
	_, err := g.Bind[slim](g.Record().
		Field("name", g.StringOf[string]()).
		Field("age", g.IntOf[int]()))
	if err == nil {
		t.Fatalf("expected bind error for unmapped required property")
	}
}

func TestBind_RejectsNonStructTarget(t *testing.T) {
	_, err := g.Bind[int](g.Record().Field("n", g.IntOf[int]()))
	if err == nil {
		t.Fatalf("expected bind error for non-struct target")
	}
}
