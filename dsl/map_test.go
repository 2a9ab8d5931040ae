package dsl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	forval "github.com/reoring/forval"
	g "github.com/reoring/forval/dsl"
)

func TestMap_Decode(t *testing.T) {
	v, err := g.Map(g.Int()).Decode(map[string]any{"a": 1.0, "b": 2.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, v); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}

// A failing entry surfaces its own error with no key wrapper; this
// asymmetry with array/record paths is part of the contract.
func TestMap_EntryErrorIsNotKeyWrapped(t *testing.T) {
	_, err := g.Map(g.Int()).Decode(map[string]any{"bad": "x", "good": 1.0})
	el, ok := forval.AsErrorList(err)
	if !ok || len(el) != 1 {
		t.Fatalf("expected singleton ErrorList, got: %v", err)
	}
	if _, wrapped := el[0].(*forval.AtProperty); wrapped {
		t.Fatalf("map entry error must not be wrapped with its key: %#v", el[0])
	}
	tm, ok := el[0].(*forval.TypeMismatch)
	if !ok || tm.Expected != "Int" {
		t.Fatalf("unexpected error: %#v", el[0])
	}
}

// Entries are visited in sorted key order, so with several bad entries
// the smallest key's error is the one reported.
func TestMap_DeterministicErrorSelection(t *testing.T) {
	_, err := g.Map(g.Bool()).Decode(map[string]any{"z": "no", "a": 1.0, "m": "nope"})
	el, ok := forval.AsErrorList(err)
	if !ok {
		t.Fatalf("expected ErrorList, got: %v", err)
	}
	tm, ok := el[0].(*forval.TypeMismatch)
	if !ok || tm.Actual != "Number" {
		t.Fatalf("expected the error from key \"a\" (Number), got: %#v", el[0])
	}
}

func TestMap_NonObjectInput(t *testing.T) {
	_, err := g.Map(g.Int()).Decode([]any{})
	el, ok := forval.AsErrorList(err)
	if !ok {
		t.Fatalf("expected ErrorList, got: %v", err)
	}
	tm, ok := el[0].(*forval.TypeMismatch)
	if !ok || tm.Expected != "Object" {
		t.Fatalf("unexpected error: %#v", el[0])
	}
}

func TestMap_RoundTrip(t *testing.T) {
	m := g.Map(g.String())
	in := map[string]string{"x": "1", "y": "2"}
	v, err := m.Decode(m.Encode(in))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(in, v); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}
