package dsl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	forval "github.com/reoring/forval"
	g "github.com/reoring/forval/dsl"
)

func numberOrText() forval.Codec[forval.Variant] {
	return g.Union().
		Case("text", g.StringOf[string]()).
		Case("number", g.IntOf[int]()).
		MustBuild()
}

func TestUnion_DecodeSelectsByTag(t *testing.T) {
	u := numberOrText()

	v, err := u.Decode(map[string]any{"type": "number", "value": 5.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(forval.Variant{Tag: "number", Value: 5}, v); diff != "" {
		t.Fatalf("unexpected variant (-want +got):\n%s", diff)
	}

	v, err = u.Decode(map[string]any{"type": "text", "value": "hi"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Tag != "text" || v.Value != "hi" {
		t.Fatalf("unexpected variant: %#v", v)
	}
}

// A matching tag whose payload fails does not stop the search; it falls
// through to later cases and, when none succeed, to the terminal message.
func TestUnion_PayloadFailureFallsThrough(t *testing.T) {
	u := numberOrText()

	_, err := u.Decode(map[string]any{"type": "number", "value": "oops"})
	assertTerminalUnionError(t, err)
}

func TestUnion_UnknownTag(t *testing.T) {
	u := numberOrText()

	_, err := u.Decode(map[string]any{"type": "blob", "value": 1.0})
	assertTerminalUnionError(t, err)
}

func TestUnion_NonObjectInput(t *testing.T) {
	u := numberOrText()

	_, err := u.Decode("number")
	assertTerminalUnionError(t, err)
}

func TestUnion_MissingTypeOrValueKey(t *testing.T) {
	u := numberOrText()

	_, err := u.Decode(map[string]any{"value": 5.0})
	assertTerminalUnionError(t, err)

	_, err = u.Decode(map[string]any{"type": "number"})
	assertTerminalUnionError(t, err)
}

// The first full attempt that succeeds wins, so an earlier case can
// shadow a later one when both accept the payload.
func TestUnion_CaseOrderWins(t *testing.T) {
	u := g.Union().
		Case("wide", g.NumberOf[float64]()).
		Case("narrow", g.IntOf[int]()).
		MustBuild()

	// IntOf would also accept 5.0, but "wide" is declared first and its
	// tag does not match, so only "narrow" can claim it.
	v, err := u.Decode(map[string]any{"type": "narrow", "value": 5.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Tag != "narrow" || v.Value != 5 {
		t.Fatalf("unexpected variant: %#v", v)
	}
}

func TestUnion_EncodeShape(t *testing.T) {
	u := numberOrText()

	enc := u.Encode(forval.Variant{Tag: "number", Value: 5})
	want := map[string]any{"type": "number", "value": float64(5)}
	if diff := cmp.Diff(want, enc); diff != "" {
		t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
	}
}

func TestUnion_RoundTrip(t *testing.T) {
	u := numberOrText()

	in := map[string]any{"type": "text", "value": "hi"}
	v, err := u.Decode(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(in, u.Encode(v)); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnion_EncodePanicsOnUnknownTag(t *testing.T) {
	u := numberOrText()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown tag")
		}
	}()
	u.Encode(forval.Variant{Tag: "blob", Value: 1})
}

func TestUnion_BuildRejectsDuplicateCases(t *testing.T) {
	_, err := g.Union().
		Case("a", g.IntOf[int]()).
		Case("a", g.StringOf[string]()).
		Build()
	if err == nil {
		t.Fatalf("expected duplicate case error")
	}
}

func assertTerminalUnionError(t *testing.T, err error) {
	t.Helper()
	el, ok := forval.AsErrorList(err)
	if !ok || len(el) != 1 {
		t.Fatalf("expected singleton ErrorList, got: %v", err)
	}
	msg, ok := el[0].(*forval.Message)
	if !ok || msg.Text != "Unable to match any variant member." {
		t.Fatalf("expected terminal union message, got: %#v", el[0])
	}
}
