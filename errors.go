package forval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error is a node in a decode-error tree. Leaves describe what went wrong
// (TypeMismatch, Message); wrappers (AtProperty, AtIndex) record the path
// from the root of the foreign value down to the failing leaf.
//
// The set of implementations is closed; code that inspects errors can
// switch over the four node types exhaustively.
type Error interface {
	error
	decodeError()
}

// TypeMismatch reports a shape/kind mismatch at a leaf: the decoder
// expected one kind of foreign value and saw another.
type TypeMismatch struct {
	Expected string // "Boolean", "Int", "Object", ...
	Actual   string // DescribeValue of the offending value
}

func (e *TypeMismatch) Error() string {
	return "expected " + e.Expected + ", got " + e.Actual
}

// AtProperty locates an inner error under an object property.
type AtProperty struct {
	Name string
	Err  Error
}

func (e *AtProperty) Error() string {
	return "at property " + strconv.Quote(e.Name) + ": " + e.Err.Error()
}

// AtIndex locates an inner error under an array index.
type AtIndex struct {
	Index int
	Err   Error
}

func (e *AtIndex) Error() string {
	return "at index " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

// Message is an ad hoc failure with no structural detail. The union
// engine uses it for tag mismatches and for the terminal
// "Unable to match any variant member." error.
type Message struct {
	Text string
}

func (e *Message) Error() string { return e.Text }

func (*TypeMismatch) decodeError() {}
func (*AtProperty) decodeError()   {}
func (*AtIndex) decodeError()      {}
func (*Message) decodeError()      {}

// ErrorList is a non-empty sequence of decode errors implementing error.
// The decode algorithms short-circuit at the first failing sub-element,
// so every failing Decode call produces a singleton list; the slice shape
// exists so callers can rely on one stable error type.
type ErrorList []Error

// Error summarizes the first few entries.
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(el)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", Leaf(el[i]).Error(), Path(el[i]))
	}
	if n := len(el); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsErrorList extracts an ErrorList from an error using errors.As.
func AsErrorList(err error) (ErrorList, bool) {
	if err == nil {
		return nil, false
	}
	var el ErrorList
	if errors.As(err, &el) {
		return el, true
	}
	return nil, false
}

// Path renders the wrapper chain of e as a JSON Pointer, e.g.
// "/items/2/price". A leaf with no wrappers renders as "/".
func Path(e Error) string {
	b := &strings.Builder{}
	for {
		switch t := e.(type) {
		case *AtProperty:
			b.WriteByte('/')
			b.WriteString(escapePointer(t.Name))
			e = t.Err
		case *AtIndex:
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(t.Index))
			e = t.Err
		default:
			if b.Len() == 0 {
				return "/"
			}
			return b.String()
		}
	}
}

// Leaf returns the innermost node of e, unwrapping AtProperty/AtIndex.
func Leaf(e Error) Error {
	for {
		switch t := e.(type) {
		case *AtProperty:
			e = t.Err
		case *AtIndex:
			e = t.Err
		default:
			return e
		}
	}
}

// escapePointer applies RFC 6901 token escaping.
func escapePointer(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// Fail wraps a single node as a singleton ErrorList.
func Fail(e Error) ErrorList { return ErrorList{e} }

// Mismatch builds a singleton TypeMismatch list describing v.
func Mismatch(expected string, v any) ErrorList {
	return Fail(&TypeMismatch{Expected: expected, Actual: DescribeValue(v)})
}

// WrapProperty rebases a child decode failure under an object property.
// Non-ErrorList errors (e.g. from a wire parser) are carried as Message
// leaves so the path stays intact.
func WrapProperty(name string, err error) ErrorList {
	el := coerceList(err)
	out := make(ErrorList, len(el))
	for i, e := range el {
		out[i] = &AtProperty{Name: name, Err: e}
	}
	return out
}

// WrapIndex rebases a child decode failure under an array index.
func WrapIndex(i int, err error) ErrorList {
	el := coerceList(err)
	out := make(ErrorList, len(el))
	for j, e := range el {
		out[j] = &AtIndex{Index: i, Err: e}
	}
	return out
}

func coerceList(err error) ErrorList {
	if el, ok := AsErrorList(err); ok && len(el) > 0 {
		return el
	}
	return Fail(&Message{Text: err.Error()})
}
