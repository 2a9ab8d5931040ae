package forval

import (
	"fmt"
	"sync"

	jsonwire "github.com/reoring/forval/wire/json"
)

// Wire is a pluggable text parser/printer pair. Parse materializes input
// bytes into the canonical foreign value model; Print serializes a
// foreign value back to bytes. Implementations live under wire/ and must
// normalize decoder output (numbers to float64, maps to map[string]any)
// before returning it.
type Wire interface {
	Parse(data []byte) (any, error)
	Print(v any) ([]byte, error)
	Name() string
}

var (
	wireMu      sync.RWMutex
	currentWire Wire = jsonwire.New()
)

// SetWire replaces the process-wide default wire format; nil values are
// ignored.
func SetWire(w Wire) {
	if w == nil {
		return
	}
	wireMu.Lock()
	currentWire = w
	wireMu.Unlock()
}

// UseDefaultWire restores the default JSON wire format.
func UseDefaultWire() {
	wireMu.Lock()
	currentWire = jsonwire.New()
	wireMu.Unlock()
}

func getWire() Wire {
	wireMu.RLock()
	w := currentWire
	wireMu.RUnlock()
	return w
}

// Unmarshal parses data with the default wire format and decodes the
// resulting foreign value with c. Parser failures surface as a singleton
// ErrorList carrying a Message leaf.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	return UnmarshalWire(c, getWire(), data)
}

// Marshal encodes x with c and prints the foreign value with the default
// wire format.
func Marshal[T any](c Codec[T], x T) ([]byte, error) {
	return MarshalWire(c, getWire(), x)
}

// UnmarshalWire is Unmarshal with an explicit wire format.
func UnmarshalWire[T any](c Codec[T], w Wire, data []byte) (T, error) {
	var zero T
	v, err := w.Parse(data)
	if err != nil {
		return zero, Fail(&Message{Text: w.Name() + ": " + err.Error()})
	}
	return c.Decode(v)
}

// MarshalWire is Marshal with an explicit wire format.
func MarshalWire[T any](c Codec[T], w Wire, x T) ([]byte, error) {
	return w.Print(c.Encode(x))
}

// LimitWire wraps another wire format to enforce a maximum input size at
// Parse time. Print is forwarded unchanged. If MaxParse <= 0 the limit is
// disabled.
type LimitWire struct {
	Inner    Wire
	MaxParse int
}

func (w LimitWire) Parse(data []byte) (any, error) {
	if w.MaxParse > 0 && len(data) > w.MaxParse {
		return nil, fmt.Errorf("payload too large: %d > %d", len(data), w.MaxParse)
	}
	return w.Inner.Parse(data)
}

func (w LimitWire) Print(v any) ([]byte, error) { return w.Inner.Print(v) }

func (w LimitWire) Name() string { return w.Inner.Name() }
