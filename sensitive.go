package sensitive

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Value is a container for sensitive data that protects it from being
// inadvertently rendered in full. The contained value is never exposed
// directly; every textual form passes through a Renderer that redacts it.
//
// A Value constructed without an explicit renderer renders as empty text
// for every directive. Callers opt in to disclosure through the format
// precision (number of trailing units to reveal) and the alternate form.
//
// Value implements fmt.Formatter. The decoded directive maps onto the
// rendering pipeline as follows:
//
//   - precision ("%.4s"): units to reveal; absent means default disclosure
//   - '#' flag ("%#s"): select the alternate renderer
//   - width and '-' flag: minimum width and left justification, applied
//     after redaction
//   - verb 'S': upper-case the redacted text (fmt has no upper-case flag)
//
// Values are immutable after construction and safe for concurrent use,
// provided the contained type and its Source are.
type Value[T any] struct {
	source   Source[T]
	renderer Renderer[T]
	alt      Renderer[T]
}

// Option configures a Value at construction.
type Option[T any] func(*Value[T])

// WithRenderer sets the primary renderer. Renderers are expected to be
// shared singletons, not rebuilt per value or per call.
func WithRenderer[T any](r Renderer[T]) Option[T] {
	return func(v *Value[T]) { v.renderer = r }
}

// WithAltRenderer sets the renderer selected by the alternate form ('#').
// If not supplied, the alternate form falls back to the primary renderer.
func WithAltRenderer[T any](r Renderer[T]) Option[T] {
	return func(v *Value[T]) { v.alt = r }
}

// New creates a Value containing the given raw value.
func New[T any](value T, opts ...Option[T]) *Value[T] {
	return NewFromSource(Static(value), opts...)
}

// NewFromSource creates a Value whose raw value is retrieved lazily from
// the given source. A nil source behaves as Absent.
func NewFromSource[T any](source Source[T], opts ...Option[T]) *Value[T] {
	v := &Value[T]{source: source}
	for _, opt := range opts {
		opt(v)
	}
	if v.source == nil {
		v.source = Absent[T]()
	}
	if v.renderer == nil {
		v.renderer = Empty[T]()
	}
	if v.alt == nil {
		v.alt = v.renderer
	}
	return v
}

// Render executes the full rendering pipeline: select the primary or
// alternate renderer, retrieve the raw value, redact it, then apply the
// residual formatting. A width of -1 means no minimum.
//
// Render never fails for a well-formed Value; an absent raw value yields
// empty text before padding.
func (v *Value[T]) Render(precision int, alternate bool, width int, leftJustify, upperCase bool) string {
	renderer := v.renderer
	if alternate {
		renderer = v.alt
	}

	var redacted string
	if raw, ok := v.source.Value(); ok {
		redacted = renderer(raw, precision)
	}

	if upperCase {
		redacted = strings.ToUpper(redacted)
	}
	if pad := width - utf8.RuneCountInString(redacted); width > 0 && pad > 0 {
		spaces := strings.Repeat(" ", pad)
		if leftJustify {
			redacted += spaces
		} else {
			redacted = spaces + redacted
		}
	}
	return redacted
}

// Format implements fmt.Formatter. Width, precision and flags are decoded
// from the format state; missing width or precision become the -1
// sentinels. Unknown verbs produce the conventional %! form without
// touching the contained value.
func (v *Value[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'S':
	default:
		fmt.Fprintf(f, "%%!%c(%T)", verb, v)
		return
	}

	precision, ok := f.Precision()
	if !ok {
		precision = -1
	}
	width, ok := f.Width()
	if !ok {
		width = -1
	}

	io.WriteString(f, v.Render(precision, f.Flag('#'), width, f.Flag('-'), verb == 'S'))
}

// String returns the safe default text form, equivalent to
// Render(-1, false, -1, false, false). For a Value with no custom renderer
// this is the empty string.
func (v *Value[T]) String() string {
	return v.Render(-1, false, -1, false, false)
}

// MarshalText emits the safe default text form, so encoders that honor
// encoding.TextMarshaler (encoding/json, yaml) never see the raw value.
//
// This protects only rendering paths: serializers that bypass
// MarshalText, or reflection-based introspection, can still reach the
// contained data.
func (v *Value[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Equal reports whether two containers hold equal raw values. Equality is
// defined over the retrieved raw values, never over rendered text: two
// values that are Equal may still render differently if configured with
// different renderers. This is an intentional exception to "equal objects
// render identically".
func (v *Value[T]) Equal(other *Value[T]) bool {
	if v == nil || other == nil {
		return v == other
	}
	a, aok := v.source.Value()
	b, bok := other.source.Value()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return reflect.DeepEqual(a, b)
}
