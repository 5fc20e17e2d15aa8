package sensitive

import "sync"

// Source supplies the contained value on demand. The second result reports
// whether a value is available; an absent value renders as empty text
// rather than failing.
//
// A Source must be idempotent and safe for concurrent use: repeated calls
// during the lifetime of a Value must return an equal result, because the
// same container may be formatted from multiple goroutines. Wrap a
// non-deterministic supplier in Memoize to guarantee this.
//
// Holding the raw value behind a Source rather than a plain field is also
// the hook for storage-layer concerns: a source that does not survive
// serialization keeps the raw value out of anything that persists the
// container.
type Source[T any] interface {
	Value() (T, bool)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func() (T, bool)

func (f SourceFunc[T]) Value() (T, bool) { return f() }

// Static returns a source that always supplies the given value.
func Static[T any](value T) Source[T] {
	return staticSource[T]{value: value}
}

type staticSource[T any] struct {
	value T
}

func (s staticSource[T]) Value() (T, bool) { return s.value, true }

// Absent returns a source that never supplies a value. A Value built on it
// renders as empty text for every directive.
func Absent[T any]() Source[T] {
	return SourceFunc[T](func() (T, bool) {
		var zero T
		return zero, false
	})
}

// Memoize wraps a supplier so it is invoked at most once. All callers see
// the first result, which makes any supplier satisfy the idempotence
// requirement of Source.
func Memoize[T any](supply func() (T, bool)) Source[T] {
	return &memoSource[T]{supply: supply}
}

type memoSource[T any] struct {
	once   sync.Once
	supply func() (T, bool)
	value  T
	ok     bool
}

func (m *memoSource[T]) Value() (T, bool) {
	m.once.Do(func() {
		m.value, m.ok = m.supply()
		m.supply = nil
	})
	return m.value, m.ok
}
