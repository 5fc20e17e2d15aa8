package sensitive

// Renderer maps a contained value and a requested precision to redacted
// text. Renderers must be referentially transparent: equal inputs produce
// equal outputs. That makes them safe to share as package-level singletons
// across concurrently rendered values.
//
// A renderer never sees the alternate-form flag; the containing Value
// selects between its primary and alternate renderer before calling.
type Renderer[T any] func(value T, precision int) string

// Empty returns a renderer that produces empty text for any input. It is
// the default for a Value constructed without an explicit renderer, so an
// unconfigured container discloses nothing.
func Empty[T any]() Renderer[T] {
	return func(T, int) string { return "" }
}

// Unredacted returns a renderer that applies the extractor and no
// redaction.
func Unredacted[T any](extract Extractor[T]) Renderer[T] {
	return func(value T, _ int) string { return extract(value) }
}

// Simple composes an extractor with a redactor: the extractor turns the
// contained value into text, the redactor hides as much of it as the
// precision demands.
func Simple[T any](extract Extractor[T], redact Redactor) Renderer[T] {
	return func(value T, precision int) string {
		return redact(precision, extract(value))
	}
}
