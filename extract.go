package sensitive

import "strings"

// Extractor converts a contained value into text, before any redaction.
// Extractors must treat absent input (nil slices, zero values) as empty
// text and never fail.
type Extractor[T any] func(value T) string

// Identity returns an extractor for string-like contained values.
func Identity[T ~string]() Extractor[T] {
	return func(value T) string { return string(value) }
}

// Concatenate returns an extractor that joins ordered segments with no
// delimiter. A nil or empty slice yields empty text.
func Concatenate[S ~string]() Extractor[[]S] {
	return joiner[S]("")
}

// Delimit returns an extractor that joins ordered segments, inserting the
// delimiter between (not before or after) consecutive segments.
func Delimit[S ~string](delimiter rune) Extractor[[]S] {
	return joiner[S](string(delimiter))
}

// joiner concatenates segments in order, preserving segment order and
// content exactly.
func joiner[S ~string](separator string) Extractor[[]S] {
	return func(segments []S) string {
		if len(segments) == 0 {
			return ""
		}
		var b strings.Builder
		for i, s := range segments {
			if i > 0 {
				b.WriteString(separator)
			}
			b.WriteString(string(s))
		}
		return b.String()
	}
}
