package sensitive

import (
	"fmt"
	"regexp"
	"strings"
)

// Redactor transforms text into a possibly shorter or altered form, hiding
// as much as the precision demands. Negative precision requests the default
// disclosure. Redactors must be stateless and pure; a single Redactor is
// shared across every value that uses it.
type Redactor func(precision int, text string) string

const (
	// DefaultReplacement is the replacement rune for redacted units.
	DefaultReplacement = '#'

	// DefaultDelimiter is the conventional delimiter between segments of a
	// composite identifier.
	DefaultDelimiter = '-'
)

// PassThrough returns the input unchanged regardless of precision.
var PassThrough Redactor = func(_ int, text string) string { return text }

// DefaultMask preserves DefaultDelimiter and replaces other runes with
// DefaultReplacement as needed to achieve the required precision.
var DefaultMask = Mask(DefaultDelimiter)

// Truncate returns a redactor that deletes redactable runes to meet the
// required precision. Runes in the allowable set are never removed; with no
// allowable set every rune is redactable, so truncating n of len runes drops
// the first n.
func Truncate(allowable ...rune) Redactor {
	return replaceFunc("", notIn(allowable))
}

// TruncateFunc returns a redactor that deletes runes matching the predicate
// to meet the required precision.
func TruncateFunc(redactable func(rune) bool) Redactor {
	return replaceFunc("", redactable)
}

// Mask is equivalent to MaskWith(DefaultReplacement, allowable...).
func Mask(allowable ...rune) Redactor {
	return MaskWith(DefaultReplacement, allowable...)
}

// MaskWith returns a redactor that replaces redactable runes with the
// replacement rune as needed to meet the required precision. Runes in the
// allowable set pass through at their original position, which keeps the
// structure of delimited identifiers readable while the digits are hidden.
func MaskWith(replacement rune, allowable ...rune) Redactor {
	return MaskFunc(replacement, notIn(allowable))
}

// MaskFunc returns a redactor that replaces runes matching the predicate
// with the replacement rune. The redaction count is computed over matching
// runes only; non-matching runes and matches beyond the count are preserved
// exactly, position and value.
func MaskFunc(replacement rune, redactable func(rune) bool) Redactor {
	return replaceFunc(string(replacement), redactable)
}

// replaceFunc is the predicate-selective engine behind Truncate and Mask.
// It counts the runes matching the predicate, asks Redactions how many to
// hide, then rewrites the input in a single left-to-right pass.
func replaceFunc(replacement string, redactable func(rune) bool) Redactor {
	return func(precision int, text string) string {
		if text == "" {
			return ""
		}
		count := 0
		for _, r := range text {
			if redactable(r) {
				count++
			}
		}
		n := redactions(precision, count)
		if n == 0 {
			return text
		}
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			if n > 0 && redactable(r) {
				b.WriteString(replacement)
				n--
			} else {
				b.WriteRune(r)
			}
		}
		return b.String()
	}
}

// notIn builds a predicate matching any rune outside the allowable set.
// An empty set makes every rune redactable.
func notIn(allowable []rune) func(rune) bool {
	if len(allowable) == 0 {
		return func(rune) bool { return true }
	}
	set := make(map[rune]bool, len(allowable))
	for _, r := range allowable {
		set[r] = true
	}
	return func(r rune) bool { return !set[r] }
}

// Redact builds a redactor from a regular expression. The input is viewed as
// alternating non-redactable text and redactable segments; the leftmost
// non-overlapping matches of the redactable pattern are counted, compared
// with the requested precision to decide how many to redact, and that many
// matches are replaced in order of occurrence with the replacement string.
// All non-matching text and matches beyond that number are left unchanged.
//
// An empty replacement deletes matches, which generalizes truncation; a
// single-rune replacement generalizes masking. An empty pattern defaults to
// matching every single rune.
//
// Pattern compilation errors surface here, at construction; the returned
// redactor itself never fails.
func Redact(replacement, redactable string) (Redactor, error) {
	if redactable == "" {
		redactable = "."
	}
	re, err := regexp.Compile(redactable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return func(precision int, text string) string {
		if text == "" {
			return ""
		}
		matches := re.FindAllStringIndex(text, -1)
		n := redactions(precision, len(matches))
		if n == 0 {
			return text
		}
		var b strings.Builder
		b.Grow(len(text))
		last := 0
		for i := 0; i < n; i++ {
			b.WriteString(text[last:matches[i][0]])
			b.WriteString(replacement)
			last = matches[i][1]
		}
		b.WriteString(text[last:])
		return b.String()
	}, nil
}

// TruncatePattern is equivalent to Redact("", redactable).
func TruncatePattern(redactable string) (Redactor, error) {
	return Redact("", redactable)
}

// MaskPattern is equivalent to MaskPatternWith(DefaultReplacement, redactable).
func MaskPattern(redactable string) (Redactor, error) {
	return MaskPatternWith(DefaultReplacement, redactable)
}

// MaskPatternWith returns a redactor that replaces matching segments with a
// fixed rune to meet the required precision.
func MaskPatternWith(replacement rune, redactable string) (Redactor, error) {
	return Redact(string(replacement), redactable)
}
