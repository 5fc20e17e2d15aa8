// Package sensitive renders values that must never be disclosed in full,
// such as tax identifiers, account numbers and credentials, as redacted
// text unless a caller explicitly requests more through a formatting
// directive.
//
// # Containers
//
// Value[T] wraps a raw value behind a Source and only ever exposes it
// through a Renderer. A Value with no renderer renders as empty text for
// every directive, so the unexamined string form of a container is always
// safe:
//
//	v := sensitive.New("hunter2")
//	fmt.Sprintf("%s", v) // ""
//
// # Renderers
//
// A Renderer is a pure function (value, precision) -> text, composed from
// an Extractor (value -> text) and a Redactor (precision, text -> text):
//
//	masked := sensitive.Simple(sensitive.Identity[string](), sensitive.Mask())
//	ssn := sensitive.New("123-45-6789", sensitive.WithRenderer(masked))
//	fmt.Sprintf("%s", ssn)   // "######-6789" -> half of all runes hidden
//	fmt.Sprintf("%.4s", ssn) // last four runes visible
//
// Each Value carries a primary and an alternate renderer; the alternate is
// selected by the '#' flag. The renderers themselves never see the flag.
//
// # Format Directives
//
// Value implements fmt.Formatter:
//
//	%s     default disclosure (half of the redactable units hidden)
//	%.0s   full redaction
//	%.4s   reveal the last 4 units
//	%#s    alternate renderer (often delimiter-preserving or unredacted)
//	%10s   pad to width 10, %-10s left-justified
//	%S     upper-case the redacted text
//
// # Redactors
//
// Built-in strategies, all delegating their disclosure arithmetic to
// Redactions:
//
//   - PassThrough: no redaction
//   - Truncate: delete redactable runes
//   - Mask / MaskWith / MaskFunc: replace redactable runes in place,
//     preserving delimiters and other allowable runes
//   - Redact / MaskPattern / TruncatePattern: regex-segment engine; the
//     replacement string generalizes masking (one rune) and truncation
//     (empty)
//
// # Segmented Values
//
// Composite identifiers are ordered segment slices; Concatenate and
// Delimit join them before redaction:
//
//	joined := sensitive.Simple(sensitive.Concatenate[string](), sensitive.Mask())
//	parts := sensitive.New([]string{"123", "45", "6789"},
//	    sensitive.WithRenderer(joined))
//	fmt.Sprintf("%s", parts) // "#####6789"
//
// # Registration
//
// Renderers are shared singletons. Register declares them once per
// contained type and Wrap builds containers from the table:
//
//	sensitive.Register[string](masked, nil)
//	v := sensitive.Wrap("4111-1111-1111-1111")
//
// # Scrubbing
//
// Scrubber produces safe-to-log copies of tagged structs:
//
//	type User struct {
//	    ID    string `json:"id"`
//	    SSN   string `json:"ssn" disclose.mask:"digits"`
//	    Token string `json:"token" disclose.redact:"***"`
//	}
//
//	func (u User) Clone() User { return u }
//
//	scrubber, _ := sensitive.Use[User]()
//	safe, _ := scrubber.Scrub(ctx, &user)
//
// # Scope
//
// This is a display-time redaction layer, not a cryptographic protection
// scheme. MarshalText keeps the raw value away from text-based encoders,
// but redaction does not survive serializers that bypass the rendering
// path or reflection-based introspection.
package sensitive
