package sensitive

// Concealable bypasses reflection-based scrubbing. When a type implements
// this interface, Scrubber calls Conceal on the clone instead of walking
// struct tags.
//
// This provides two benefits:
// 1. Performance: Avoid reflection overhead for hot paths
// 2. Custom logic: Implement redaction that can't be expressed via tags
//
// The interface is designed for codegen: a code generator can implement
// Conceal from the disclose tags, providing compile-time safety and
// optimal performance.
type Concealable interface {
	// Conceal redacts the receiver's sensitive fields. The redactors map
	// contains all registered redactors keyed by name. The receiver is a
	// clone, so mutations are safe.
	Conceal(redactors map[RedactorName]Redactor) error
}
