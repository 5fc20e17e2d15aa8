package sensitive

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidArgument indicates malformed or out-of-grammar input to a
	// construction-time validator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullValue indicates a value source could not supply a value where
	// one was required at construction. The rendering path never returns
	// this error; an absent value renders as empty text.
	ErrNullValue = errors.New("null value")

	// ErrInvalidPattern indicates a redactable regular expression failed
	// to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrMissingRedactor indicates a required named redactor was not
	// registered.
	ErrMissingRedactor = errors.New("missing redactor")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")
)

// ValidationError reports a construction-time expectation that was not met.
// The message names the expectation and the input that violated it but never
// echoes the offending value itself.
type ValidationError struct {
	Err         error  // Underlying sentinel error (ErrInvalidArgument, etc.)
	Field       string // Input that triggered the error
	Expectation string // Human-readable description of what was expected
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Expectation != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Err.Error(), e.Expectation, e.Field)
	}
	if e.Expectation != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Expectation)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newValidationError creates a ValidationError for construction-time failures.
func newValidationError(sentinel error, field, expectation string) error {
	return &ValidationError{
		Err:         sentinel,
		Field:       field,
		Expectation: expectation,
	}
}
