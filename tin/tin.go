// Package tin provides taxpayer identification numbers built on the
// sensitive rendering core. A TIN is a fixed-grammar sequence of digit
// segments; validation happens at construction, and every textual form is
// redacted by default.
package tin

import (
	"fmt"

	"github.com/zoobzio/sensitive"
)

// NationalTIN is a taxpayer identification number issued by a national
// authority. Its formatted forms are redacted by default; disclosure is
// requested through the format directive (see package sensitive).
type NationalTIN interface {
	fmt.Formatter
	fmt.Stringer

	// Issuer returns the ISO 3166-1 alpha-2 code of the issuing country.
	Issuer() string
}

// InvalidTINError reports a TIN that failed construction-time validation.
// The message names the violated expectation; it never echoes the digits
// themselves.
type InvalidTINError struct {
	Expectation string
}

func (e *InvalidTINError) Error() string {
	return "invalid TIN: " + e.Expectation
}

func (e *InvalidTINError) Unwrap() error {
	return sensitive.ErrInvalidArgument
}

// invalidTIN creates an InvalidTINError with a formatted expectation.
func invalidTIN(format string, args ...any) error {
	return &InvalidTINError{Expectation: fmt.Sprintf(format, args...)}
}
