package tin

import (
	"fmt"

	"github.com/zoobzio/sensitive"
)

// Delimiter separates the segments of a US TIN in its delimited form.
const Delimiter = '-'

// Shared renderers for all US TINs. The primary form joins the segments
// without a delimiter and masks digits; the alternate form ('#' flag)
// keeps the delimiters visible and masks only the digits around them.
var (
	usMasked = sensitive.Simple(
		sensitive.Concatenate[string](),
		sensitive.Mask(),
	)
	usMaskedDelimited = sensitive.Simple(
		sensitive.Delimit[string](Delimiter),
		sensitive.MaskFunc(sensitive.DefaultReplacement, func(r rune) bool { return r != Delimiter }),
	)
)

// Segment describes one fixed-width digit group of a TIN grammar.
type Segment struct {
	Name   string
	Length int
}

// max returns the largest value representable in Length digits.
func (s Segment) max() int {
	m := 1
	for i := 0; i < s.Length; i++ {
		m *= 10
	}
	return m - 1
}

// validate checks that value is exactly Length digits.
func (s Segment) validate(value string) (string, error) {
	if len(value) != s.Length {
		return "", invalidTIN("%s segment must be %d digits", s.Name, s.Length)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return "", invalidTIN("%s segment must be %d digits", s.Name, s.Length)
		}
	}
	return value, nil
}

// validateInt checks the range and zero-pads to Length digits.
func (s Segment) validateInt(value int) (string, error) {
	if value < 1 || value > s.max() {
		return "", invalidTIN("%s segment out of range 1-%d", s.Name, s.max())
	}
	return fmt.Sprintf("%0*d", s.Length, value), nil
}

// validateSegments validates an ordered sequence of string segments
// against the expected grammar. Nil input or a count mismatch fails here,
// at construction; rendering never fails.
func validateSegments(expected []Segment, segments []string) ([]string, error) {
	if len(segments) != len(expected) {
		return nil, invalidTIN("expected %d segments, got %d", len(expected), len(segments))
	}
	validated := make([]string, len(expected))
	for i, seg := range expected {
		v, err := seg.validate(segments[i])
		if err != nil {
			return nil, err
		}
		validated[i] = v
	}
	return validated, nil
}

// validateIntSegments is validateSegments for integer input.
func validateIntSegments(expected []Segment, segments []int) ([]string, error) {
	if len(segments) != len(expected) {
		return nil, invalidTIN("expected %d segments, got %d", len(expected), len(segments))
	}
	validated := make([]string, len(expected))
	for i, seg := range expected {
		v, err := seg.validateInt(segments[i])
		if err != nil {
			return nil, err
		}
		validated[i] = v
	}
	return validated, nil
}

// usTIN is the shared core of US taxpayer identification numbers: a
// sensitive container over validated digit segments with the US renderers.
type usTIN struct {
	*sensitive.Value[[]string]
}

func newUsTIN(segments []string) usTIN {
	return usTIN{sensitive.New(segments,
		sensitive.WithRenderer(usMasked),
		sensitive.WithAltRenderer(usMaskedDelimited),
	)}
}

// Issuer returns "US".
func (usTIN) Issuer() string { return "US" }

// Parse identifies and parses a US TIN by its length: nine digits are
// ambiguous and resolved by preferEIN, ten characters must be an EIN
// (##-#######), eleven an SSN (###-##-####).
func Parse(raw string, preferEIN bool) (NationalTIN, error) {
	switch len(raw) {
	case 0:
		return nil, invalidTIN("cannot parse an empty TIN")
	case 9:
		if preferEIN {
			return ParseEIN(raw)
		}
		return ParseSSN(raw)
	case 10:
		return ParseEIN(raw)
	case 11:
		return ParseSSN(raw)
	default:
		return nil, invalidTIN("cannot identify TIN format (length %d)", len(raw))
	}
}
