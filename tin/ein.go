package tin

import "regexp"

// An Employer Identification Number (EIN), also known as a Federal Tax
// Identification Number: nine digits in the form CC-SSSSSSS, where CC is
// the campus code of the issuing IRS campus and SSSSSSS the serial number.
//
// Formatted forms are masked by default; the alternate form ('#') shows
// the delimiter:
//
//	ein, _ := tin.ParseEIN("12-3456789")
//	fmt.Sprintf("%s", ein)    // "#####6789"
//	fmt.Sprintf("%#.4s", ein) // "##-###6789"
type EIN struct {
	usTIN
}

var einSegments = []Segment{
	{Name: "campus", Length: 2},
	{Name: "serial", Length: 7},
}

// Accepts ##-####### and #########.
var einPattern = regexp.MustCompile(`^(\d{2})-?(\d{7})$`)

// NewEIN creates an EIN from its string segments.
func NewEIN(campus, serial string) (*EIN, error) {
	validated, err := validateSegments(einSegments, []string{campus, serial})
	if err != nil {
		return nil, err
	}
	return &EIN{newUsTIN(validated)}, nil
}

// NewEINFromParts creates an EIN from integer segments, zero-padding each
// to its segment width.
func NewEINFromParts(campus, serial int) (*EIN, error) {
	validated, err := validateIntSegments(einSegments, []int{campus, serial})
	if err != nil {
		return nil, err
	}
	return &EIN{newUsTIN(validated)}, nil
}

// ParseEIN parses an EIN from a formatted string.
func ParseEIN(value string) (*EIN, error) {
	m := einPattern.FindStringSubmatch(value)
	if m == nil {
		return nil, invalidTIN("EIN must be ##-####### or #########")
	}
	return &EIN{newUsTIN(m[1:])}, nil
}
