package tin

import "regexp"

// A Social Security Number (SSN) or Individual Taxpayer Identification
// Number (ITIN): nine digits in the form AAA-GG-SSSS, where AAA is the
// area number, GG the group number and SSSS the serial number.
//
// Formatted forms are masked by default; the alternate form ('#') shows
// the delimiters:
//
//	ssn, _ := tin.ParseSSN("123-45-6789")
//	fmt.Sprintf("%s", ssn)    // "#####6789"
//	fmt.Sprintf("%.0s", ssn)  // "#########"
//	fmt.Sprintf("%#.4s", ssn) // "###-##-6789"
type SSN struct {
	usTIN
}

var ssnSegments = []Segment{
	{Name: "area", Length: 3},
	{Name: "group", Length: 2},
	{Name: "serial", Length: 4},
}

// Accepts ###-##-####, #########, and mixed forms with either delimiter
// present or absent.
var ssnPattern = regexp.MustCompile(`^(\d{3})-?(\d{2})-?(\d{4})$`)

// NewSSN creates an SSN from its string segments.
func NewSSN(area, group, serial string) (*SSN, error) {
	validated, err := validateSegments(ssnSegments, []string{area, group, serial})
	if err != nil {
		return nil, err
	}
	return &SSN{newUsTIN(validated)}, nil
}

// NewSSNFromParts creates an SSN from integer segments, zero-padding each
// to its segment width.
func NewSSNFromParts(area, group, serial int) (*SSN, error) {
	validated, err := validateIntSegments(ssnSegments, []int{area, group, serial})
	if err != nil {
		return nil, err
	}
	return &SSN{newUsTIN(validated)}, nil
}

// ParseSSN parses an SSN from a formatted string.
func ParseSSN(value string) (*SSN, error) {
	m := ssnPattern.FindStringSubmatch(value)
	if m == nil {
		return nil, invalidTIN("SSN must be ###-##-#### or #########")
	}
	return &SSN{newUsTIN(m[1:])}, nil
}
