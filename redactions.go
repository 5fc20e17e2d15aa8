package sensitive

import "fmt"

// Redactions calculates how many of count redactable units to hide so that
// precision units remain visible.
//
// A negative precision requests the default disclosure: half of the available
// units are redacted, rounding up. A precision of zero or more reveals the
// last precision units; anything at or beyond count reveals everything.
//
// The result is always in the range [0, count]. Every redactor in this
// package delegates its disclosure arithmetic here so that all strategies
// agree on how much to hide.
func Redactions(precision, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: redactable count must be non-negative", ErrInvalidArgument)
	}
	switch {
	case precision < 0:
		return (count + 1) / 2, nil
	case precision < count:
		return count - precision, nil
	default:
		return 0, nil
	}
}

// redactions is the infallible form used by redactors, whose counts are
// derived from scanning the input and cannot be negative.
func redactions(precision, count int) int {
	n, _ := Redactions(precision, count)
	return n
}
