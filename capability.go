package sensitive

import "unicode"

// RedactorName identifies a built-in redaction strategy.
// Use these constants in struct tags: `disclose.mask:"digits"`
type RedactorName string

const (
	// RedactAll masks every rune up to the required precision.
	RedactAll RedactorName = "all"

	// RedactDigits masks digits only, preserving delimiters and any other
	// structural runes in place.
	RedactDigits RedactorName = "digits"

	// RedactDelimited masks every rune except '-', the conventional
	// segment delimiter.
	RedactDelimited RedactorName = "delimited"

	// RedactTruncate deletes runes up to the required precision instead of
	// masking them.
	RedactTruncate RedactorName = "truncate"

	// RedactNone passes the value through unchanged.
	RedactNone RedactorName = "none"
)

// validRedactorNames contains all valid redactor names for tag validation.
var validRedactorNames = map[RedactorName]bool{
	RedactAll:       true,
	RedactDigits:    true,
	RedactDelimited: true,
	RedactTruncate:  true,
	RedactNone:      true,
}

// IsValidRedactorName returns true if the name is a known redactor.
func IsValidRedactorName(name RedactorName) bool {
	return validRedactorNames[name]
}

// builtinRedactors returns the default redactor registry.
func builtinRedactors() map[RedactorName]Redactor {
	return map[RedactorName]Redactor{
		RedactAll:       Mask(),
		RedactDigits:    MaskFunc(DefaultReplacement, unicode.IsDigit),
		RedactDelimited: DefaultMask,
		RedactTruncate:  Truncate(),
		RedactNone:      PassThrough,
	}
}
