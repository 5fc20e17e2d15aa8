package sensitive

import (
	"errors"
	"testing"
	"unicode"
)

func TestPassThrough(t *testing.T) {
	for _, precision := range []int{-1, 0, 4, 100} {
		if got := PassThrough(precision, "123-45-6789"); got != "123-45-6789" {
			t.Errorf("PassThrough(%d) = %q, want input unchanged", precision, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	truncate := Truncate()

	tests := []struct {
		name      string
		precision int
		input     string
		expected  string
	}{
		{"default drops leading half", -1, "123456789", "6789"},
		{"show last four", 4, "123456789", "6789"},
		{"zero precision drops all", 0, "123456789", ""},
		{"full precision keeps all", 9, "123456789", "123456789"},
		{"empty input", 4, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.precision, tt.input); got != tt.expected {
				t.Errorf("Truncate()(%d, %q) = %q, want %q", tt.precision, tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncateAllowable(t *testing.T) {
	truncate := Truncate('-')

	// Delimiters survive, digits are deleted up to the precision.
	if got := truncate(4, "123-45-6789"); got != "--6789" {
		t.Errorf("Truncate('-')(4, ...) = %q, want %q", got, "--6789")
	}
}

func TestMask(t *testing.T) {
	mask := Mask()

	tests := []struct {
		name      string
		precision int
		input     string
		expected  string
	}{
		{"default masks leading half", -1, "123456789", "#####6789"},
		{"show last four", 4, "123456789", "#####6789"},
		{"zero precision masks all", 0, "123456789", "#########"},
		{"full precision masks none", 9, "123456789", "123456789"},
		{"empty input", -1, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mask(tt.precision, tt.input); got != tt.expected {
				t.Errorf("Mask()(%d, %q) = %q, want %q", tt.precision, tt.input, got, tt.expected)
			}
		})
	}
}

func TestMaskWith(t *testing.T) {
	mask := MaskWith('*', '-')

	if got := mask(4, "123-45-6789"); got != "***-**-6789" {
		t.Errorf("MaskWith('*', '-')(4, ...) = %q, want %q", got, "***-**-6789")
	}
}

func TestDefaultMask(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		input     string
		expected  string
	}{
		{"delimiters preserved at default", -1, "123-45-6789", "###-##-6789"},
		{"show last four", 4, "123-45-6789", "###-##-6789"},
		{"zero precision", 0, "123-45-6789", "###-##-####"},
		{"full precision", 9, "123-45-6789", "123-45-6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultMask(tt.precision, tt.input); got != tt.expected {
				t.Errorf("DefaultMask(%d, %q) = %q, want %q", tt.precision, tt.input, got, tt.expected)
			}
		})
	}
}

func TestMaskFuncPreservesNonMatching(t *testing.T) {
	mask := MaskFunc('#', unicode.IsDigit)

	// Every non-digit keeps its position and value, including after the
	// redacted region; digits beyond the count stay visible.
	input := "a1b2-c3d4e5"
	got := mask(2, input)
	want := "a#b#-c#d4e5"
	if got != want {
		t.Errorf("MaskFunc(2, %q) = %q, want %q", input, got, want)
	}
}

func TestRedactPattern(t *testing.T) {
	tests := []struct {
		name        string
		replacement string
		redactable  string
		precision   int
		input       string
		expected    string
	}{
		{"empty pattern matches every rune", "#", "", 4, "123456789", "#####6789"},
		{"digit pattern keeps delimiters", "#", `\d`, 4, "123-45-6789", "###-##-6789"},
		{"empty replacement deletes", "", `\d`, 4, "123-45-6789", "--6789"},
		{"multi-rune segments", "X", `\d{2}`, 1, "12345678", "XXX78"},
		{"wide replacement", "**", `\d`, 7, "123456789", "****3456789"},
		{"no matches", "#", `[a-z]`, -1, "12345", "12345"},
		{"empty input", "#", `\d`, -1, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			red, err := Redact(tt.replacement, tt.redactable)
			if err != nil {
				t.Fatalf("Redact(%q, %q) error: %v", tt.replacement, tt.redactable, err)
			}
			if got := red(tt.precision, tt.input); got != tt.expected {
				t.Errorf("Redact(%q, %q)(%d, %q) = %q, want %q",
					tt.replacement, tt.redactable, tt.precision, tt.input, got, tt.expected)
			}
		})
	}
}

func TestRedactInvalidPattern(t *testing.T) {
	_, err := Redact("#", "[unterminated")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Redact with bad pattern error = %v, want ErrInvalidPattern", err)
	}
}

func TestMaskPatternAndTruncatePattern(t *testing.T) {
	mask, err := MaskPattern(`\d`)
	if err != nil {
		t.Fatalf("MaskPattern: %v", err)
	}
	if got := mask(0, "1a2b"); got != "#a#b" {
		t.Errorf("MaskPattern(0, %q) = %q, want %q", "1a2b", got, "#a#b")
	}

	trunc, err := TruncatePattern(`\d`)
	if err != nil {
		t.Fatalf("TruncatePattern: %v", err)
	}
	if got := trunc(0, "1a2b"); got != "ab" {
		t.Errorf("TruncatePattern(0, %q) = %q, want %q", "1a2b", got, "ab")
	}
}

func TestRedactorPurity(t *testing.T) {
	mask := Mask('-')
	first := mask(4, "123-45-6789")
	for i := 0; i < 10; i++ {
		if got := mask(4, "123-45-6789"); got != first {
			t.Fatalf("redactor not pure: call %d = %q, first = %q", i, got, first)
		}
	}
}
