package sensitive

import (
	"errors"
	"testing"
)

func TestRedactions(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		count     int
		expected  int
	}{
		{"default redacts half rounding up", -1, 9, 5},
		{"default on even count", -1, 8, 4},
		{"default on single unit", -1, 1, 1},
		{"default on empty", -1, 0, 0},
		{"any negative precision is default", -7, 9, 5},
		{"show last four of nine", 4, 9, 5},
		{"zero precision hides all", 0, 9, 9},
		{"precision equal to count shows all", 9, 9, 0},
		{"precision beyond count shows all", 12, 9, 0},
		{"zero of zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Redactions(tt.precision, tt.count)
			if err != nil {
				t.Fatalf("Redactions(%d, %d) returned error: %v", tt.precision, tt.count, err)
			}
			if n != tt.expected {
				t.Errorf("Redactions(%d, %d) = %d, want %d", tt.precision, tt.count, n, tt.expected)
			}
			if n < 0 || n > tt.count {
				t.Errorf("Redactions(%d, %d) = %d, outside [0, %d]", tt.precision, tt.count, n, tt.count)
			}
		})
	}
}

func TestRedactionsNegativeCount(t *testing.T) {
	_, err := Redactions(-1, -1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Redactions(-1, -1) error = %v, want ErrInvalidArgument", err)
	}
}
