package game

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyName},
		{"too long", strings.Repeat("x", 25), ErrNameTooLong},
		{"control character", "a\x01b", ErrInvalidNameChar},
		{"newline", "a\nb", ErrInvalidNameChar},
		{"valid", "Vanguard", nil},
		{"max length", strings.Repeat("x", 24), nil},
		{"spaces allowed", "Star Runner", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseBoundedChoiceRejectsNonIntegers(t *testing.T) {
	valid := map[int]bool{1: true, 2: true, 3: true}

	for _, raw := range []string{"", "abc", "1.5", "one", "2x", "--", "!"} {
		if _, ok := ParseBoundedChoice(raw, valid); ok {
			t.Errorf("ParseBoundedChoice(%q) accepted non-integer input", raw)
		}
	}
}

func TestParseBoundedChoiceRejectsOutOfRange(t *testing.T) {
	valid := map[int]bool{1: true, 2: true, 3: true}

	for _, raw := range []string{"0", "4", "-1", "99", "100000"} {
		if _, ok := ParseBoundedChoice(raw, valid); ok {
			t.Errorf("ParseBoundedChoice(%q) accepted out-of-range input", raw)
		}
	}
}

func TestParseBoundedChoiceAcceptsValidKeys(t *testing.T) {
	valid := map[int]bool{1: true, 2: true, 3: true, 8: true}

	tests := []struct {
		raw  string
		want int
	}{
		{"1", 1},
		{"3", 3},
		{"8", 8},
		{" 2 ", 2}, // surrounding whitespace is ignored
	}

	for _, tt := range tests {
		got, ok := ParseBoundedChoice(tt.raw, valid)
		if !ok {
			t.Errorf("ParseBoundedChoice(%q) rejected valid input", tt.raw)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBoundedChoice(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
