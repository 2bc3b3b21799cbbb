package game

import (
	"errors"
	"strconv"
	"strings"
)

// MaxNameLength is the longest allowed ship name or callsign.
const MaxNameLength = 24

// Validation and resource errors. Every one of these is recovered locally
// by the screen that triggered it; none reach the process boundary.
var (
	ErrEmptyName       = errors.New("value cannot be empty")
	ErrNameTooLong     = errors.New("must be 24 characters or fewer")
	ErrInvalidNameChar = errors.New("contains invalid characters")
	ErrNoPowerCells    = errors.New("no power cells available")
)

// ValidateName checks a ship name or callsign: non-empty, at most
// MaxNameLength runes, no control characters.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		return ErrNameTooLong
	}
	for _, r := range runes {
		if r < 32 {
			return ErrInvalidNameChar
		}
	}
	return nil
}

// ParseBoundedChoice parses raw input as a menu ordinal and checks it
// against the set of valid keys. Returns (0, false) on any parse failure
// or out-of-range value; this is the sole error-recovery path for menu
// input, so no error ever escapes to the caller.
func ParseBoundedChoice(raw string, valid map[int]bool) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	if !valid[n] {
		return 0, false
	}
	return n, true
}
