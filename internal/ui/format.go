// Package ui provides the Bubble Tea front-end for the game: the terminal
// model, preference-driven display formatting, and SSH server support via
// Wish. All game rules live in the game package; ui only renders and
// forwards input lines.
package ui

import (
	"strings"
	"time"

	"github.com/mkravets/galactic/internal/game"
)

// noticeDelay is the cosmetic pause after a mission outcome.
const noticeDelay = 600 * time.Millisecond

// Heading formats a screen title. High contrast uppercases and brackets
// it instead of relying on color.
func Heading(title string, p game.Preferences) string {
	if p.HighContrast {
		return "=== " + strings.ToUpper(title) + " ==="
	}
	return title
}

// Rule returns the divider drawn under a heading.
func Rule(title string) string {
	n := len(title) + 6
	if n < 10 {
		n = 10
	}
	if n > 70 {
		n = 70
	}
	return strings.Repeat("-", n)
}

// Body applies the large-text transform: a blank line after every
// rendered line.
func Body(text string, p game.Preferences) string {
	if p.TextSize != game.TextLarge {
		return text
	}
	lines := strings.Split(text, "\n")
	return strings.Join(lines, "\n\n") + "\n"
}

// PacingDelay returns the post-outcome pause, zero under reduced motion.
func PacingDelay(p game.Preferences) time.Duration {
	if p.ReducedMotion {
		return 0
	}
	return noticeDelay
}
