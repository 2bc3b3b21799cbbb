package ui

import (
	"strings"
	"testing"

	"github.com/mkravets/galactic/internal/game"
)

func TestHeadingHighContrast(t *testing.T) {
	p := game.DefaultPreferences()

	if got := Heading("Settings", p); got != "Settings" {
		t.Errorf("Heading() = %q, want unchanged title", got)
	}

	p.HighContrast = true
	if got := Heading("Settings", p); got != "=== SETTINGS ===" {
		t.Errorf("Heading() high contrast = %q", got)
	}
}

func TestBodyLargeTextInsertsBlankLines(t *testing.T) {
	p := game.DefaultPreferences()
	text := "one\ntwo\nthree"

	if got := Body(text, p); got != text {
		t.Errorf("Body() normal = %q, want unchanged", got)
	}

	p.TextSize = game.TextLarge
	got := Body(text, p)
	want := "one\n\ntwo\n\nthree\n"
	if got != want {
		t.Errorf("Body() large = %q, want %q", got, want)
	}
}

func TestRuleBounds(t *testing.T) {
	if got := Rule("Hi"); got != strings.Repeat("-", 10) {
		t.Errorf("Rule() short title = %q, want 10 dashes", got)
	}
	if got := Rule(strings.Repeat("x", 100)); got != strings.Repeat("-", 70) {
		t.Errorf("Rule() long title = %d dashes, want 70", len(got))
	}
	if got := Rule("Galactic Adventure"); len(got) != 24 {
		t.Errorf("Rule() = %d dashes, want title length + 6", len(got))
	}
}

func TestPacingDelaySkippedUnderReducedMotion(t *testing.T) {
	p := game.DefaultPreferences()
	if PacingDelay(p) == 0 {
		t.Error("PacingDelay() = 0 with motion enabled")
	}

	p.ReducedMotion = true
	if PacingDelay(p) != 0 {
		t.Error("PacingDelay() != 0 under reduced motion")
	}
}
