// Package game contains the pure narrative game logic: the preference and
// state records, input validation, and the menu session state machine.
// It has no terminal or I/O dependencies; the ui package drives it.
package game

// TextSize selects between the two supported text presentation modes.
type TextSize int

const (
	TextNormal TextSize = iota
	TextLarge
)

// String returns the human-readable name for the text size.
func (t TextSize) String() string {
	if t == TextLarge {
		return "large"
	}
	return "normal"
}

// Preferences holds the accessibility and interaction settings.
// Created once at startup and mutated only by the settings screen.
type Preferences struct {
	TextSize       TextSize
	HighContrast   bool
	ReducedMotion  bool
	ConfirmActions bool
}

// DefaultPreferences returns the startup preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		TextSize:       TextNormal,
		HighContrast:   false,
		ReducedMotion:  false,
		ConfirmActions: true,
	}
}

// ToggleTextSize flips between normal and large text.
func (p *Preferences) ToggleTextSize() {
	if p.TextSize == TextNormal {
		p.TextSize = TextLarge
	} else {
		p.TextSize = TextNormal
	}
}
