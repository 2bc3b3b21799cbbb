// Package config provides YAML-based configuration for the starting
// preferences and game state, with an embedded default.
package config

import (
	"github.com/mkravets/galactic/internal/game"
)

// Config is the full game configuration file.
type Config struct {
	Preferences PreferencesConfig `yaml:"preferences"`
	Start       StartConfig       `yaml:"start"`
}

// PreferencesConfig defines the startup accessibility settings.
type PreferencesConfig struct {
	TextSize       string `yaml:"text_size"` // "normal" or "large"
	HighContrast   bool   `yaml:"high_contrast"`
	ReducedMotion  bool   `yaml:"reduced_motion"`
	ConfirmActions bool   `yaml:"confirm_actions"`
}

// StartConfig defines the starting game state.
type StartConfig struct {
	ShipName   string `yaml:"ship_name"`
	Callsign   string `yaml:"callsign"`
	Chapter    int    `yaml:"chapter"`
	PowerCells int    `yaml:"power_cells"`
}

// ToPreferences converts the config into a preferences record. Unknown
// text sizes fall back to normal.
func (c Config) ToPreferences() game.Preferences {
	p := game.Preferences{
		HighContrast:   c.Preferences.HighContrast,
		ReducedMotion:  c.Preferences.ReducedMotion,
		ConfirmActions: c.Preferences.ConfirmActions,
	}
	if c.Preferences.TextSize == "large" {
		p.TextSize = game.TextLarge
	}
	return p
}

// ToState converts the config into a starting state record, ignoring
// values that would violate the record's invariants.
func (c Config) ToState() game.State {
	s := game.DefaultState()
	if game.ValidateName(c.Start.ShipName) == nil {
		s.ShipName = c.Start.ShipName
	}
	if game.ValidateName(c.Start.Callsign) == nil {
		s.Callsign = c.Start.Callsign
	}
	if c.Start.Chapter > 0 {
		s.Chapter = c.Start.Chapter
	}
	if c.Start.PowerCells >= 0 {
		s.PowerCells = c.Start.PowerCells
	}
	return s
}
