package config

import (
	_ "embed"
)

//go:embed defaults/galactic.yaml
var defaultGalacticYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last fallback if the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Preferences: PreferencesConfig{
			TextSize:       "normal",
			HighContrast:   false,
			ReducedMotion:  false,
			ConfirmActions: true,
		},
		Start: StartConfig{
			ShipName:   "Vanguard",
			Callsign:   "Pilot",
			Chapter:    1,
			PowerCells: 3,
		},
	}
}
