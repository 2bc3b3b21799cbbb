package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkravets/galactic/internal/config"
	"github.com/mkravets/galactic/internal/storage"
	"github.com/mkravets/galactic/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Galactic Adventure",
	Long: `Start the game locally.

Every screen lists numbered options; type a number and press Enter.
Invalid input shows a notice and keeps you on the same screen.

Accessibility settings (text size, high contrast, reduced motion,
action confirmations) are available from the in-game Settings screen
or via a config file.

Examples:
  galactic play
  galactic play --config ./my-config.yaml
  galactic play --db ./journal.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	prefs := cfg.ToPreferences()
	state := cfg.ToState()

	// Open journal storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := ui.Run(&prefs, &state, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
