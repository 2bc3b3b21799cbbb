// galactic is an inclusive, interactive sci-fi narrative game for the
// terminal.
//
// Usage:
//
//	galactic                 - Play the game
//	galactic play            - Play the game (explicit)
//	galactic serve           - Start SSH server for remote play
//	galactic journal         - Show recent voyage journal entries
//
// Global flags:
//
//	--config <path>  - Path to a game config YAML
//	--db <path>      - Journal database path (default: ~/.galactic/journal.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galactic",
	Short: "Galactic Adventure - an interactive sci-fi experience in your terminal",
	Long: `Galactic Adventure is a small, inclusive, menu-driven narrative game.

Adjust accessibility settings, manage your ship's profile, and make
mission choices that spend power cells. All input is recoverable:
invalid selections never end the game.

Available commands:
  play     - Play the game (also the default when no command is given)
  serve    - Start SSH server for remote play
  journal  - View recent voyage journal entries

Examples:
  galactic
  galactic play --config ./my-config.yaml
  galactic serve --ssh :2222
  galactic journal`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.galactic/journal.db", "Path to journal database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
}
