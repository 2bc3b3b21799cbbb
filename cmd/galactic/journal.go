package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravets/galactic/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalClear bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the voyage journal",
	Long: `Display recent voyage journal entries.

Each completed mission records the ship, callsign, committed choice,
chapter reached, and remaining resources.

Examples:
  galactic journal
  galactic journal --limit 25
  galactic journal --clear`,
	Run: runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagJournalLimit, "limit", 10, "Number of entries to show")
	journalCmd.Flags().BoolVar(&flagJournalClear, "clear", false, "Delete all journal entries")
}

func runJournal(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagJournalClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing journal: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Journal cleared.")
		return
	}

	entries, err := store.RecentEntries(flagJournalLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving journal: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Voyage Journal")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No missions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'galactic play' and complete a mission to start the journal.")
		return
	}

	// Print header
	fmt.Printf("  %-24s  %-12s  %-7s  %-8s  %-6s  %-8s  %s\n",
		"Ship", "Callsign", "Choice", "Chapter", "Cells", "Packets", "Date")
	fmt.Printf("  %-24s  %-12s  %-7s  %-8s  %-6s  %-8s  %s\n",
		"----", "--------", "------", "-------", "-----", "-------", "----")

	// Print entries
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-24s  %-12s  %-7s  %-8d  %-6d  %-8d  %s\n",
			e.ShipName, e.Callsign, e.Choice, e.Chapter, e.PowerCellsLeft, e.PacketsSent, dateStr)
	}

	total, err := store.Count()
	if err == nil && total > len(entries) {
		fmt.Println()
		fmt.Printf("Showing %d of %d entries.\n", len(entries), total)
	}
}
