package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmezhov/tictac-tui/internal/registry"
	"github.com/kmezhov/tictac-tui/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recent match results",
	Long: `Display recent match results, newest first.

With no argument, shows matches across all modes. Pass a variant ID
(tictac, tictac_2p) to filter.

Examples:
  tictac history
  tictac history tictac
  tictac history --limit 50`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of matches to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var matches []storage.MatchEntry
	if gameID != "" {
		matches, err = store.MatchesByGame(gameID, flagHistoryLimit)
	} else {
		matches, err = store.RecentMatches(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tictac play' to record the first one!")
		return
	}

	fmt.Println("Recent matches:")
	fmt.Println()
	fmt.Printf("  %-17s  %-13s  %-7s  %-6s  %s\n", "Played", "Mode", "Winner", "Moves", "Time")
	fmt.Printf("  %-17s  %-13s  %-7s  %-6s  %s\n", "------", "----", "------", "-----", "----")

	for _, e := range matches {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-17s  %-13s  %-7s  %-6d  %ds\n", dateStr, e.Mode, e.Winner, e.Moves, e.Duration)
	}
}
