package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmezhov/tictac-tui/internal/registry"
	"github.com/kmezhov/tictac-tui/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show aggregated match statistics",
	Long: `Display aggregated match statistics per game variant.

With no argument, shows statistics for every variant. Pass a variant ID
(tictac, tictac_2p) to show just one.

Examples:
  tictac stats
  tictac stats tictac_2p`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			os.Exit(1)
		}
		filtered := games[:0]
		for _, info := range games {
			if info.ID == gameID {
				filtered = append(filtered, info)
			}
		}
		games = filtered
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for i, info := range games {
		stats, err := store.Stats(info.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", info.Title, info.ID)

		if stats.Played == 0 {
			fmt.Println("  No matches recorded yet.")
			continue
		}

		fmt.Printf("  Played:    %d\n", stats.Played)
		fmt.Printf("  X wins:    %d\n", stats.XWins)
		fmt.Printf("  O wins:    %d\n", stats.OWins)
		fmt.Printf("  Draws:     %d\n", stats.Draws)
		fmt.Printf("  Avg moves: %.1f\n", stats.AvgMoves)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("  Last game: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}
