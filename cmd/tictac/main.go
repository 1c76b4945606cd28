// tictac is a terminal tic-tac-toe game for one or two players.
//
// Usage:
//
//	tictac play              - Play directly (vs computer by default)
//	tictac menu              - Start with a mode picker menu
//	tictac serve             - Start SSH server for remote play
//	tictac history           - Show recent match results
//	tictac stats             - Show aggregated match statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible computer moves
//	--db <path>     - Set database path (default: ~/.tictac/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/kmezhov/tictac-tui/internal/games/tictac"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictac",
	Short: "Tic-Tac-Toe - play in your terminal",
	Long: `Tic-Tac-Toe for the terminal, against a friend or a computer
opponent that picks its moves at random.

Available commands:
  play     - Play directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  history  - View recent match results
  stats    - View aggregated statistics

Examples:
  tictac play
  tictac play --mode 2p
  tictac menu
  tictac serve --ssh :2222
  tictac history --limit 10
  tictac stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tictac/matches.db", "Path to matches database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
}
