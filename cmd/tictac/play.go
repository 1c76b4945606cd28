package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kmezhov/tictac-tui/internal/core"
	"github.com/kmezhov/tictac-tui/internal/games/tictac"
	"github.com/kmezhov/tictac-tui/internal/platform/tui"
	"github.com/kmezhov/tictac-tui/internal/registry"
	"github.com/kmezhov/tictac-tui/internal/storage"
)

var (
	flagConfig string
	flagMode   string
	flagDelay  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tic-tac-toe",
	Long: `Start a game directly.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Place your mark
  1-9          - Place directly on a cell (numbered left to right, top to bottom)
  M            - Toggle mode (restarts the match)
  R            - Restart the match
  P            - Pause
  Q/Ctrl+C     - Quit

Mode options:
  cpu - Play against the computer (it plays O and moves at random)
  2p  - Two players sharing the keyboard

Examples:
  tictac play
  tictac play --mode 2p
  tictac play --config ./my-tictac.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "cpu", "Game mode: cpu, 2p")
	playCmd.Flags().IntVar(&flagDelay, "delay", -1, "Computer move delay in ms (-1 = use config)")
}

// gameIDForMode maps the --mode flag to a registered variant.
func gameIDForMode(mode string) (string, error) {
	switch mode {
	case "", "cpu":
		return "tictac", nil
	case "2p":
		return "tictac_2p", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want cpu or 2p)", mode)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tictac.SetConfigPath(flagConfig)
	tictac.SetComputerDelay(flagDelay)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open matches database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
