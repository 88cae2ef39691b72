package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/platform/tui"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

const defaultGame = "pairs"

var playCmd = &cobra.Command{
	Use:   "play [deck]",
	Short: "Play a deck",
	Long: `Deal a deck and start playing.

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Flip the card under the cursor
  Mouse click       - Flip the clicked card
  R                 - Deal a new game
  ?                 - Show all keys
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

A mismatched pair turns back over after a second. Once every pair is
found a new game is dealt after five seconds.

Examples:
  pairs play
  pairs play pairs_fruit
  pairs play --seed 42
  pairs play --config ./my-pairs.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown deck %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pairs list' to see available decks.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	out := tui.NewOutput(os.Stdout)
	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Logger: logger,
		Cue:    newCue(logger, out),
		Output: out,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
