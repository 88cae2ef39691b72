// pairs is a memory-matching card game for the terminal.
//
// Usage:
//
//	pairs list              - List available decks
//	pairs play [deck]       - Play a deck (default: pairs)
//	pairs menu              - Pick a deck interactively
//	pairs serve             - Start SSH server for remote play
//	pairs config            - Print or check the game config
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for a reproducible deal
//	--config <path>  - Use a custom game config YAML
//	--log <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/audio"
	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/games/pairs"
	"github.com/vovakirdan/tui-pairs/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Pairs - a memory card game in your terminal",
	Long: `Pairs deals a face-down deck of cards. Flip two at a time to find
matching pairs; found pairs stay face up. The clock starts on your first flip
and stops when the last pair is found.

Available commands:
  list     - Show all available decks
  play     - Play a deck directly
  menu     - Interactive deck picker
  serve    - Start SSH server for remote play
  config   - Print or check the game config

Examples:
  pairs play
  pairs play pairs_fruit
  pairs menu --log /tmp/pairs.log
  pairs serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pairs.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the --log file. The terminal belongs to the game, so
// without one logs are discarded. The returned close func is never nil.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pairs",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// newCue builds the local sound player from the game config. The bell rings
// on out, the same serialized writer the game renders to.
func newCue(logger *log.Logger, out *tui.Output) *audio.Cue {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config for audio", "error", err)
		cfg = config.DefaultPairsConfig()
	}
	logger.Debug("audio player", "mode", cfg.Audio.Mode, "command", cfg.Audio.Command)
	return audio.NewCue(audio.New(cfg.Audio, out), logger)
}
