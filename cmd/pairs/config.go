package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game config",
	Long: `Print the built-in game config, or with --check load and validate the
config that 'pairs play' would use.

Configs are searched in this order:
  1. --config <path>
  2. ~/.pairs/configs/pairs.yaml
  3. ./configs/pairs.yaml
  4. the built-in defaults

Examples:
  pairs config > ~/.pairs/configs/pairs.yaml
  pairs config --check
  pairs config --check --config ./my-pairs.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Load and validate the active config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheck {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Config OK")
	fmt.Printf("  board:   %d columns, %dx%d cards\n", cfg.Board.Columns, cfg.Board.CardWidth, cfg.Board.CardHeight)
	fmt.Printf("  timing:  mismatch %s, new game %s, clock %s\n",
		cfg.Timing.MismatchDelay, cfg.Timing.ResetDelay, cfg.Timing.TickInterval)
	fmt.Printf("  audio:   %s\n", cfg.Audio.Mode)
	names := make([]string, 0, len(cfg.Palettes))
	for name := range cfg.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  palette: %s (%d faces)\n", name, len(cfg.Palettes[name].Faces))
	}
}
