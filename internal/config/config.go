// Package config provides YAML-based configuration for the pairs game:
// board layout, timings, audio and the card palettes.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Palette names shipped in the default configuration.
const (
	PaletteAnimals = "animals"
	PaletteFruit   = "fruit"
)

// PairsConfig contains all configuration for the pairs game.
type PairsConfig struct {
	Board    BoardConfig              `yaml:"board"`
	Timing   TimingConfig             `yaml:"timing"`
	Audio    AudioConfig              `yaml:"audio"`
	Palettes map[string]PaletteConfig `yaml:"palettes"`
}

// BoardConfig defines how the card grid is laid out.
type BoardConfig struct {
	Columns    int `yaml:"columns"`
	CardWidth  int `yaml:"card_width"`  // Including border
	CardHeight int `yaml:"card_height"` // Including border
}

// TimingConfig defines the delays that drive the game clock.
type TimingConfig struct {
	MismatchDelay time.Duration `yaml:"mismatch_delay"`
	ResetDelay    time.Duration `yaml:"reset_delay"`
	TickInterval  time.Duration `yaml:"tick_interval"`
}

// AudioConfig selects how match sounds are played.
type AudioConfig struct {
	Mode      string   `yaml:"mode"`       // "bell", "command" or "off"
	Command   string   `yaml:"command"`    // External player for "command" mode
	Args      []string `yaml:"args"`       // Extra args placed before the sound path
	AssetsDir string   `yaml:"assets_dir"` // Base directory for relative sound paths
}

// Audio modes.
const (
	AudioBell    = "bell"
	AudioCommand = "command"
	AudioOff     = "off"
)

// PaletteConfig is a themed set of card faces.
type PaletteConfig struct {
	Title string       `yaml:"title"`
	Faces []FaceConfig `yaml:"faces"`
}

// FaceConfig describes one card face. Each face appears twice per deal.
type FaceConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Sound string `yaml:"sound"`
}

// Palette returns the named palette.
func (c PairsConfig) Palette(name string) (PaletteConfig, bool) {
	p, ok := c.Palettes[name]
	return p, ok
}

// Validate checks the configuration for values the game cannot run with.
func (c PairsConfig) Validate() error {
	var errs []error

	if c.Board.Columns <= 0 {
		errs = append(errs, fmt.Errorf("board.columns must be positive, got %d", c.Board.Columns))
	}
	if c.Board.CardWidth < 3 || c.Board.CardHeight < 3 {
		errs = append(errs, fmt.Errorf("cards must be at least 3x3, got %dx%d", c.Board.CardWidth, c.Board.CardHeight))
	}
	if c.Timing.MismatchDelay <= 0 {
		errs = append(errs, errors.New("timing.mismatch_delay must be positive"))
	}
	if c.Timing.ResetDelay <= 0 {
		errs = append(errs, errors.New("timing.reset_delay must be positive"))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, errors.New("timing.tick_interval must be positive"))
	}

	switch c.Audio.Mode {
	case AudioBell, AudioOff:
	case AudioCommand:
		if c.Audio.Command == "" {
			errs = append(errs, errors.New("audio.command is required in command mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown audio.mode %q", c.Audio.Mode))
	}

	if len(c.Palettes) == 0 {
		errs = append(errs, errors.New("at least one palette is required"))
	}
	for name, p := range c.Palettes {
		if len(p.Faces) == 0 {
			errs = append(errs, fmt.Errorf("palette %s has no faces", name))
			continue
		}
		seen := make(map[string]bool, len(p.Faces))
		for _, f := range p.Faces {
			if f.ID == "" {
				errs = append(errs, fmt.Errorf("palette %s has a face without id", name))
				continue
			}
			if seen[f.ID] {
				errs = append(errs, fmt.Errorf("palette %s has duplicate face %q", name, f.ID))
			}
			seen[f.ID] = true
		}
	}

	return errors.Join(errs...)
}
