package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pairs.yaml
var defaultPairsYAML []byte

// DefaultPairsConfig returns the built-in configuration.
// It mirrors defaults/pairs.yaml and backs it up if the embedded file fails to parse.
func DefaultPairsConfig() PairsConfig {
	return PairsConfig{
		Board: BoardConfig{
			Columns:    4,
			CardWidth:  9,
			CardHeight: 5,
		},
		Timing: TimingConfig{
			MismatchDelay: time.Second,
			ResetDelay:    5 * time.Second,
			TickInterval:  time.Second,
		},
		Audio: AudioConfig{
			Mode:    AudioBell,
			Command: "paplay",
		},
		Palettes: map[string]PaletteConfig{
			PaletteAnimals: {
				Title: "Pairs",
				Faces: []FaceConfig{
					{ID: "cat", Label: "CAT", Glyph: "=^.^=", Color: "orange", Sound: "sounds/cat.mp3"},
					{ID: "cow", Label: "COW", Glyph: "(__)", Color: "white", Sound: "sounds/cow.mp3"},
					{ID: "chicken", Label: "HEN", Glyph: "<')", Color: "yellow", Sound: "sounds/chicken.mp3"},
					{ID: "dog", Label: "DOG", Glyph: "U.U", Color: "brown", Sound: "sounds/dog.mp3"},
					{ID: "duck", Label: "DUCK", Glyph: "<(.)", Color: "bright_yellow", Sound: "sounds/duck.mp3"},
					{ID: "horse", Label: "HORSE", Glyph: ">^^", Color: "red", Sound: "sounds/horse.mp3"},
					{ID: "sheep", Label: "SHEEP", Glyph: "@@@", Color: "bright_white", Sound: "sounds/sheep.mp3"},
					{ID: "elephant", Label: "ELEPH", Glyph: "o~~", Color: "gray", Sound: "sounds/elephant.wav"},
				},
			},
			PaletteFruit: {
				Title: "Pairs (Fruit)",
				Faces: []FaceConfig{
					{ID: "apple", Label: "APPLE", Glyph: "(')", Color: "red"},
					{ID: "banana", Label: "BANANA", Glyph: "))", Color: "bright_yellow"},
					{ID: "cherry", Label: "CHERRY", Glyph: "o o", Color: "bright_red"},
					{ID: "grape", Label: "GRAPE", Glyph: "ooo", Color: "magenta"},
					{ID: "lemon", Label: "LEMON", Glyph: "(_)", Color: "yellow"},
					{ID: "lime", Label: "LIME", Glyph: "(_)", Color: "green"},
					{ID: "orange", Label: "ORANGE", Glyph: "( )", Color: "orange"},
					{ID: "plum", Label: "PLUM", Glyph: "(o)", Color: "blue"},
				},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPairsYAML
}
