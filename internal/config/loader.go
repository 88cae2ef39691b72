package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the pairs configuration.
// Search order: customPath -> ~/.pairs/configs/pairs.yaml -> ./configs/pairs.yaml -> embedded default.
// Fields a file leaves out fall back to DefaultPairsConfig.
func Load(customPath string) (PairsConfig, error) {
	cfg, err := read(customPath)
	if err != nil {
		return cfg, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// read finds and parses the first available config source.
func read(customPath string) (PairsConfig, error) {
	var cfg PairsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pairs.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pairs.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPairsYAML, &cfg); err != nil {
		return DefaultPairsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// applyDefaults fills zero values from DefaultPairsConfig.
func applyDefaults(cfg *PairsConfig) {
	def := DefaultPairsConfig()

	if cfg.Board.Columns == 0 {
		cfg.Board.Columns = def.Board.Columns
	}
	if cfg.Board.CardWidth == 0 {
		cfg.Board.CardWidth = def.Board.CardWidth
	}
	if cfg.Board.CardHeight == 0 {
		cfg.Board.CardHeight = def.Board.CardHeight
	}
	if cfg.Timing.MismatchDelay == 0 {
		cfg.Timing.MismatchDelay = def.Timing.MismatchDelay
	}
	if cfg.Timing.ResetDelay == 0 {
		cfg.Timing.ResetDelay = def.Timing.ResetDelay
	}
	if cfg.Timing.TickInterval == 0 {
		cfg.Timing.TickInterval = def.Timing.TickInterval
	}
	if cfg.Audio.Mode == "" {
		cfg.Audio.Mode = def.Audio.Mode
	}
	// Built-in palettes a file leaves out stay available by name
	if cfg.Palettes == nil {
		cfg.Palettes = make(map[string]PaletteConfig, len(def.Palettes))
	}
	for name, p := range def.Palettes {
		if _, ok := cfg.Palettes[name]; !ok {
			cfg.Palettes[name] = p
		}
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pairs", "configs", filename)
}
