package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "vanscape.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.vanscape/configs/vanscape.yaml -> ./configs/vanscape.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Arena.CellWidth <= 0 || c.Arena.CellHeight <= 0 {
		errs = append(errs, errors.New("arena: cell size must be positive"))
	}
	if c.Arena.WindowWidth <= 0 || c.Arena.WindowHeight <= 0 {
		errs = append(errs, errors.New("arena: window size must be positive"))
	}
	if c.Player.Radius <= 0 || c.Enemy.Radius <= 0 || c.Pickup.Radius <= 0 {
		errs = append(errs, errors.New("radius must be positive"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player: lives must be positive"))
	}
	if c.Player.Frames <= 0 || c.Player.FrameTicks <= 0 {
		errs = append(errs, errors.New("player: frames and frame_ticks must be positive"))
	}
	if c.Enemy.FireChance < 0 || c.Enemy.FireChance > 1 {
		errs = append(errs, errors.New("enemy: fire_chance must be within [0, 1]"))
	}
	if c.Bomb.MinFragments <= 0 || c.Bomb.MaxFragments < c.Bomb.MinFragments {
		errs = append(errs, fmt.Errorf("bomb: invalid fragment range [%d, %d]", c.Bomb.MinFragments, c.Bomb.MaxFragments))
	}
	if c.Triggers.LevelEvery < 0 || c.Triggers.BombEvery < 0 || c.Triggers.PickupEvery < 0 {
		errs = append(errs, errors.New("triggers: thresholds must not be negative"))
	}
	return errors.Join(errs...)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vanscape", "configs", FileName)
}
