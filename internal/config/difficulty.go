package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemy.FireChance /= 2
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemy.BaseSpeed *= 2
		cfg.Enemy.FireChance *= 2
		if cfg.Enemy.FireChance > 1 {
			cfg.Enemy.FireChance = 1
		}
	case DifficultyFixed:
		// No progression: the enemy never levels up
		cfg.Triggers.LevelEvery = 0
	}
}
