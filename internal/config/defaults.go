package config

import (
	_ "embed"
)

//go:embed defaults/vanscape.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			CellWidth:    12,
			CellHeight:   24,
			WindowWidth:  1280,
			WindowHeight: 720,
		},
		Player: PlayerConfig{
			Radius:        30,
			Lives:         3,
			TurnThreshold: 4,
			Frames:        15,
			FrameTicks:    10,
		},
		Enemy: EnemyConfig{
			Radius:      60,
			BaseSpeed:   0.25,
			LevelSpeed:  0.02,
			FireChance:  0.01,
			BulletSpeed: 0.25,
		},
		Bomb: BombConfig{
			MinFragments: 5,
			MaxFragments: 20,
		},
		Pickup: PickupConfig{
			Radius: 30,
			Bonus:  1,
		},
		Triggers: TriggerConfig{
			LevelEvery:  500,
			BombEvery:   1000,
			PickupEvery: 10000,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func DefaultYAML() []byte {
	return defaultYAML
}
