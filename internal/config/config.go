// Package config provides YAML-based game configuration loading,
// difficulty presets and hot reloading.
package config

// Config contains all tunables for a VanScape session.
// A Config is treated as an immutable value once handed to the game.
type Config struct {
	Arena    ArenaConfig   `yaml:"arena"`
	Player   PlayerConfig  `yaml:"player"`
	Enemy    EnemyConfig   `yaml:"enemy"`
	Bomb     BombConfig    `yaml:"bomb"`
	Pickup   PickupConfig  `yaml:"pickup"`
	Triggers TriggerConfig `yaml:"triggers"`
}

// ArenaConfig describes how the play field maps onto screens.
type ArenaConfig struct {
	CellWidth    float64 `yaml:"cell_width"`    // World units per terminal column
	CellHeight   float64 `yaml:"cell_height"`   // World units per terminal row
	WindowWidth  int     `yaml:"window_width"`  // Window front end size in pixels
	WindowHeight int     `yaml:"window_height"` // (1 pixel = 1 world unit)
}

// PlayerConfig defines the cursor-tracked avatar.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	Lives         int     `yaml:"lives"`
	TurnThreshold float64 `yaml:"turn_threshold"` // Manhattan move needed to update facing
	Frames        int     `yaml:"frames"`         // Sprite animation length
	FrameTicks    int     `yaml:"frame_ticks"`    // Ticks per animation frame
}

// EnemyConfig defines the chasing enemy and its straight shots.
type EnemyConfig struct {
	Radius      float64 `yaml:"radius"`
	BaseSpeed   float64 `yaml:"base_speed"`
	LevelSpeed  float64 `yaml:"level_speed"` // Speed added per level
	FireChance  float64 `yaml:"fire_chance"` // Per-tick probability of a bullet
	BulletSpeed float64 `yaml:"bullet_speed"`
}

// BombConfig defines the bomb burst.
type BombConfig struct {
	MinFragments int `yaml:"min_fragments"`
	MaxFragments int `yaml:"max_fragments"`
}

// PickupConfig defines the extra-life bonus.
type PickupConfig struct {
	Radius float64 `yaml:"radius"`
	Bonus  int     `yaml:"bonus"`
}

// TriggerConfig defines score thresholds. Zero disables a trigger.
type TriggerConfig struct {
	LevelEvery  int `yaml:"level_every"`
	BombEvery   int `yaml:"bomb_every"`
	PickupEvery int `yaml:"pickup_every"`
}
