// Package config provides YAML/TOML-based game configuration loading and
// the difficulty curve for Homebound.
package config

import (
	"errors"
	"fmt"
)

// HomeboundConfig contains all tunable parameters of the simulation.
// World coordinates are logical pixels; renderers scale them to their surface.
type HomeboundConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Items      ItemConfig       `yaml:"items" toml:"items"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Input      InputConfig      `yaml:"input" toml:"input"`
}

// WorldConfig defines the logical viewport.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	FloorY float64 `yaml:"floor_y" toml:"floor_y"` // Top of the ground band; obstacles stand on it
}

// PlayerConfig defines the runner's body and jump physics.
type PlayerConfig struct {
	X               float64 `yaml:"x" toml:"x"`
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	Gravity         float64 `yaml:"gravity" toml:"gravity"`
	MinJump         float64 `yaml:"min_jump" toml:"min_jump"` // Velocity of a short tap (negative = up)
	MaxJump         float64 `yaml:"max_jump" toml:"max_jump"` // Velocity of a fully charged jump
	FullChargeTicks int     `yaml:"full_charge_ticks" toml:"full_charge_ticks"`
	InvincibleTicks int     `yaml:"invincible_ticks" toml:"invincible_ticks"`
}

// ObstacleConfig defines obstacle geometry and spawn timing modifiers.
type ObstacleConfig struct {
	Width              float64 `yaml:"width" toml:"width"`
	MinHeight          int     `yaml:"min_height" toml:"min_height"`
	MaxHeight          int     `yaml:"max_height" toml:"max_height"`
	FastChance         float64 `yaml:"fast_chance" toml:"fast_chance"`
	SlowChance         float64 `yaml:"slow_chance" toml:"slow_chance"` // Cumulative with fast_chance
	FastFactor         float64 `yaml:"fast_factor" toml:"fast_factor"`
	SlowFactor         float64 `yaml:"slow_factor" toml:"slow_factor"`
	MaxConsecutiveFast int     `yaml:"max_consecutive_fast" toml:"max_consecutive_fast"`
}

// ItemConfig defines power-up items and the slow-mode effect.
type ItemConfig struct {
	Size              float64 `yaml:"size" toml:"size"`
	MinY              float64 `yaml:"min_y" toml:"min_y"`
	MaxY              float64 `yaml:"max_y" toml:"max_y"`
	SpawnInterval     int     `yaml:"spawn_interval" toml:"spawn_interval"`
	SlowTicks         int     `yaml:"slow_ticks" toml:"slow_ticks"`
	SlowSpeedFactor   float64 `yaml:"slow_speed_factor" toml:"slow_speed_factor"`
	SlowGravityFactor float64 `yaml:"slow_gravity_factor" toml:"slow_gravity_factor"`
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	StartLives        int `yaml:"start_lives" toml:"start_lives"`
	MaxLives          int `yaml:"max_lives" toml:"max_lives"`
	TargetScore       int `yaml:"target_score" toml:"target_score"` // 0 = endless
	PointsPerObstacle int `yaml:"points_per_obstacle" toml:"points_per_obstacle"`
}

// DifficultyConfig defines the stepped difficulty progression.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	StartLevel    int     `yaml:"start_level" toml:"start_level"`
	ScorePerLevel int     `yaml:"score_per_level" toml:"score_per_level"`
	BaseSpeed     float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedStep     float64 `yaml:"speed_step" toml:"speed_step"`
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
	BaseInterval  int     `yaml:"base_interval" toml:"base_interval"`
	IntervalStep  int     `yaml:"interval_step" toml:"interval_step"`
	MinInterval   int     `yaml:"min_interval" toml:"min_interval"`
	BaseBgSpeed   float64 `yaml:"base_bg_speed" toml:"base_bg_speed"`
	BgSpeedStep   float64 `yaml:"bg_speed_step" toml:"bg_speed_step"`
	MaxBgSpeed    float64 `yaml:"max_bg_speed" toml:"max_bg_speed"`
}

// InputConfig defines platform input tuning.
type InputConfig struct {
	// ReleaseAfterTicks is how long a terminal key may stay silent before it
	// counts as released. Terminals report presses and auto-repeat only.
	ReleaseAfterTicks int `yaml:"release_after_ticks" toml:"release_after_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *HomeboundConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 0
		cfg.Gameplay.StartLives = cfg.Gameplay.MaxLives
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 2
		cfg.Gameplay.StartLives = 2
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c HomeboundConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.World.FloorY <= c.Player.Height || c.World.FloorY > c.World.Height {
		errs = append(errs, errors.New("world.floor_y must fit the player above the bottom edge"))
	}
	if c.Obstacles.MinHeight <= 0 || c.Obstacles.MinHeight > c.Obstacles.MaxHeight {
		errs = append(errs, errors.New("obstacles.min_height must be positive and <= max_height"))
	}
	if c.Obstacles.Width <= 0 || c.Items.Size <= 0 {
		errs = append(errs, errors.New("obstacle width and item size must be positive"))
	}
	if c.Items.MinY > c.Items.MaxY {
		errs = append(errs, errors.New("items.min_y must be <= items.max_y"))
	}
	if c.Player.FullChargeTicks <= 0 {
		errs = append(errs, errors.New("player.full_charge_ticks must be positive"))
	}
	if c.Gameplay.MaxLives <= 0 || c.Gameplay.StartLives <= 0 || c.Gameplay.StartLives > c.Gameplay.MaxLives {
		errs = append(errs, errors.New("gameplay.start_lives must be in [1, max_lives]"))
	}
	if c.Gameplay.TargetScore < 0 || c.Gameplay.PointsPerObstacle <= 0 {
		errs = append(errs, errors.New("gameplay.target_score must be >= 0 and points_per_obstacle > 0"))
	}
	if c.Difficulty.ScorePerLevel <= 0 {
		errs = append(errs, errors.New("difficulty.score_per_level must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
