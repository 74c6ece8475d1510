package config

import "math"

// Params are the per-frame parameters derived from the difficulty level.
type Params struct {
	Speed         float64 // Obstacle and item speed in pixels per tick
	SpawnInterval int     // Base ticks between obstacle spawns
	BgSpeed       float64 // Background scroll speed in pixels per tick
}

// Curve maps cumulative score to difficulty parameters.
// Difficulty rises one level every ScorePerLevel points and each parameter
// saturates at its configured bound.
type Curve struct {
	cfg DifficultyConfig
}

// NewCurve creates a difficulty curve.
func NewCurve(cfg DifficultyConfig) Curve {
	if cfg.ScorePerLevel <= 0 {
		cfg.ScorePerLevel = 1 // Prevent division by zero
	}
	return Curve{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (c Curve) IsEnabled() bool {
	return c.cfg.Enabled
}

// Level returns the zero-based difficulty level for a score.
func (c Curve) Level(score int) int {
	level := c.cfg.StartLevel
	if c.cfg.Enabled && score > 0 {
		level += score / c.cfg.ScorePerLevel
	}
	if level < 0 {
		level = 0
	}
	return level
}

// At returns the difficulty parameters for a score. It has no side effects.
func (c Curve) At(score int) Params {
	level := float64(c.Level(score))
	return Params{
		Speed:         math.Min(c.cfg.BaseSpeed+level*c.cfg.SpeedStep, c.cfg.MaxSpeed),
		SpawnInterval: max(c.cfg.BaseInterval-int(level)*c.cfg.IntervalStep, c.cfg.MinInterval),
		BgSpeed:       math.Min(c.cfg.BaseBgSpeed+level*c.cfg.BgSpeedStep, c.cfg.MaxBgSpeed),
	}
}
