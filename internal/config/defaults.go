package config

import (
	_ "embed"
)

//go:embed defaults/homebound.yaml
var defaultHomeboundYAML []byte

// DefaultHomeboundConfig returns the default Homebound configuration.
func DefaultHomeboundConfig() HomeboundConfig {
	return HomeboundConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
			FloorY: 500,
		},
		Player: PlayerConfig{
			X:               100,
			Width:           64,
			Height:          64,
			Gravity:         0.5,
			MinJump:         -8,
			MaxJump:         -14,
			FullChargeTicks: 15,
			InvincibleTicks: 120, // 2 seconds at 60fps
		},
		Obstacles: ObstacleConfig{
			Width:              30,
			MinHeight:          30,
			MaxHeight:          90,
			FastChance:         0.2,
			SlowChance:         0.4,
			FastFactor:         0.6,
			SlowFactor:         1.8,
			MaxConsecutiveFast: 3,
		},
		Items: ItemConfig{
			Size:              25,
			MinY:              300,
			MaxY:              400,
			SpawnInterval:     500,
			SlowTicks:         300, // 5 seconds at 60fps
			SlowSpeedFactor:   0.3,
			SlowGravityFactor: 0.7,
		},
		Gameplay: GameplayConfig{
			StartLives:        3,
			MaxLives:          5,
			TargetScore:       500,
			PointsPerObstacle: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StartLevel:    0,
			ScorePerLevel: 100,
			BaseSpeed:     5,
			SpeedStep:     0.5,
			MaxSpeed:      10,
			BaseInterval:  100,
			IntervalStep:  10,
			MinInterval:   50,
			BaseBgSpeed:   2,
			BgSpeedStep:   0.2,
			MaxBgSpeed:    5,
		},
		Input: InputConfig{
			ReleaseAfterTicks: 6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHomeboundYAML
}
