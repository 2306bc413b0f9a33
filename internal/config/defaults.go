package config

import (
	_ "embed"
)

//go:embed defaults/skydrift.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Kept in sync with defaults/skydrift.yaml; this is the fallback if the
// embedded YAML somehow fails to parse.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  80,
			Height: 24,
		},
		Physics: PhysicsConfig{
			Gravity: 42.0,
			Boost:   15.0,
		},
		Entity: EntityConfig{
			X:          16,
			HalfWidth:  1.0,
			HalfHeight: 0.75,
		},
		Obstacles: ObstaclesConfig{
			Count:         5,
			Spacing:       26.0,
			Offset:        90.0,
			Width:         5.0,
			HeightUnit:    3.0,
			MinMultiplier: 2,
			MaxMultiplier: 4,
			ScrollSpeed:   14.0,
		},
		Background: BackgroundConfig{
			CloudSpeed:  3.0,
			GroundSpeed: 14.0,
		},
		Score: ScoreConfig{
			IntervalSeconds: 1.0,
		},
		CrashSpin: CrashSpinConfig{
			TargetDegrees:   90,
			DurationSeconds: 0.6,
		},
	}
}
