// Package config provides YAML-based game configuration loading
// and validation for Sky Drift.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters for a game session.
// Values are fixed at startup; the simulation never reconfigures itself.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Entity     EntityConfig     `yaml:"entity"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Background BackgroundConfig `yaml:"background"`
	Score      ScoreConfig      `yaml:"score"`
	CrashSpin  CrashSpinConfig  `yaml:"crash_spin"`
}

// WorldConfig defines the play field in world units (terminal cells).
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines gravity and boost magnitudes.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Downward acceleration, units/s^2
	Boost   float64 `yaml:"boost"`   // Upward velocity override, units/s
}

// EntityConfig defines the controlled actor.
type EntityConfig struct {
	X          float64 `yaml:"x"`           // Fixed horizontal position
	HalfWidth  float64 `yaml:"half_width"`  // Collision half-extent
	HalfHeight float64 `yaml:"half_height"` // Collision half-extent
}

// ObstaclesConfig defines the recyclable obstacle pool.
type ObstaclesConfig struct {
	Count         int     `yaml:"count"`          // Fixed pool size
	Spacing       float64 `yaml:"spacing"`        // Horizontal distance between neighbors
	Offset        float64 `yaml:"offset"`         // Initial x of slot 0
	Width         float64 `yaml:"width"`          // Obstacle width
	HeightUnit    float64 `yaml:"height_unit"`    // Base height unit
	MinMultiplier int     `yaml:"min_multiplier"` // Height = unit * rand[min..max]
	MaxMultiplier int     `yaml:"max_multiplier"`
	ScrollSpeed   float64 `yaml:"scroll_speed"` // Leftward speed, units/s
}

// BackgroundConfig defines the decorative scrolling layers.
type BackgroundConfig struct {
	CloudSpeed  float64 `yaml:"cloud_speed"`  // units/s
	GroundSpeed float64 `yaml:"ground_speed"` // units/s
}

// ScoreConfig defines score accumulation.
type ScoreConfig struct {
	IntervalSeconds float64 `yaml:"interval_seconds"` // Simulated time per point
}

// CrashSpinConfig defines the post-crash rotation animation.
type CrashSpinConfig struct {
	TargetDegrees   float64 `yaml:"target_degrees"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// Validate checks the configuration for fatal misconfiguration.
// A broken pool or physics setup must fail at startup, not during play.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.Boost <= 0 {
		errs = append(errs, fmt.Errorf("config: boost must be positive, got %g", c.Physics.Boost))
	}
	if c.Entity.HalfWidth <= 0 || c.Entity.HalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: entity half-extents must be positive, got %gx%g", c.Entity.HalfWidth, c.Entity.HalfHeight))
	}
	if c.Obstacles.Count <= 0 {
		errs = append(errs, fmt.Errorf("config: obstacle count must be positive, got %d", c.Obstacles.Count))
	}
	if c.Obstacles.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("config: obstacle spacing must be positive, got %g", c.Obstacles.Spacing))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("config: obstacle width must be positive, got %g", c.Obstacles.Width))
	}
	if c.Obstacles.HeightUnit <= 0 {
		errs = append(errs, fmt.Errorf("config: obstacle height unit must be positive, got %g", c.Obstacles.HeightUnit))
	}
	if c.Obstacles.MinMultiplier <= 0 || c.Obstacles.MaxMultiplier < c.Obstacles.MinMultiplier {
		errs = append(errs, fmt.Errorf("config: obstacle multipliers must satisfy 0 < min <= max, got %d..%d",
			c.Obstacles.MinMultiplier, c.Obstacles.MaxMultiplier))
	}
	if c.Obstacles.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("config: scroll speed must be positive, got %g", c.Obstacles.ScrollSpeed))
	}
	if c.Score.IntervalSeconds <= 0 {
		errs = append(errs, fmt.Errorf("config: score interval must be positive, got %g", c.Score.IntervalSeconds))
	}
	if c.CrashSpin.DurationSeconds <= 0 {
		errs = append(errs, fmt.Errorf("config: crash spin duration must be positive, got %g", c.CrashSpin.DurationSeconds))
	}

	return errors.Join(errs...)
}
