// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TierCount is the number of asteroid size tiers.
const TierCount = 4

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Asteroids  FieldConfig      `yaml:"asteroids"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShipConfig defines ship handling.
type ShipConfig struct {
	RotateStep   float64 `yaml:"rotate_step"`   // Degrees per tick while turning
	ThrustSpeed  float64 `yaml:"thrust_speed"`  // Units per tick while thrusting
	Size         float64 `yaml:"size"`          // Drawn triangle size (collision uses the centre)
	ShieldRadius float64 `yaml:"shield_radius"` // Drawn shield circle radius
}

// BulletConfig defines bullet behaviour.
type BulletConfig struct {
	Lifetime float64 `yaml:"lifetime"`  // Seconds a bullet lives
	SpeedMin float64 `yaml:"speed_min"` // Per-axis speed lower bound, units per tick
	SpeedMax float64 `yaml:"speed_max"` // Per-axis speed upper bound (exclusive)
}

// FieldConfig defines the asteroid field.
type FieldConfig struct {
	StartCount     int          `yaml:"start_count"`
	Inset          float64      `yaml:"inset"`           // Spawn margin from every edge
	SpawnClearance float64      `yaml:"spawn_clearance"` // Minimum spawn distance from the ship
	SplitJitter    float64      `yaml:"split_jitter"`    // Jitter radius as a fraction of the parent radius
	SpinMin        float64      `yaml:"spin_min"`        // Largest-tier spin magnitude bounds, degrees per tick
	SpinMax        float64      `yaml:"spin_max"`
	Tiers          []TierConfig `yaml:"tiers"`
}

// TierConfig describes one asteroid size tier, largest first.
type TierConfig struct {
	Radius   float64 `yaml:"radius"`
	Sides    int     `yaml:"sides"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	Points   int     `yaml:"points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to asteroid speed at max difficulty
	ExtraAsteroids  int     `yaml:"extra_asteroids"`  // Asteroids added to the starting field at max difficulty
}

// Validate checks the config for values the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	if c.Ship.RotateStep < 0 || c.Ship.ThrustSpeed < 0 {
		return fmt.Errorf("%w: ship rotate_step and thrust_speed must not be negative", ErrInvalidConfig)
	}
	if c.Bullets.Lifetime <= 0 {
		return fmt.Errorf("%w: bullets.lifetime must be positive", ErrInvalidConfig)
	}
	if c.Bullets.SpeedMin < 0 || c.Bullets.SpeedMax < c.Bullets.SpeedMin {
		return fmt.Errorf("%w: bullets speed range [%v, %v) is invalid",
			ErrInvalidConfig, c.Bullets.SpeedMin, c.Bullets.SpeedMax)
	}
	if c.Asteroids.StartCount <= 0 {
		return fmt.Errorf("%w: asteroids.start_count must be positive", ErrInvalidConfig)
	}
	if c.Asteroids.Inset < 0 || c.Asteroids.SpawnClearance < 0 || c.Asteroids.SplitJitter < 0 {
		return fmt.Errorf("%w: asteroids inset, spawn_clearance and split_jitter must not be negative", ErrInvalidConfig)
	}
	if c.Asteroids.SpinMin < 0 || c.Asteroids.SpinMax < c.Asteroids.SpinMin {
		return fmt.Errorf("%w: asteroids spin range [%v, %v] is invalid",
			ErrInvalidConfig, c.Asteroids.SpinMin, c.Asteroids.SpinMax)
	}
	if len(c.Asteroids.Tiers) != TierCount {
		return fmt.Errorf("%w: expected %d asteroid tiers, got %d", ErrInvalidConfig, TierCount, len(c.Asteroids.Tiers))
	}
	for i, t := range c.Asteroids.Tiers {
		if t.Radius <= 0 {
			return fmt.Errorf("%w: tier %d radius must be positive", ErrInvalidConfig, i)
		}
		if t.SpeedMin < 0 || t.SpeedMax < t.SpeedMin {
			return fmt.Errorf("%w: tier %d speed range [%v, %v) is invalid", ErrInvalidConfig, i, t.SpeedMin, t.SpeedMax)
		}
		if i > 0 {
			prev := c.Asteroids.Tiers[i-1]
			if math.Abs(prev.Radius/2-t.Radius) > 1e-9 {
				return fmt.Errorf("%w: tier %d radius %v must be half of tier %d radius %v",
					ErrInvalidConfig, i, t.Radius, i-1, prev.Radius)
			}
		}
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty
// strings yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
