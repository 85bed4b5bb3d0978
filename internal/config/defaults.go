package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
// It mirrors defaults/asteroids.yaml and is used if the embedded file
// cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: ShipConfig{
			RotateStep:   5.0,
			ThrustSpeed:  0.6,
			Size:         2.5,
			ShieldRadius: 4.0,
		},
		Bullets: BulletConfig{
			Lifetime: 0.25,
			SpeedMin: 1.5,
			SpeedMax: 3.0,
		},
		Asteroids: FieldConfig{
			StartCount:     10,
			Inset:          4.0,
			SpawnClearance: 10.0,
			SplitJitter:    0.5,
			SpinMin:        0.5,
			SpinMax:        1.5,
			Tiers: []TierConfig{
				{Radius: 6.0, Sides: 10, SpeedMin: 0.05, SpeedMax: 0.25, Points: 20},
				{Radius: 3.0, Sides: 8, SpeedMin: 0.20, SpeedMax: 0.35, Points: 50},
				{Radius: 1.5, Sides: 6, SpeedMin: 0.35, SpeedMax: 0.45, Points: 100},
				{Radius: 0.75, Sides: 4, SpeedMin: 0.50, SpeedMax: 0.55, Points: 200},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 18000, // 5 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				ExtraAsteroids:  6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids", "asteroids_classic":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
