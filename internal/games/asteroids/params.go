package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// Tier is an asteroid size class. Tier 0 is the largest and slowest;
// each following tier halves the radius and doubles the spin.
type Tier int

// TierCount is the number of tiers an asteroid passes through.
const TierCount = config.TierCount

// Smallest reports whether a hit on this tier removes the asteroid.
func (t Tier) Smallest() bool {
	return int(t) >= TierCount-1
}

// Next returns the tier a hit shrinks this one into.
func (t Tier) Next() Tier {
	if t.Smallest() {
		return t
	}
	return t + 1
}

// TierSpec holds the per-tier constants.
type TierSpec struct {
	Radius   float64
	Sides    int
	SpeedMin float64
	SpeedMax float64
	Points   int
}

// Params is everything the simulation needs to know about the playfield
// and the tuning. It is plain data so tests can build it directly.
type Params struct {
	Width, Height float64

	RotateStep  float64 // degrees per tick
	ThrustSpeed float64 // units per tick

	BulletLifetime float64 // seconds
	BulletSpeedMin float64 // per-axis, units per tick
	BulletSpeedMax float64

	StartCount     int
	Inset          float64
	SpawnClearance float64
	SplitJitter    float64 // fraction of the parent radius
	SpinMin        float64 // tier 0 spin magnitude bounds, degrees per tick
	SpinMax        float64

	Tiers [TierCount]TierSpec

	ShieldEnabled bool
	SpeedFactor   float64 // asteroid speed multiplier, 1 = configured ranges
}

// ParamsFromConfig builds simulation parameters for a w×h playfield.
// The config is expected to have passed Validate.
func ParamsFromConfig(cfg config.AsteroidsConfig, w, h float64, shield bool) Params {
	p := Params{
		Width:          w,
		Height:         h,
		RotateStep:     cfg.Ship.RotateStep,
		ThrustSpeed:    cfg.Ship.ThrustSpeed,
		BulletLifetime: cfg.Bullets.Lifetime,
		BulletSpeedMin: cfg.Bullets.SpeedMin,
		BulletSpeedMax: cfg.Bullets.SpeedMax,
		StartCount:     cfg.Asteroids.StartCount,
		Inset:          cfg.Asteroids.Inset,
		SpawnClearance: cfg.Asteroids.SpawnClearance,
		SplitJitter:    cfg.Asteroids.SplitJitter,
		SpinMin:        cfg.Asteroids.SpinMin,
		SpinMax:        cfg.Asteroids.SpinMax,
		ShieldEnabled:  shield,
		SpeedFactor:    1,
	}
	for i := 0; i < TierCount && i < len(cfg.Asteroids.Tiers); i++ {
		t := cfg.Asteroids.Tiers[i]
		p.Tiers[i] = TierSpec{
			Radius:   t.Radius,
			Sides:    t.Sides,
			SpeedMin: t.SpeedMin,
			SpeedMax: t.SpeedMax,
			Points:   t.Points,
		}
	}
	return p
}

// DefaultParams returns the default tuning on a w×h playfield.
func DefaultParams(w, h float64) Params {
	return ParamsFromConfig(config.DefaultAsteroidsConfig(), w, h, true)
}

// Random is the source of jitter. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// uniform draws from [lo, hi).
func uniform(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// sign returns -1 or 1 with equal probability.
func sign(r Random) float64 {
	if r.Float64() < 0.5 {
		return -1
	}
	return 1
}
