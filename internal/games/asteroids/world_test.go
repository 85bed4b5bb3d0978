package asteroids

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const frame = 1.0 / 60

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// testParams returns default tuning on an 80x46 field.
func testParams() Params {
	return DefaultParams(80, 46)
}

// stillParams freezes asteroids and bullets in place so tests can position
// them exactly.
func stillParams() Params {
	p := testParams()
	p.BulletSpeedMin, p.BulletSpeedMax = 0, 0
	for i := range p.Tiers {
		p.Tiers[i].SpeedMin, p.Tiers[i].SpeedMax = 0, 0
	}
	return p
}

// worldWith builds a world whose field is replaced by the given asteroids.
func worldWith(p Params, rocks ...Asteroid) *World {
	w := NewWorld(p, rand.New(rand.NewSource(1)))
	w.Asteroids = append([]Asteroid(nil), rocks...)
	return w
}

func rock(p Params, tier Tier, x, y float64) Asteroid {
	return Asteroid{
		Pos:    core.V(x, y),
		Tier:   tier,
		Radius: p.Tiers[tier].Radius,
		Spin:   1,
	}
}

func TestResetPlacesShipAndField(t *testing.T) {
	p := testParams()
	w := NewWorld(p, rand.New(rand.NewSource(7)))

	if w.Ship.Pos != core.V(40, 23) {
		t.Errorf("ship should start at centre, got %+v", w.Ship.Pos)
	}
	if len(w.Ship.Bullets) != 0 {
		t.Errorf("ship should start without bullets, got %d", len(w.Ship.Bullets))
	}
	if len(w.Asteroids) != p.StartCount {
		t.Fatalf("expected %d asteroids, got %d", p.StartCount, len(w.Asteroids))
	}

	for i, a := range w.Asteroids {
		if a.Tier != 0 || a.Radius != p.Tiers[0].Radius {
			t.Errorf("asteroid %d should be tier 0 with radius %v, got tier %d radius %v",
				i, p.Tiers[0].Radius, a.Tier, a.Radius)
		}
		if a.Pos.X < p.Inset || a.Pos.X >= p.Width-p.Inset || a.Pos.Y < p.Inset || a.Pos.Y >= p.Height-p.Inset {
			t.Errorf("asteroid %d at %+v outside inset bounds", i, a.Pos)
		}
		spin := math.Abs(a.Spin)
		if spin < p.SpinMin || spin >= p.SpinMax {
			t.Errorf("asteroid %d spin %v outside [%v, %v)", i, a.Spin, p.SpinMin, p.SpinMax)
		}
	}
}

func TestResetKeepsClearOfShip(t *testing.T) {
	p := testParams()
	for seed := int64(0); seed < 20; seed++ {
		w := NewWorld(p, rand.New(rand.NewSource(seed)))
		for _, a := range w.Asteroids {
			if a.Pos.Dist(w.Ship.Pos) < p.SpawnClearance {
				t.Fatalf("seed %d: asteroid at %+v within clearance of ship", seed, a.Pos)
			}
		}
	}
}

func TestPositionsStayInBounds(t *testing.T) {
	p := testParams()
	p.ShieldEnabled = true
	w := NewWorld(p, rand.New(rand.NewSource(99)))

	for i := 0; i < 2000; i++ {
		c := Controls{Thrust: true, Right: i%3 == 0, Shield: true, Fire: i%7 == 0}
		w.Update(c, float64(i)*frame)
		if w.Outcome != Running {
			break
		}

		if s := w.Ship.Pos; s.X < 0 || s.X >= p.Width || s.Y < 0 || s.Y >= p.Height {
			t.Fatalf("frame %d: ship at %+v out of bounds", i, s)
		}
		for _, a := range w.Asteroids {
			if a.Pos.X < 0 || a.Pos.X >= p.Width || a.Pos.Y < 0 || a.Pos.Y >= p.Height {
				t.Fatalf("frame %d: asteroid at %+v out of bounds", i, a.Pos)
			}
		}
		for _, b := range w.Ship.Bullets {
			if b.Pos.X < 0 || b.Pos.X >= p.Width || b.Pos.Y < 0 || b.Pos.Y >= p.Height {
				t.Fatalf("frame %d: bullet at %+v out of bounds", i, b.Pos)
			}
		}
	}
}

func TestShipRotationAndThrust(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, 0, 5, 5))

	w.Update(Controls{Right: true}, 0)
	if w.Ship.Heading != p.RotateStep {
		t.Errorf("heading after right = %v, expected %v", w.Ship.Heading, p.RotateStep)
	}

	w.Update(Controls{Left: true}, frame)
	w.Update(Controls{Left: true}, 2*frame)
	if w.Ship.Heading != 360-p.RotateStep {
		t.Errorf("heading should wrap to %v, got %v", 360-p.RotateStep, w.Ship.Heading)
	}

	w.Ship.Heading = 0
	start := w.Ship.Pos
	w.Update(Controls{Thrust: true}, 3*frame)
	// Rotation is applied before thrust; no rotation held here.
	if math.Abs(w.Ship.Pos.X-start.X) > 1e-9 || math.Abs(w.Ship.Pos.Y-(start.Y-p.ThrustSpeed)) > 1e-9 {
		t.Errorf("thrust at heading 0 should move up by %v: %+v -> %+v", p.ThrustSpeed, start, w.Ship.Pos)
	}
}

func TestFireSpawnsOneBulletPerFrame(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, 0, 5, 5))

	for i := 0; i < 5; i++ {
		w.Update(Controls{Fire: true}, float64(i)*frame)
	}
	if len(w.Ship.Bullets) != 5 {
		t.Errorf("holding fire for 5 frames should give 5 bullets, got %d", len(w.Ship.Bullets))
	}
	if w.BulletsFired != 5 {
		t.Errorf("BulletsFired = %d, expected 5", w.BulletsFired)
	}
	for _, b := range w.Ship.Bullets {
		if b.Heading != w.Ship.Heading {
			t.Errorf("bullet heading %v should match ship heading %v", b.Heading, w.Ship.Heading)
		}
	}
}

func TestBulletLifetime(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, 0, 5, 5))

	w.Update(Controls{Fire: true}, 0)
	for i := 1; i <= 15; i++ {
		w.Update(Controls{}, float64(i)/60)
		if len(w.Ship.Bullets) != 1 {
			t.Fatalf("bullet should live through %v, gone at frame %d", p.BulletLifetime, i)
		}
	}

	w.Update(Controls{}, 16.0/60)
	if len(w.Ship.Bullets) != 0 {
		t.Errorf("bullet older than %v should be pruned", p.BulletLifetime)
	}
}

func TestBulletJitterBounds(t *testing.T) {
	p := testParams()
	p.ShieldEnabled = false
	for seed := int64(0); seed < 50; seed++ {
		w := worldWith(p, rock(p, 0, 2, 2))
		w.rng = rand.New(rand.NewSource(seed))
		w.Ship.Heading = 45
		w.Ship.Bullets = []Bullet{{Pos: w.Ship.Pos, Heading: 45}}
		start := w.Ship.Pos

		w.updateBullets(0)

		dir := core.FromHeading(45)
		dx := (w.Ship.Bullets[0].Pos.X - start.X) / dir.X
		dy := (w.Ship.Bullets[0].Pos.Y - start.Y) / dir.Y
		for _, s := range []float64{dx, dy} {
			if s < p.BulletSpeedMin-1e-9 || s > p.BulletSpeedMax+1e-9 {
				t.Fatalf("seed %d: per-axis speed %v outside [%v, %v)", seed, s, p.BulletSpeedMin, p.BulletSpeedMax)
			}
		}
	}
}

func TestSplitLargestTier(t *testing.T) {
	p := stillParams()
	parent := rock(p, 0, 20, 10)
	parent.Spin = 0.75
	w := worldWith(p, parent)
	w.Ship.Bullets = []Bullet{{Pos: parent.Pos}}

	w.Update(Controls{}, 0)

	if len(w.Asteroids) != 2 {
		t.Fatalf("tier 0 hit should leave 2 asteroids, got %d", len(w.Asteroids))
	}
	shrunk, sibling := w.Asteroids[0], w.Asteroids[1]
	for _, a := range []Asteroid{shrunk, sibling} {
		if a.Tier != 1 {
			t.Errorf("split asteroid should be tier 1, got %d", a.Tier)
		}
		if a.Radius != parent.Radius/2 {
			t.Errorf("radius = %v, expected %v", a.Radius, parent.Radius/2)
		}
		if math.Abs(a.Spin) != math.Abs(parent.Spin)*2 {
			t.Errorf("|spin| = %v, expected %v", math.Abs(a.Spin), math.Abs(parent.Spin)*2)
		}
		jitter := p.SplitJitter * parent.Radius
		if math.Abs(a.Pos.X-parent.Pos.X) > jitter || math.Abs(a.Pos.Y-parent.Pos.Y) > jitter {
			t.Errorf("split position %+v farther than %v from %+v", a.Pos, jitter, parent.Pos)
		}
	}
	if shrunk.Spin != parent.Spin*2 {
		t.Errorf("shrunk spin = %v, expected exactly %v", shrunk.Spin, parent.Spin*2)
	}
	if len(w.Ship.Bullets) != 0 {
		t.Errorf("collided bullet should be pruned by end of frame, %d left", len(w.Ship.Bullets))
	}
	if w.Score != p.Tiers[0].Points || w.Hits != 1 {
		t.Errorf("score/hits = %d/%d, expected %d/1", w.Score, w.Hits, p.Tiers[0].Points)
	}
}

func TestSplitJittersAroundImpact(t *testing.T) {
	p := stillParams()
	parent := rock(p, 0, 20, 10)
	impact := core.V(24, 10) // inside the rim, right of centre
	w := worldWith(p, parent)
	w.Ship.Bullets = []Bullet{{Pos: impact}, {Pos: core.V(17, 10)}}

	w.Update(Controls{}, 0)

	if len(w.Asteroids) != 2 {
		t.Fatalf("expected one split, got %d asteroids", len(w.Asteroids))
	}
	jitter := p.SplitJitter * parent.Radius
	for _, a := range w.Asteroids {
		if math.Abs(a.Pos.X-impact.X) > jitter || math.Abs(a.Pos.Y-impact.Y) > jitter {
			t.Errorf("split position %+v farther than %v from impact %+v", a.Pos, jitter, impact)
		}
	}
}

func TestSplitEveryTier(t *testing.T) {
	p := stillParams()
	for tier := Tier(0); tier < TierCount-1; tier++ {
		w := worldWith(p, rock(p, tier, 20, 10), rock(p, 0, 70, 40))
		w.Ship.Bullets = []Bullet{{Pos: core.V(20, 10)}}
		w.Update(Controls{}, 0)

		counts := w.TierCounts()
		if counts[tier+1] != 2 {
			t.Errorf("tier %d hit should produce 2 tier %d asteroids, got %v", tier, tier+1, counts)
		}
	}
}

func TestSmallestTierRemoved(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, TierCount-1, 20, 10), rock(p, 0, 70, 40))
	w.Ship.Bullets = []Bullet{{Pos: core.V(20, 10)}}

	w.Update(Controls{}, 0)

	if len(w.Asteroids) != 1 {
		t.Fatalf("smallest tier hit should remove the asteroid, %d left", len(w.Asteroids))
	}
	if w.Asteroids[0].Pos != core.V(70, 40) {
		t.Errorf("wrong asteroid removed, survivor at %+v", w.Asteroids[0].Pos)
	}
	if w.Outcome != Running {
		t.Errorf("outcome = %v, expected running", w.Outcome)
	}
}

func TestMultipleBulletsSplitOnce(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, 0, 20, 10))
	w.Ship.Bullets = []Bullet{
		{Pos: core.V(20, 10)},
		{Pos: core.V(21, 10)},
		{Pos: core.V(20, 11)},
	}

	w.Update(Controls{}, 0)

	if len(w.Asteroids) != 2 {
		t.Fatalf("three bullets in one frame should still split once, got %d asteroids", len(w.Asteroids))
	}
	if c := w.TierCounts(); c[1] != 2 {
		t.Errorf("expected two tier 1 asteroids, got %v", c)
	}
	if w.Hits != 1 {
		t.Errorf("Hits = %d, expected 1", w.Hits)
	}
	if len(w.Ship.Bullets) != 0 {
		t.Errorf("all bullets inside the asteroid should be spent, %d left", len(w.Ship.Bullets))
	}
}

func TestCollisionIsStrict(t *testing.T) {
	p := stillParams()
	a := rock(p, 0, 20, 10)
	w := worldWith(p, a)
	w.Ship.Bullets = []Bullet{{Pos: core.V(20+a.Radius, 10)}}

	w.Update(Controls{}, 0)

	if len(w.Asteroids) != 1 || w.Asteroids[0].Tier != 0 {
		t.Error("a bullet exactly one radius away should not hit")
	}
	if len(w.Ship.Bullets) != 1 {
		t.Error("a bullet that missed should survive")
	}
}

func TestShipCollisionLoses(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, 0, 40, 23), rock(p, 0, 5, 5))
	w.Ship.Bullets = []Bullet{{Pos: core.V(70, 40)}}

	if got := w.Update(Controls{}, 0); got != Lost {
		t.Fatalf("outcome = %v, expected lost", got)
	}
	if len(w.Asteroids) != 0 {
		t.Errorf("loss should clear the field, %d left", len(w.Asteroids))
	}
	if len(w.Ship.Bullets) != 0 {
		t.Errorf("loss should clear bullets, %d left", len(w.Ship.Bullets))
	}
}

func TestShieldBlocksCollision(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, 0, 40, 23))

	for i := 0; i < 10; i++ {
		if got := w.Update(Controls{Shield: true}, float64(i)*frame); got != Running {
			t.Fatalf("frame %d: shielded ship should survive, got %v", i, got)
		}
		if !w.Ship.Shield {
			t.Fatalf("frame %d: shield should be active while held", i)
		}
	}

	// Releasing the shield loses on the same frame.
	if got := w.Update(Controls{}, 10*frame); got != Lost {
		t.Errorf("unshielded overlap should lose, got %v", got)
	}
}

func TestShieldDroppedWhileFiring(t *testing.T) {
	p := stillParams()
	// Bullets fly clear of the asteroid before collisions are checked.
	p.BulletSpeedMin, p.BulletSpeedMax = 20, 20
	w := worldWith(p, rock(p, 0, 40, 23))

	if got := w.Update(Controls{Shield: true, Fire: true}, 0); got != Lost {
		t.Errorf("shield + fire should leave the ship exposed, got %v", got)
	}
}

func TestShieldDisabledInClassic(t *testing.T) {
	p := stillParams()
	p.ShieldEnabled = false
	w := worldWith(p, rock(p, 0, 40, 23))

	if got := w.Update(Controls{Shield: true}, 0); got != Lost {
		t.Errorf("classic mode ignores the shield, got %v", got)
	}
	if w.Ship.Shield {
		t.Error("shield flag should stay false in classic mode")
	}
}

func TestWinWhenFieldCleared(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, TierCount-1, 20, 10))
	w.Ship.Bullets = []Bullet{{Pos: core.V(20, 10)}, {Pos: core.V(70, 40)}}

	if got := w.Update(Controls{}, 0); got != Won {
		t.Fatalf("outcome = %v, expected won", got)
	}
	if len(w.Ship.Bullets) != 0 {
		t.Error("bullets should not persist once the field is empty")
	}
}

func TestUpdateAfterWinIsNoop(t *testing.T) {
	p := stillParams()
	w := worldWith(p, rock(p, TierCount-1, 20, 10))
	w.Ship.Bullets = []Bullet{{Pos: core.V(20, 10)}}
	w.Update(Controls{}, 0)

	pos, heading := w.Ship.Pos, w.Ship.Heading
	for i := 1; i < 10; i++ {
		w.Update(Controls{}, float64(i)*frame)
	}
	if w.Ship.Pos != pos || w.Ship.Heading != heading {
		t.Errorf("ship moved after win: %+v/%v -> %+v/%v", pos, heading, w.Ship.Pos, w.Ship.Heading)
	}
	if w.Outcome != Won {
		t.Errorf("outcome should stay won, got %v", w.Outcome)
	}
}

func TestClearFullFieldWins(t *testing.T) {
	p := stillParams()
	p.StartCount = 10
	w := NewWorld(p, rand.New(rand.NewSource(3)))

	for i := 0; i < 1000 && w.Outcome == Running; i++ {
		// One bullet on every asteroid centre each frame.
		w.Ship.Bullets = w.Ship.Bullets[:0]
		for _, a := range w.Asteroids {
			w.Ship.Bullets = append(w.Ship.Bullets, Bullet{Pos: a.Pos, SpawnedAt: float64(i) * frame})
		}
		w.Update(Controls{Shield: true}, float64(i)*frame)
	}

	if w.Outcome != Won {
		t.Fatalf("outcome = %v with %d asteroids left, expected won", w.Outcome, len(w.Asteroids))
	}
	// Every starting rock is hit once per tier: 1 + 2 + 4 + 8.
	if w.Hits != 10*15 {
		t.Errorf("Hits = %d, expected %d", w.Hits, 10*15)
	}
}

func TestAsteroidSpeedRanges(t *testing.T) {
	p := testParams()
	for tier := Tier(0); tier < TierCount; tier++ {
		spec := p.Tiers[tier]
		for _, r := range []float64{0, 0.5, 0.999} {
			a := rock(p, tier, 40, 20)
			a.Heading = 90
			w := worldWith(p, a)
			w.rng = constRand(r)
			w.moveAsteroids()

			moved := w.Asteroids[0].Pos.X - 40
			want := spec.SpeedMin + r*(spec.SpeedMax-spec.SpeedMin)
			if math.Abs(moved-want) > 1e-9 {
				t.Errorf("tier %d r=%v moved %v, expected %v", tier, r, moved, want)
			}
		}
	}
}

func TestSpeedFactorScalesAsteroids(t *testing.T) {
	p := testParams()
	a := rock(p, 0, 40, 20)
	a.Heading = 90
	w := worldWith(p, a)
	w.rng = constRand(0)
	w.SetSpeedFactor(2)
	w.moveAsteroids()

	if moved := w.Asteroids[0].Pos.X - 40; math.Abs(moved-2*p.Tiers[0].SpeedMin) > 1e-9 {
		t.Errorf("moved %v, expected %v", moved, 2*p.Tiers[0].SpeedMin)
	}
}
