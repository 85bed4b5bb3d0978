package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// maxSpawnAttempts bounds the retries when placing an asteroid away from the ship.
const maxSpawnAttempts = 32

// Ship is the player's craft.
type Ship struct {
	Pos     core.Vec2
	Heading float64 // degrees, 0 = up
	Bullets []Bullet
	Shield  bool // true only for the frame it was requested
}

// Bullet is a shot fired by the ship.
type Bullet struct {
	Pos       core.Vec2
	Heading   float64
	SpawnedAt float64 // clock value when fired
	Collided  bool
}

// Asteroid is a rock in the field.
type Asteroid struct {
	Pos      core.Vec2
	Heading  float64
	Tier     Tier
	Radius   float64
	Spin     float64 // degrees per tick, signed
	Rotation float64 // current drawing rotation
}

// Controls is the input snapshot for one frame.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
	Shield bool
}

// ControlsFrom extracts ship controls from a platform input frame.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Left:   in.Has(core.ActionRotateLeft),
		Right:  in.Has(core.ActionRotateRight),
		Thrust: in.Has(core.ActionThrust),
		Fire:   in.Has(core.ActionFire),
		Shield: in.Has(core.ActionShield),
	}
}

// Outcome is the result of a session so far.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

// String returns the outcome name used in storage and logs.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// World owns the ship and the asteroid field and advances them one frame
// at a time.
type World struct {
	params Params
	rng    Random

	Ship      Ship
	Asteroids []Asteroid
	Outcome   Outcome

	Score        int
	Hits         int // asteroids hit, counting every split
	BulletsFired int
}

// NewWorld creates a world and populates a fresh session.
func NewWorld(p Params, rng Random) *World {
	w := &World{params: p, rng: rng}
	w.Reset()
	return w
}

// Params returns the parameters the world runs with.
func (w *World) Params() Params {
	return w.params
}

// SetBounds changes the playfield size. Live positions are wrapped into the
// new field; the next Reset spawns across all of it.
func (w *World) SetBounds(width, height float64) {
	w.params.Width, w.params.Height = width, height
	w.Ship.Pos = core.WrapVec(w.Ship.Pos, width, height)
	for i := range w.Asteroids {
		w.Asteroids[i].Pos = core.WrapVec(w.Asteroids[i].Pos, width, height)
	}
	for i := range w.Ship.Bullets {
		w.Ship.Bullets[i].Pos = core.WrapVec(w.Ship.Bullets[i].Pos, width, height)
	}
}

// SetSpeedFactor changes the asteroid speed multiplier for later frames.
func (w *World) SetSpeedFactor(f float64) {
	w.params.SpeedFactor = f
}

// Reset starts a new session: ship centred with no bullets and a full field.
func (w *World) Reset() {
	w.Ship = Ship{
		Pos: core.V(w.params.Width/2, w.params.Height/2),
	}
	w.Outcome = Running
	w.Score = 0
	w.Hits = 0
	w.BulletsFired = 0

	w.Asteroids = make([]Asteroid, 0, w.params.StartCount*2)
	for i := 0; i < w.params.StartCount; i++ {
		w.Asteroids = append(w.Asteroids, w.newAsteroid(w.spawnPoint()))
	}
}

// spawnPoint picks a position inside the inset bounds, away from the ship
// when possible.
func (w *World) spawnPoint() core.Vec2 {
	var p core.Vec2
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		p = core.V(w.insetCoord(w.params.Width), w.insetCoord(w.params.Height))
		if p.Dist(w.Ship.Pos) >= w.params.SpawnClearance {
			break
		}
	}
	return p
}

// insetCoord draws a coordinate in [inset, size-inset), or the full axis
// when the inset leaves no room.
func (w *World) insetCoord(size float64) float64 {
	inset := w.params.Inset
	if size-2*inset <= 0 {
		return uniform(w.rng, 0, size)
	}
	return uniform(w.rng, inset, size-inset)
}

func (w *World) newAsteroid(pos core.Vec2) Asteroid {
	return Asteroid{
		Pos:      pos,
		Heading:  uniform(w.rng, 0, 360),
		Tier:     0,
		Radius:   w.params.Tiers[0].Radius,
		Spin:     sign(w.rng) * uniform(w.rng, w.params.SpinMin, w.params.SpinMax),
		Rotation: uniform(w.rng, 0, 360),
	}
}

// Update advances the world by one frame. now is the session clock in
// seconds. Once the session is decided further calls change nothing.
func (w *World) Update(c Controls, now float64) Outcome {
	if w.Outcome != Running {
		return w.Outcome
	}

	w.updateShip(c, now)
	w.updateBullets(now)
	w.resolveHits()

	if w.shipHit() {
		w.Outcome = Lost
		w.Asteroids = w.Asteroids[:0]
		w.Ship.Bullets = nil
		return w.Outcome
	}

	w.moveAsteroids()
	w.pruneBullets(now)

	if len(w.Asteroids) == 0 {
		w.Outcome = Won
		w.Ship.Bullets = nil
	}
	return w.Outcome
}

func (w *World) updateShip(c Controls, now float64) {
	s := &w.Ship
	if c.Left {
		s.Heading -= w.params.RotateStep
	}
	if c.Right {
		s.Heading += w.params.RotateStep
	}
	s.Heading = core.NormalizeDeg(s.Heading)

	if c.Thrust {
		s.Pos = s.Pos.Add(core.FromHeading(s.Heading).Scale(w.params.ThrustSpeed))
		s.Pos = core.WrapVec(s.Pos, w.params.Width, w.params.Height)
	}

	// Firing drops the shield for that frame.
	s.Shield = w.params.ShieldEnabled && c.Shield && !c.Fire

	if c.Fire {
		s.Bullets = append(s.Bullets, Bullet{
			Pos:       s.Pos,
			Heading:   s.Heading,
			SpawnedAt: now,
		})
		w.BulletsFired++
	}
}

// updateBullets moves every bullet with an independent speed per axis,
// then drops the expired ones.
func (w *World) updateBullets(now float64) {
	for i := range w.Ship.Bullets {
		b := &w.Ship.Bullets[i]
		dir := core.FromHeading(b.Heading)
		sx := uniform(w.rng, w.params.BulletSpeedMin, w.params.BulletSpeedMax)
		sy := uniform(w.rng, w.params.BulletSpeedMin, w.params.BulletSpeedMax)
		b.Pos = core.WrapVec(core.V(b.Pos.X+dir.X*sx, b.Pos.Y+dir.Y*sy), w.params.Width, w.params.Height)
	}
	w.pruneBullets(now)
}

// pruneBullets keeps bullets that are live and have not hit anything.
func (w *World) pruneBullets(now float64) {
	live := w.Ship.Bullets[:0]
	for _, b := range w.Ship.Bullets {
		if b.Collided || now-b.SpawnedAt > w.params.BulletLifetime {
			continue
		}
		live = append(live, b)
	}
	w.Ship.Bullets = live
}

// resolveHits tests every asteroid against every live bullet. An asteroid
// reacts at most once per frame however many bullets reach it; all of those
// bullets are spent. Survivors are compacted into a new slice and split
// siblings are appended after them.
func (w *World) resolveHits() {
	if len(w.Ship.Bullets) == 0 {
		return
	}

	survivors := make([]Asteroid, 0, len(w.Asteroids)+4)
	var spawned []Asteroid

	for _, a := range w.Asteroids {
		hit := false
		var impact core.Vec2 // first bullet to land
		for i := range w.Ship.Bullets {
			b := &w.Ship.Bullets[i]
			if b.Collided {
				continue
			}
			if a.Pos.Dist(b.Pos) < a.Radius {
				if !hit {
					impact = b.Pos
				}
				b.Collided = true
				hit = true
			}
		}
		if !hit {
			survivors = append(survivors, a)
			continue
		}

		w.Hits++
		w.Score += w.params.Tiers[a.Tier].Points

		if a.Tier.Smallest() {
			continue
		}
		shrunk, sibling := w.split(a, impact)
		survivors = append(survivors, shrunk)
		spawned = append(spawned, sibling)
	}

	w.Asteroids = append(survivors, spawned...)
}

// split shrinks a to the next tier in place and returns it together with
// its new sibling of the same tier. Both land near the impact point.
func (w *World) split(a Asteroid, impact core.Vec2) (Asteroid, Asteroid) {
	origin := impact
	jitter := w.params.SplitJitter * a.Radius

	a.Tier = a.Tier.Next()
	a.Radius /= 2
	a.Spin *= 2
	a.Pos = w.jitter(origin, jitter)
	a.Heading = uniform(w.rng, 0, 360)

	sibling := Asteroid{
		Pos:      w.jitter(origin, jitter),
		Heading:  uniform(w.rng, 0, 360),
		Tier:     a.Tier,
		Radius:   a.Radius,
		Spin:     sign(w.rng) * math.Abs(a.Spin),
		Rotation: uniform(w.rng, 0, 360),
	}
	return a, sibling
}

// jitter returns a wrapped point within r of origin on each axis.
func (w *World) jitter(origin core.Vec2, r float64) core.Vec2 {
	p := core.V(origin.X+uniform(w.rng, -r, r), origin.Y+uniform(w.rng, -r, r))
	return core.WrapVec(p, w.params.Width, w.params.Height)
}

// shipHit reports whether an unshielded ship centre lies inside any asteroid.
func (w *World) shipHit() bool {
	if w.Ship.Shield {
		return false
	}
	for _, a := range w.Asteroids {
		if w.Ship.Pos.Dist(a.Pos) < a.Radius {
			return true
		}
	}
	return false
}

func (w *World) moveAsteroids() {
	for i := range w.Asteroids {
		a := &w.Asteroids[i]
		spec := w.params.Tiers[a.Tier]
		speed := uniform(w.rng, spec.SpeedMin, spec.SpeedMax) * w.params.SpeedFactor
		a.Pos = core.WrapVec(a.Pos.Add(core.FromHeading(a.Heading).Scale(speed)), w.params.Width, w.params.Height)
		a.Rotation = core.NormalizeDeg(a.Rotation + a.Spin)
	}
}

// TierCounts returns how many asteroids of each tier are in the field.
func (w *World) TierCounts() [TierCount]int {
	var counts [TierCount]int
	for _, a := range w.Asteroids {
		counts[a.Tier]++
	}
	return counts
}
