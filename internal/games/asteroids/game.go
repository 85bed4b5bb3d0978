// Package asteroids implements the Asteroids game: a ship, its bullets and a
// field of rocks that split into smaller tiers when shot.
package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Minimum screen size the game will run on.
const (
	minScreenW = 30
	minScreenH = 12
)

// Mode selects which iteration of the game is played.
type Mode int

const (
	ModeShield  Mode = iota // Full game with the shield
	ModeClassic             // Shooting and splitting only, shield input ignored
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the game registry.
type Game struct {
	mode Mode

	session    *Session
	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	difficulty *config.DifficultyManager
	canvas     *core.Canvas

	ticks          int // simulated ticks since Reset, drives the clock
	sessionStart   int // tick the current session began on
	lastPhase      Phase
	screenTooSmall bool
	report         core.SessionReport
}

// New creates a new Asteroids game with the shield enabled.
func New() *Game {
	return &Game{mode: ModeShield}
}

// NewClassic creates the shield-less variant.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "asteroids_classic"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Asteroids (Classic)"
	}
	return "Asteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}

	// Apply difficulty preset if set
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	rows := max(runtime.ScreenH-hudRows, 1)
	cols := max(runtime.ScreenW, 1)
	g.canvas = core.NewCanvas(cols, rows)

	params := ParamsFromConfig(cfg, g.canvas.Width(), g.canvas.Height(), g.mode == ModeShield)
	params.StartCount = g.difficulty.StartCount(params.StartCount)

	g.session = NewSession(params, rand.New(rand.NewSource(runtime.Seed)))
	g.ticks = 0
	g.sessionStart = 0
	g.lastPhase = PhaseActive
	g.report = core.SessionReport{}
}

// Resize adopts a new screen size and keeps the current session. The
// playfield bounds change in place, so a finished session restarts on the
// new field.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.session == nil {
		g.Reset(runtime)
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.canvas = core.NewCanvas(max(runtime.ScreenW, 1), max(runtime.ScreenH-hudRows, 1))
	g.session.World.SetBounds(g.canvas.Width(), g.canvas.Height())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		if in.Has(core.ActionQuit) {
			g.session.Advance(in, 0)
		}
		return core.StepResult{State: g.State()}
	}

	if g.runsWorld(in) {
		g.ticks++
	}
	w := g.session.World
	w.SetSpeedFactor(g.difficulty.SpeedFactor(w.Score, g.ticks-g.sessionStart))

	phase := g.session.Advance(in, g.runtime.Seconds(g.ticks))

	switch {
	case phase.Finished() && !g.lastPhase.Finished():
		g.report = core.SessionReport{
			Outcome:   phase.String(),
			Score:     w.Score,
			Destroyed: w.Hits,
			Fired:     w.BulletsFired,
			Ticks:     g.ticks - g.sessionStart,
		}
	case phase == PhaseActive && g.lastPhase.Finished():
		g.sessionStart = g.ticks
		g.report = core.SessionReport{}
	case phase == PhaseTerminated && g.lastPhase == PhaseActive:
		g.report = core.SessionReport{
			Outcome:   "quit",
			Score:     w.Score,
			Destroyed: w.Hits,
			Fired:     w.BulletsFired,
			Ticks:     g.ticks - g.sessionStart,
		}
	}
	g.lastPhase = phase

	return core.StepResult{State: g.State()}
}

// runsWorld reports whether in will advance the simulation. The clock only
// moves on those frames, so bullets do not age while paused.
func (g *Game) runsWorld(in core.InputFrame) bool {
	if g.session.Phase() != PhaseActive || in.Has(core.ActionQuit) {
		return false
	}
	// Pause toggles before the world runs.
	return g.session.Paused() == in.Has(core.ActionPause)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.World.Score,
		GameOver: phase.Finished(),
		Won:      phase == PhaseWon,
		Paused:   g.session.Paused(),
		Quit:     phase == PhaseTerminated,
	}
}

// Report returns the summary of the last finished session, or a zero report
// while a session is still running.
func (g *Game) Report() core.SessionReport {
	return g.report
}

// Session exposes the underlying session, mainly for tests.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game variants with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
	registry.Register("asteroids_classic", func() registry.Game {
		return NewClassic()
	})
}
