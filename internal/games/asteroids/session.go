package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the play-session state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseWon
	PhaseLost
	PhaseTerminated
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Finished reports whether the phase is Won or Lost.
func (p Phase) Finished() bool {
	return p == PhaseWon || p == PhaseLost
}

// Session drives a World through Active -> Won|Lost -> Active, or to
// Terminated on quit.
type Session struct {
	World *World

	phase  Phase
	paused bool
	played int // sessions started, including the current one
}

// NewSession creates a session in the Active phase.
func NewSession(p Params, rng Random) *Session {
	return &Session{
		World:  NewWorld(p, rng),
		phase:  PhaseActive,
		played: 1,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Paused reports whether an active session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Played returns how many sessions have been started.
func (s *Session) Played() int {
	return s.played
}

// Advance consumes one frame of input. Quit terminates from any phase,
// Confirm or Restart starts a new session from Won or Lost, and everything
// else only matters while Active.
func (s *Session) Advance(in core.InputFrame, now float64) Phase {
	if s.phase == PhaseTerminated {
		return s.phase
	}
	if in.Has(core.ActionQuit) {
		s.phase = PhaseTerminated
		return s.phase
	}

	switch s.phase {
	case PhaseActive:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if s.paused {
			return s.phase
		}
		switch s.World.Update(ControlsFrom(in), now) {
		case Won:
			s.phase = PhaseWon
		case Lost:
			s.phase = PhaseLost
		}

	case PhaseWon, PhaseLost:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			s.Restart()
		}
	}
	return s.phase
}

// Restart begins a fresh session regardless of the current phase.
func (s *Session) Restart() {
	s.World.Reset()
	s.phase = PhaseActive
	s.paused = false
	s.played++
}

// ExitSignal tells the caller of Run why the loop ended.
type ExitSignal int

const (
	// ExitQuit means the player asked to quit.
	ExitQuit ExitSignal = iota
	// ExitClosed means the collaborator stopped providing frames.
	ExitClosed
)

// Collaborator is whatever owns the window, the keyboard and the clock.
// Run calls it once per frame and never blocks on anything else.
type Collaborator interface {
	// Bounds returns the playfield size in units.
	Bounds() (w, h float64)
	// Now returns the continuous clock in seconds.
	Now() float64
	// Poll returns the actions held for this frame.
	Poll() core.InputFrame
	// Present shows the session after the frame has been applied.
	Present(s *Session)
	// Yield hands control back until the next frame. It returns false
	// once no further frames will come.
	Yield() bool
}

// Run plays sessions until the player quits or the collaborator closes.
func Run(c Collaborator, p Params, rng Random) ExitSignal {
	p.Width, p.Height = c.Bounds()
	s := NewSession(p, rng)

	for {
		s.Advance(c.Poll(), c.Now())
		c.Present(s)
		if s.Phase() == PhaseTerminated {
			return ExitQuit
		}
		if !c.Yield() {
			return ExitClosed
		}
	}
}
