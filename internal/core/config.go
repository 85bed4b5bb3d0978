package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Seconds converts a tick count into elapsed seconds at this tick rate.
func (c RuntimeConfig) Seconds(ticks int) float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return float64(ticks) / float64(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended (won or lost)
	Won      bool // Whether the finished session was a win
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the player asked the game to terminate
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// SessionReport summarises a finished play session for persistence.
type SessionReport struct {
	Outcome   string // "won", "lost" or "quit"
	Score     int
	Destroyed int // asteroids hit, counting every split
	Fired     int // bullets fired
	Ticks     int // simulation ticks the session ran for
}
