package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// Dt returns the fixed time delta per simulation tick in seconds.
func (c RuntimeConfig) Dt() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
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

// GameState communicates the engine's status to the platform after a tick.
// SessionID is the opaque per-game identifier the host forwards together
// with the terminal score to whatever score sink it uses.
type GameState struct {
	Score     int    // Current score (player's score for two-sided games)
	GameOver  bool   // Whether the game has ended
	Paused    bool   // Whether the game is paused
	Outcome   string // How the game ended ("win", "loss", "wall", ...); empty while running
	SessionID string // Opaque identifier minted at game start
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
