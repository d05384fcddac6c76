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

// TicksFor converts a duration in milliseconds to whole ticks (at least 1).
func (c RuntimeConfig) TicksFor(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	t := (ms*rate + 999) / 1000
	if t < 1 {
		t = 1
	}
	return t
}

// GameState is the game status reported to the platform after every step.
type GameState struct {
	Score    int    // Current score
	High     int    // Best score known to the game
	Level    int    // Current level, 1-based
	Lives    int    // Remaining lives, 0 for single-life games
	Active   bool   // Simulation is advancing; the loop keeps ticking only while true
	GameOver bool   // Round has ended
	Status   string // Short state name (ready, playing, gameover, ...)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events Events
}
