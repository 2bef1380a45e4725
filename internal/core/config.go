package core

import "time"

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

// TickDuration returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// TickSeconds returns the length of one simulation tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	return c.TickDuration().Seconds()
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Lives    int  // Remaining lives
	Won      bool // Every alien in the wave is gone
	Lost     bool // Lives exhausted or the defense line was crossed
	GameOver bool // Won or Lost
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
