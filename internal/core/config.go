package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Current score
	Moves    int  // Accepted moves this session
	GameOver bool // Won or lost; no further moves are accepted
	Won      bool // Target tile reached
}

// StepResult is returned by Game.Step after each input event.
type StepResult struct {
	State GameState
	Moved bool // Whether the board changed
}
