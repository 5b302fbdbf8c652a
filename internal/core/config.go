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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int  // Cumulative score
	Level   int  // Current level (1-based)
	Running bool // Whether the game has been started
	Paused  bool // Whether the game is paused (including level-complete banners)
}

// Event is a named, fire-and-forget signal raised during a tick.
// Platforms map events to sounds; games never wait on them.
type Event string

// Events shared by games and platforms.
const (
	EventCatch         Event = "catch"
	EventLevelComplete Event = "level_complete"
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
