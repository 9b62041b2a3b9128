package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from the window or terminal it drives.
type RuntimeConfig struct {
	ScreenW  float64 // Screen width in logical units
	ScreenH  float64 // Screen height in logical units
	TickRate int     // Frames per second the platform aims for (default 60)
	Seed     int64   // RNG seed for reproducible gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform after each frame.
type GameState struct {
	Phase    string // Name of the current game state
	Score    int    // Current score
	Lives    int    // Remaining player lives
	GameOver bool   // Whether the session has ended (won or lost)
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
