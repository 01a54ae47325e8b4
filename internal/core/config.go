package core

// RuntimeConfig contains configuration passed to a race at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the host loop
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// RaceState is the session status reported to the platform after each tick.
type RaceState struct {
	Countdown float64 // Seconds left before the start
	Elapsed   float64 // Seconds raced since the countdown ended
	Distance  float64 // World pixels travelled
	Speed     float64 // Speed applied by the last step
	Crashes   int     // Number of crash onsets this run
	Crashed   bool    // Vehicle is crashed this tick
	Started   bool    // Countdown has finished
	Paused    bool    // Race is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State RaceState
}
