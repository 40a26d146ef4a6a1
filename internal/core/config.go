package core

// RuntimeConfig contains configuration passed to a game session at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Loop ticks per second (default 30)
	Seed     int64 // RNG seed for the piece bag
}

// DefaultTickRate is the loop cadence in ticks per second.
const DefaultTickRate = 30

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}
