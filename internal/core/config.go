package core

// RuntimeConfig contains per-run options passed from the command line
// to the platform layer.
type RuntimeConfig struct {
	ScreenW   int    // Terminal width in characters
	ScreenH   int    // Terminal height in characters
	FrameRate int    // Host frames per second (default 60)
	Seed      int64  // RNG seed for deterministic gameplay
	Profile   string // Preference namespace (local user or SSH user)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
		Profile:   "local",
	}
}
