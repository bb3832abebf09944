package drills

// Config controls the generation/repair orchestrator.
type Config struct {
	// MaxTokens is the token budget for a generation response.
	MaxTokens int

	// RepairMaxTokens is the token budget for a single-item repair call.
	RepairMaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       4096,
		RepairMaxTokens: 1024,
		Temperature:     0.7,
	}
}
