package domain

// ModelConfig describes one gateway model: its completion token ceiling and
// whether it accepts the standard sampling parameters (temperature, top_p).
// Reasoning-family models only accept max_completion_tokens.
type ModelConfig struct {
	Name                   string
	MaxTokens              int
	SupportsStandardParams bool
}
