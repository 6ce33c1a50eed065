package domain

// Parameters are the caller-supplied sampling controls, validated before any
// network activity.
type Parameters struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultMaxTokens   = 4096
)

// DefaultParameters returns the gateway defaults.
func DefaultParameters() Parameters {
	return Parameters{
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Validate checks the parameter ranges: temperature in [0,2], top_p in [0,1],
// max_tokens > 0. The first violation is returned as an InvalidParameterError.
func (p Parameters) Validate() error {
	if p.Temperature < 0 || p.Temperature > 2 {
		return &InvalidParameterError{Name: "temperature", Value: p.Temperature}
	}
	if p.TopP < 0 || p.TopP > 1 {
		return &InvalidParameterError{Name: "top_p", Value: p.TopP}
	}
	if p.MaxTokens <= 0 {
		return &InvalidParameterError{Name: "max_tokens", Value: float64(p.MaxTokens)}
	}
	return nil
}
