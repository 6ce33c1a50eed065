package domain

// SystemPrompt is a named, pre-authored system instruction.
type SystemPrompt struct {
	Name        string
	Instruction string
}

// Task bundles a system instruction with a default user prompt, selected by
// name instead of composing both manually.
type Task struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Goal         string `yaml:"goal"`
	SystemPrompt string `yaml:"system_prompt"`
	UserPrompt   string `yaml:"user_prompt"`
}

// PromptRequest is the gateway wire shape. Exactly one prompt string, an
// always-present (possibly empty) stop list, and either the standard sampling
// parameters or max_completion_tokens, never both.
type PromptRequest struct {
	User                string   `json:"user"`
	Model               string   `json:"model"`
	System              string   `json:"system"`
	Prompt              []string `json:"prompt"`
	Stop                []string `json:"stop"`
	Temperature         *float64 `json:"temperature,omitempty"`
	TopP                *float64 `json:"top_p,omitempty"`
	MaxTokens           *int     `json:"max_tokens,omitempty"`
	MaxCompletionTokens *int     `json:"max_completion_tokens,omitempty"`
}

// NewPromptRequest shapes the outgoing request for one model. Standard
// parameters are sent only when the model supports them; either way the
// completion ceiling is capped at the model's configured maximum.
func NewPromptRequest(user string, model ModelConfig, system, prompt string, params Parameters) PromptRequest {
	req := PromptRequest{
		User:   user,
		Model:  model.Name,
		System: system,
		Prompt: []string{prompt},
		Stop:   []string{},
	}

	capped := min(params.MaxTokens, model.MaxTokens)
	if model.SupportsStandardParams {
		temperature := params.Temperature
		topP := params.TopP
		req.Temperature = &temperature
		req.TopP = &topP
		req.MaxTokens = &capped
	} else {
		req.MaxCompletionTokens = &capped
	}

	return req
}
