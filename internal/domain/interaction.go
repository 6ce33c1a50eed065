package domain

import "time"

// Interaction is the persisted record of one successful gateway call. It is
// written once to a timestamped JSON file and never read back.
type Interaction struct {
	Timestamp time.Time           `json:"timestamp"`
	Request   InteractionRequest  `json:"request"`
	Response  InteractionResponse `json:"response"`

	// User names the caller for the file name only; the record itself keeps
	// the request shape stable.
	User string `json:"-"`
}

type InteractionRequest struct {
	Prompt     string                `json:"prompt"`
	Model      string                `json:"model"`
	Parameters InteractionParameters `json:"parameters"`
	System     string                `json:"system"`
}

type InteractionParameters struct {
	Temperature         *float64 `json:"temperature"`
	TopP                *float64 `json:"top_p"`
	MaxTokens           *int     `json:"max_tokens"`
	MaxCompletionTokens *int     `json:"max_completion_tokens"`
}

type InteractionResponse struct {
	Content   string  `json:"content"`
	TimeTaken float64 `json:"time_taken"`
}

// NewInteraction assembles a record from the request that was sent and the
// response that came back.
func NewInteraction(at time.Time, req PromptRequest, content string, elapsed time.Duration) Interaction {
	prompt := ""
	if len(req.Prompt) > 0 {
		prompt = req.Prompt[0]
	}

	return Interaction{
		Timestamp: at,
		User:      req.User,
		Request: InteractionRequest{
			Prompt: prompt,
			Model:  req.Model,
			Parameters: InteractionParameters{
				Temperature:         req.Temperature,
				TopP:                req.TopP,
				MaxTokens:           req.MaxTokens,
				MaxCompletionTokens: req.MaxCompletionTokens,
			},
			System: req.System,
		},
		Response: InteractionResponse{
			Content:   content,
			TimeTaken: elapsed.Seconds(),
		},
	}
}
