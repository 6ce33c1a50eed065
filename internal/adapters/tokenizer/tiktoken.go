// Package tokenizer counts tokens with OpenAI's tiktoken encodings.
package tokenizer

import (
	"fmt"

	"github.com/bnema/argo-agent-cli/internal/ports"
	"github.com/pkoukk/tiktoken-go"
)

// Counter measures text with the encoding of one model family. Counts are
// model-dependent and not portable across models.
type Counter struct {
	encoding *tiktoken.Tiktoken
}

var _ ports.TokenCounter = (*Counter)(nil)

// New builds a counter for the given model hint, falling back to the
// cl100k_base encoding when the model is unknown to tiktoken.
func New(modelHint string) (*Counter, error) {
	encoding, err := tiktoken.EncodingForModel(modelHint)
	if err != nil {
		encoding, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("load cl100k_base encoding: %w", err)
		}
	}

	return &Counter{encoding: encoding}, nil
}

// Count returns the token count, or false when no encoding is available.
func (c *Counter) Count(text string) (int, bool) {
	if c == nil || c.encoding == nil {
		return 0, false
	}
	return len(c.encoding.Encode(text, nil, nil)), true
}

// Unavailable is the degraded counter used when no encoding could be loaded;
// every count is unknown, so budgets are effectively unenforced.
type Unavailable struct{}

func (Unavailable) Count(string) (int, bool) {
	return 0, false
}
