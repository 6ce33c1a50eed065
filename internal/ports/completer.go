package ports

import (
	"context"
	"time"

	"github.com/bnema/argo-agent-cli/internal/domain"
)

// Completion is the gateway's answer plus the wall-clock time it took,
// measured from just before the first attempt to just after the final
// successful response.
type Completion struct {
	Content string
	Elapsed time.Duration
}

// Completer delivers an assembled prompt request to the remote gateway.
type Completer interface {
	Complete(ctx context.Context, req domain.PromptRequest) (Completion, error)
}
