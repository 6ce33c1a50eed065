package ports

import (
	"context"

	"github.com/bnema/argo-agent-cli/internal/domain"
)

// Recorder persists one interaction record. Best-effort: a failure is logged
// by the caller and never rolled back into an error for the invocation.
type Recorder interface {
	Record(ctx context.Context, interaction domain.Interaction) error
}
