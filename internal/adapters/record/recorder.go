// Package record persists completed interactions as JSON files, one per
// exchange.
package record

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports"
)

const timestampLayout = "20060102_150405"

// Recorder writes interaction files under a base directory, creating it on
// first use.
type Recorder struct {
	dir string
}

var _ ports.Recorder = (*Recorder)(nil)

func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir}
}

// Record writes the interaction to {user}_{model}_{timestamp}.json. Files for
// the same user, model and second overwrite each other.
func (r *Recorder) Record(ctx context.Context, interaction domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create interactions directory: %w", err)
	}

	data, err := json.MarshalIndent(interaction, "", "  ")
	if err != nil {
		return fmt.Errorf("encode interaction: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.json",
		interaction.User,
		interaction.Request.Model,
		interaction.Timestamp.Format(timestampLayout),
	)

	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write interaction file: %w", err)
	}

	return nil
}
