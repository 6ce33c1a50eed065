package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/argo-agent-cli/internal/domain"
)

const (
	// ContextPlaceholder marks where serialized context is substituted into
	// the working prompt.
	ContextPlaceholder = "{context}"

	contextSeparator = "\nreply based on the content here:"
)

// ComposePrompt merges the user prompt, an optional system instruction, and
// optional serialized context into the final outgoing prompt. The system
// instruction always precedes user content; context substitution or append
// always happens last. Pure: the same inputs yield the same string.
func ComposePrompt(prompt string, contextText *string, systemInstruction string) string {
	composed := prompt

	if systemInstruction != "" {
		composed = systemInstruction + "\n\n" + composed
	}

	if contextText != nil {
		if strings.Contains(composed, ContextPlaceholder) {
			composed = strings.ReplaceAll(composed, ContextPlaceholder, *contextText)
		} else {
			composed = composed + contextSeparator + *contextText
		}
	}

	return composed
}

// RenderContext serializes an aggregation as a deterministic JSON object of
// path -> extracted text, preserving discovery order.
func RenderContext(agg domain.Aggregation) (string, error) {
	if agg.Empty() {
		return "{}", nil
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, entry := range agg.Entries {
		key, err := json.Marshal(entry.Path)
		if err != nil {
			return "", fmt.Errorf("marshal context key %q: %w", entry.Path, err)
		}
		value, err := json.Marshal(entry.Text)
		if err != nil {
			return "", fmt.Errorf("marshal context text for %q: %w", entry.Path, err)
		}

		b.WriteString("  ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(value)
		if i < len(agg.Entries)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")

	return b.String(), nil
}
