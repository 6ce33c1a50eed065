// Package reply renders a completed exchange for the terminal: a request
// summary panel followed by the response body as styled markdown.
package reply

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const promptPreviewLimit = 100

// RenderOptions describes the exchange around the response body.
type RenderOptions struct {
	Model        string
	SystemPrompt string
	PromptTokens *int
	Prompt       string

	// Plain skips all styling and markdown rendering.
	Plain bool

	// WordWrap bounds the markdown body width. Zero picks a default.
	WordWrap int
}

func renderView(content string, opts RenderOptions, s styles) string {
	header := s.panel.Render(renderSummary(opts, s))
	body := renderMarkdown(content, opts.WordWrap)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func renderSummary(opts RenderOptions, s styles) string {
	lines := []string{
		s.key.Render("Model: ") + s.value.Render(opts.Model),
	}

	if opts.SystemPrompt != "" {
		lines = append(lines, s.key.Render("System Prompt: ")+s.value.Render(opts.SystemPrompt))
	}

	if opts.PromptTokens != nil {
		lines = append(lines, s.key.Render("Tokens: ")+s.value.Render(fmt.Sprintf("%d", *opts.PromptTokens)))
	}

	lines = append(lines, s.key.Render("Prompt: ")+s.faint.Render(previewPrompt(opts.Prompt)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func previewPrompt(prompt string) string {
	collapsed := strings.Join(strings.Fields(prompt), " ")
	runes := []rune(collapsed)
	if len(runes) <= promptPreviewLimit {
		return collapsed
	}

	return string(runes[:promptPreviewLimit]) + "..."
}

func renderMarkdown(content string, wordWrap int) string {
	if wordWrap <= 0 {
		wordWrap = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n") + "\n"
}
