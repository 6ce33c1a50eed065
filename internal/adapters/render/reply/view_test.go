package reply

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIncludesSummaryAndBody(t *testing.T) {
	tokens := 42
	output, err := Render("The answer is **42**.", RenderOptions{
		Model:        "gpt4o",
		SystemPrompt: "code_review",
		PromptTokens: &tokens,
		Prompt:       "what is the answer",
	})

	require.NoError(t, err)
	assert.Contains(t, output, "gpt4o")
	assert.Contains(t, output, "code_review")
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "what is the answer")
}

func TestRenderOmitsEmptySummaryFields(t *testing.T) {
	output, err := Render("hello", RenderOptions{
		Model:  "gpt4o",
		Prompt: "hi",
	})

	require.NoError(t, err)
	assert.NotContains(t, output, "System Prompt")
	assert.NotContains(t, output, "Tokens")
}

func TestRenderTruncatesLongPrompts(t *testing.T) {
	long := strings.Repeat("word ", 60)
	output, err := Render("ok", RenderOptions{Model: "gpt4o", Prompt: long})

	require.NoError(t, err)
	assert.Contains(t, output, "...")
}

func TestRenderPlainReturnsContentUntouched(t *testing.T) {
	content := "# Heading\n\nplain body"
	output, err := Render(content, RenderOptions{Model: "gpt4o", Prompt: "x", Plain: true})

	require.NoError(t, err)
	assert.Equal(t, content, output)
}

func TestPreviewPromptCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", previewPrompt("a\n  b\t\tc"))
}
