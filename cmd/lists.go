package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPromptsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompts",
		Short: "List available system prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, prompt := range app.library.SystemPrompts() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", prompt.Name, summarize(prompt.Instruction))
			}
			return nil
		},
	}
}

func newTasksCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List available task bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks := app.library.Tasks()
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks configured")
				return nil
			}

			for _, task := range tasks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", task.Name, task.Description)
			}
			return nil
		},
	}
}

func newModelsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List known models and their token ceilings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, model := range app.models.List() {
				params := "max_completion_tokens only"
				if model.SupportsStandardParams {
					params = "standard params"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", model.Name, model.MaxTokens, params)
			}
			return nil
		},
	}
}

// summarize keeps list output one line per entry.
func summarize(text string) string {
	const limit = 60

	line := text
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	runes := []rune(line)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return line
}
