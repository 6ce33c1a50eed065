package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := newRootCmd()
	root.SetArgs(defaultToAsk(root, os.Args[1:]))
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aa",
		Short:         "Argo Agent CLI (aa): prompt a text-generation gateway with local file context",
		Long:          "aa (Argo Agent CLI) assembles prompts from local files within a token budget, merges them with named system prompts or tasks, sends them to an Argo gateway, and renders the reply in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAskCmd(app),
		newPromptsCmd(app),
		newTasksCmd(app),
		newModelsCmd(app),
	)

	return rootCmd
}

// defaultToAsk makes `aa "question"` behave as `aa ask "question"`. Known
// subcommands and bare help/completion invocations pass through untouched.
func defaultToAsk(root *cobra.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}

	first := args[0]
	switch first {
	case "-h", "--help", "help", "completion", "__complete", "__completeNoDesc":
		return args
	}

	for _, sub := range root.Commands() {
		if sub.Name() == first || sub.HasAlias(first) {
			return args
		}
	}

	return append([]string{"ask"}, args...)
}
