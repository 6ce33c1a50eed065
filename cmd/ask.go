package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/argo-agent-cli/internal/adapters/render/reply"
	"github.com/bnema/argo-agent-cli/internal/application"
	"github.com/bnema/argo-agent-cli/internal/domain"
)

var errMissingGatewayConfig = errors.New("gateway URL and user must be set (flags --url/--user or ARGO_URL/ARGO_USER)")

type askFlags struct {
	promptFile   string
	contextSpecs []string
	systemName   string
	taskName     string
	model        string
	temperature  float64
	topP         float64
	maxTokens    int
	countOnly    bool
	noRecord     bool
	plain        bool
	gatewayURL   string
	gatewayUser  string
	timeout      time.Duration
	verbose      bool
}

func newAskCmd(app *app) *cobra.Command {
	var flags askFlags

	cmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Send a prompt to the gateway, optionally packed with local file context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := ""
			if len(args) == 1 {
				prompt = args[0]
			}
			return runAsk(cmd, app, prompt, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.promptFile, "prompt-file", "f", "", "Read the prompt from a file instead of the argument")
	cmd.Flags().StringArrayVarP(&flags.contextSpecs, "context", "c", nil, "File, directory, or wildcard pattern to include as context (repeatable)")
	cmd.Flags().StringVarP(&flags.systemName, "system", "s", "", "Named system prompt to apply")
	cmd.Flags().StringVar(&flags.taskName, "task", "", "Named task bundle to apply")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "gpt4olatest", "Model to prompt")
	cmd.Flags().Float64VarP(&flags.temperature, "temperature", "t", domain.DefaultTemperature, "Sampling temperature (0-2); ignored by some models")
	cmd.Flags().Float64VarP(&flags.topP, "top-p", "o", domain.DefaultTopP, "Top-p sampling (0-1); ignored by some models")
	cmd.Flags().IntVarP(&flags.maxTokens, "max-tokens", "x", 100000, "Response token ceiling; also bounds gathered context")
	cmd.Flags().BoolVarP(&flags.countOnly, "count-only", "n", false, "Count prompt tokens and exit without calling the gateway")
	cmd.Flags().BoolVar(&flags.noRecord, "no-record", false, "Skip writing the interaction record")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Print the raw response without styling")
	cmd.Flags().StringVar(&flags.gatewayURL, "url", "", "Gateway endpoint URL (default: ARGO_URL)")
	cmd.Flags().StringVar(&flags.gatewayUser, "user", "", "Gateway user (default: ARGO_USER)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 120*time.Second, "Per-attempt request timeout")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("system", "task")

	return cmd
}

func runAsk(cmd *cobra.Command, app *app, prompt string, flags askFlags) error {
	if flags.verbose {
		app.logLevel.Set(slog.LevelDebug)
		app.logger.Debug("verbose logging enabled")
	}

	gatewayURL := firstNonEmpty(flags.gatewayURL, app.gatewayURL)
	gatewayUser := firstNonEmpty(flags.gatewayUser, app.gatewayUser)
	if !flags.countOnly && (gatewayURL == "" || gatewayUser == "") {
		return errMissingGatewayConfig
	}

	if flags.promptFile != "" {
		content, err := os.ReadFile(flags.promptFile)
		if err != nil {
			return fmt.Errorf("read prompt file: %w", err)
		}
		prompt = strings.TrimSpace(string(content))
	}

	systemInstruction := ""
	systemLabel := ""
	switch {
	case flags.taskName != "":
		task, err := app.library.Task(flags.taskName)
		if err != nil {
			return err
		}
		systemInstruction = task.SystemPrompt
		systemLabel = task.Name
		if prompt == "" {
			prompt = task.UserPrompt
		}
	case flags.systemName != "":
		systemPrompt, err := app.library.SystemPrompt(flags.systemName)
		if err != nil {
			return err
		}
		systemInstruction = systemPrompt.Instruction
		systemLabel = systemPrompt.Name
	}

	if prompt == "" {
		return errors.New("no prompt given: pass it as an argument, via --prompt-file, or via a --task with a default prompt")
	}

	var budget *int
	if len(flags.contextSpecs) > 0 {
		limit := flags.maxTokens
		budget = &limit
	}

	service := application.NewService(
		app.models,
		app.aggregator,
		app.counter,
		app.newCompleter(gatewayURL, flags.timeout),
		app.recorder,
		app.clock,
		app.logger,
	)

	input := application.AskInput{
		User:              gatewayUser,
		Model:             flags.model,
		Prompt:            prompt,
		SystemInstruction: systemInstruction,
		ContextSpecs:      flags.contextSpecs,
		Budget:            budget,
		Params: domain.Parameters{
			Temperature: flags.temperature,
			TopP:        flags.topP,
			MaxTokens:   flags.maxTokens,
		},
		Record:    !flags.noRecord,
		CountOnly: flags.countOnly,
	}

	var result application.AskResult
	run := func(ctx context.Context) error {
		var err error
		result, err = service.Ask(ctx, input)
		return err
	}

	if flags.countOnly || flags.plain {
		if err := run(cmd.Context()); err != nil {
			return err
		}
	} else {
		if err := runAskSpinner(cmd.Context(), cmd.ErrOrStderr(), run); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if flags.countOnly {
		if result.PromptTokens != nil {
			fmt.Fprintf(out, "prompt tokens: %d\n", *result.PromptTokens)
		} else {
			fmt.Fprintln(out, "prompt tokens: unknown")
		}
		if len(flags.contextSpecs) > 0 {
			fmt.Fprintf(out, "context tokens: %d\n", result.ContextTokens)
		}
		return nil
	}

	rendered, err := reply.Render(result.Content, reply.RenderOptions{
		Model:        flags.model,
		SystemPrompt: systemLabel,
		PromptTokens: result.PromptTokens,
		Prompt:       prompt,
		Plain:        flags.plain,
	})
	if err != nil {
		return fmt.Errorf("render reply: %w", err)
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
