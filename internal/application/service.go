package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports"
)

// DefaultSystemPrompt is sent in the request's system field. A named system
// instruction selected by the caller travels inside the composed user prompt
// instead, matching the gateway's established request shape.
const DefaultSystemPrompt = "You are a helpful AI assistant."

// AskInput carries everything one invocation needs. SystemInstruction is the
// already-resolved instruction text; selecting it by name (or via a task) is
// the caller's concern.
type AskInput struct {
	User              string
	Model             string
	Prompt            string
	SystemInstruction string
	ContextSpecs      []string
	Budget            *int
	Params            domain.Parameters
	Record            bool
	CountOnly         bool
}

// AskResult is the outcome of one invocation. PromptTokens is nil when the
// tokenizer could not measure the final prompt.
type AskResult struct {
	Content       string
	Elapsed       time.Duration
	FinalPrompt   string
	PromptTokens  *int
	ContextTokens int
}

// Service drives the pipeline: aggregate context, compose the prompt,
// validate, dispatch, record.
type Service struct {
	registry   ports.ModelRegistry
	aggregator *Aggregator
	counter    ports.TokenCounter
	completer  ports.Completer
	recorder   ports.Recorder
	clock      ports.Clock
	logger     *slog.Logger
}

func NewService(
	registry ports.ModelRegistry,
	aggregator *Aggregator,
	counter ports.TokenCounter,
	completer ports.Completer,
	recorder ports.Recorder,
	clock ports.Clock,
	logger *slog.Logger,
) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		registry:   registry,
		aggregator: aggregator,
		counter:    counter,
		completer:  completer,
		recorder:   recorder,
		clock:      clock,
		logger:     logger,
	}
}

// Ask runs one full invocation. Model and parameter validation are hard
// stops before any network activity; a budget overrun aborts the whole call.
// Recording failures are logged and never surfaced.
func (s *Service) Ask(ctx context.Context, in AskInput) (AskResult, error) {
	model, err := s.registry.Lookup(in.Model)
	if err != nil {
		return AskResult{}, fmt.Errorf("lookup model %q: %w", in.Model, err)
	}

	if err := in.Params.Validate(); err != nil {
		return AskResult{}, err
	}

	var contextText *string
	contextTokens := 0
	if len(in.ContextSpecs) > 0 {
		agg, err := s.aggregator.Aggregate(ctx, in.ContextSpecs, in.Budget)
		if err != nil {
			return AskResult{}, fmt.Errorf("aggregate context: %w", err)
		}

		rendered, err := RenderContext(agg)
		if err != nil {
			return AskResult{}, fmt.Errorf("render context: %w", err)
		}
		contextText = &rendered
		contextTokens = agg.TotalTokens

		if contextTokens > 0 {
			s.logger.Info("context gathered", "files", len(agg.Entries), "tokens", contextTokens)
		}
	}

	finalPrompt := ComposePrompt(in.Prompt, contextText, in.SystemInstruction)

	result := AskResult{
		FinalPrompt:   finalPrompt,
		ContextTokens: contextTokens,
	}
	if s.counter != nil {
		if tokens, ok := s.counter.Count(finalPrompt); ok {
			result.PromptTokens = &tokens
		}
	}

	if in.CountOnly {
		return result, nil
	}

	req := domain.NewPromptRequest(in.User, model, DefaultSystemPrompt, finalPrompt, in.Params)

	completion, err := s.completer.Complete(ctx, req)
	if err != nil {
		return AskResult{}, fmt.Errorf("complete prompt: %w", err)
	}

	result.Content = completion.Content
	result.Elapsed = completion.Elapsed
	s.logger.Info("response received", "elapsed", completion.Elapsed.Round(10*time.Millisecond))

	if in.Record && s.recorder != nil {
		interaction := domain.NewInteraction(s.clock.Now(), req, completion.Content, completion.Elapsed)
		if err := s.recorder.Record(ctx, interaction); err != nil {
			s.logger.Warn("saving interaction failed", "error", err)
		}
	}

	return result, nil
}
