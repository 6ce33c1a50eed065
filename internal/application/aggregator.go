package application

import (
	"context"
	"log/slog"

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports"
)

// Aggregator gathers extracted file text under a cumulative token budget.
// Each Aggregate call owns its own running total and entry list; nothing is
// shared between runs.
type Aggregator struct {
	resolver  *Resolver
	extractor ports.Extractor
	counter   ports.TokenCounter
	logger    *slog.Logger
}

func NewAggregator(resolver *Resolver, extractor ports.Extractor, counter ports.TokenCounter, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Aggregator{
		resolver:  resolver,
		extractor: extractor,
		counter:   counter,
		logger:    logger,
	}
}

// Aggregate processes the path specifications in caller order. Files that
// fail extraction are skipped with a warning. When budget is non-nil, tokens
// are counted per file and the run aborts with a BudgetExceededError the
// moment the running total exceeds the budget; the partial result is
// discarded. A nil budget skips token counting entirely. Entries whose token
// count is unknown keep their text but are excluded from the budget sum.
func (a *Aggregator) Aggregate(ctx context.Context, specs []string, budget *int) (domain.Aggregation, error) {
	var entries []domain.ContextEntry
	seen := make(map[string]struct{})
	total := 0

	for _, spec := range specs {
		for _, path := range a.resolver.Resolve(spec) {
			if err := ctx.Err(); err != nil {
				return domain.Aggregation{}, err
			}

			text, err := a.extractor.Extract(ctx, path)
			if err != nil {
				a.logger.Warn("skipping file", "path", path, "error", err)
				continue
			}

			entry := domain.ContextEntry{Path: path, Text: text}
			if budget != nil && a.counter != nil {
				if tokens, ok := a.counter.Count(text); ok {
					entry.Tokens = tokens
					entry.Counted = true
					total += tokens
					if total > *budget {
						return domain.Aggregation{}, &domain.BudgetExceededError{Total: total, Limit: *budget}
					}
				}
			}

			// One entry per path even when two specifications reach the
			// same file; every occurrence still counts against the budget.
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			entries = append(entries, entry)
		}
	}

	return domain.Aggregation{Entries: entries, TotalTokens: total}, nil
}
