package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestAggregateWithinBudget(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	writeFile(t, aPath, "alpha")
	writeFile(t, bPath, "beta")

	extractor := mocks.NewMockExtractor(t)
	extractor.EXPECT().Extract(mockAnyContext(), aPath).Return("alpha", nil)
	extractor.EXPECT().Extract(mockAnyContext(), bPath).Return("beta", nil)

	counter := mocks.NewMockTokenCounter(t)
	counter.EXPECT().Count("alpha").Return(60, true)
	counter.EXPECT().Count("beta").Return(40, true)

	agg := NewAggregator(NewResolver(textLikeExt, nil), extractor, counter, nil)
	result, err := agg.Aggregate(context.Background(), []string{aPath, bPath}, intPtr(100))
	require.NoError(t, err)

	assert.Equal(t, 100, result.TotalTokens)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, domain.ContextEntry{Path: aPath, Text: "alpha", Tokens: 60, Counted: true}, result.Entries[0])
	assert.Equal(t, domain.ContextEntry{Path: bPath, Text: "beta", Tokens: 40, Counted: true}, result.Entries[1])
}

func TestAggregateBudgetExceededDiscardsPartialResult(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	writeFile(t, aPath, "alpha")
	writeFile(t, bPath, "beta")

	extractor := mocks.NewMockExtractor(t)
	extractor.EXPECT().Extract(mockAnyContext(), aPath).Return("alpha", nil)
	extractor.EXPECT().Extract(mockAnyContext(), bPath).Return("beta", nil)

	counter := mocks.NewMockTokenCounter(t)
	counter.EXPECT().Count("alpha").Return(60, true)
	counter.EXPECT().Count("beta").Return(50, true)

	agg := NewAggregator(NewResolver(textLikeExt, nil), extractor, counter, nil)
	result, err := agg.Aggregate(context.Background(), []string{aPath, bPath}, intPtr(100))

	var exceeded *domain.BudgetExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, 110, exceeded.Total)
	assert.Equal(t, 100, exceeded.Limit)
	assert.Empty(t, result.Entries)
}

func TestAggregateExactBudgetSucceeds(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	writeFile(t, aPath, "alpha")

	extractor := mocks.NewMockExtractor(t)
	extractor.EXPECT().Extract(mockAnyContext(), aPath).Return("alpha", nil)

	counter := mocks.NewMockTokenCounter(t)
	counter.EXPECT().Count("alpha").Return(100, true)

	agg := NewAggregator(NewResolver(textLikeExt, nil), extractor, counter, nil)
	result, err := agg.Aggregate(context.Background(), []string{aPath}, intPtr(100))
	require.NoError(t, err)
	assert.Equal(t, 100, result.TotalTokens)
}

func TestAggregateSkipsUnparsableFiles(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.pdf")
	writeFile(t, aPath, "ten tokens here")
	writeFile(t, bPath, "%PDF-garbage")

	extractor := mocks.NewMockExtractor(t)
	extractor.EXPECT().Extract(mockAnyContext(), aPath).Return("ten tokens here", nil)
	extractor.EXPECT().Extract(mockAnyContext(), bPath).Return("", errors.New("corrupt document"))

	counter := mocks.NewMockTokenCounter(t)
	counter.EXPECT().Count("ten tokens here").Return(10, true)

	agg := NewAggregator(NewResolver(textLikeExt, nil), extractor, counter, nil)
	result, err := agg.Aggregate(context.Background(), []string{aPath, bPath}, intPtr(100))
	require.NoError(t, err, "extraction failure must be skipped, not fatal")

	require.Len(t, result.Entries, 1)
	assert.Equal(t, aPath, result.Entries[0].Path)
	assert.Equal(t, 10, result.TotalTokens)
}

func TestAggregateUnknownCountKeepsTextOutsideBudget(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	writeFile(t, aPath, "unmeasurable")

	extractor := mocks.NewMockExtractor(t)
	extractor.EXPECT().Extract(mockAnyContext(), aPath).Return("unmeasurable", nil)

	counter := mocks.NewMockTokenCounter(t)
	counter.EXPECT().Count("unmeasurable").Return(0, false)

	agg := NewAggregator(NewResolver(textLikeExt, nil), extractor, counter, nil)
	result, err := agg.Aggregate(context.Background(), []string{aPath}, intPtr(1))
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "unmeasurable", result.Entries[0].Text)
	assert.False(t, result.Entries[0].Counted)
	assert.Zero(t, result.TotalTokens)
}

func TestAggregateNilBudgetSkipsCounting(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	writeFile(t, aPath, "alpha")

	extractor := mocks.NewMockExtractor(t)
	extractor.EXPECT().Extract(mockAnyContext(), aPath).Return("alpha", nil)

	// No Count expectation: the counter must never be consulted.
	counter := mocks.NewMockTokenCounter(t)

	agg := NewAggregator(NewResolver(textLikeExt, nil), extractor, counter, nil)
	result, err := agg.Aggregate(context.Background(), []string{aPath}, nil)
	require.NoError(t, err)
	assert.Zero(t, result.TotalTokens)
	require.Len(t, result.Entries, 1)
}

func TestAggregateIdenticalTextFromTwoPathsKeepsBothEntries(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	writeFile(t, aPath, "same")
	writeFile(t, bPath, "same")

	extractor := mocks.NewMockExtractor(t)
	extractor.EXPECT().Extract(mockAnyContext(), aPath).Return("same", nil)
	extractor.EXPECT().Extract(mockAnyContext(), bPath).Return("same", nil)

	counter := mocks.NewMockTokenCounter(t)
	counter.EXPECT().Count("same").Return(2, true).Times(2)

	agg := NewAggregator(NewResolver(textLikeExt, nil), extractor, counter, nil)
	result, err := agg.Aggregate(context.Background(), []string{aPath, bPath}, intPtr(100))
	require.NoError(t, err)

	require.Len(t, result.Entries, 2, "no deduplication by content")
	assert.Equal(t, 4, result.TotalTokens)
}
