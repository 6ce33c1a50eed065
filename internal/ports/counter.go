package ports

// TokenCounter counts tokens the way one model family's tokenizer would.
// The second return is false when the count is unknown; such text still
// travels with the prompt but never counts against a budget.
type TokenCounter interface {
	Count(text string) (int, bool)
}
