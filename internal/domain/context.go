package domain

// ContextEntry is one extracted file, owned by the aggregation run that
// produced it.
type ContextEntry struct {
	Path string
	Text string
	// Tokens is only meaningful when Counted is true. Entries whose token
	// count is unknown still carry their text but never count against a
	// budget.
	Tokens  int
	Counted bool
}

// Aggregation is the result of one context-gathering run. Entries keep
// discovery order.
type Aggregation struct {
	Entries     []ContextEntry
	TotalTokens int
}

// Empty reports whether the run gathered nothing.
func (a Aggregation) Empty() bool {
	return len(a.Entries) == 0
}
