package domain

import (
	"errors"
	"fmt"
)

var (
	ErrModelNotFound     = errors.New("model not found")
	ErrPromptNotFound    = errors.New("system prompt not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// BudgetExceededError aborts a whole aggregation run the moment the running
// token total passes the configured limit.
type BudgetExceededError struct {
	Total int
	Limit int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("total tokens (%d) exceed max tokens (%d)", e.Total, e.Limit)
}

// InvalidParameterError reports a sampling parameter outside its valid range.
type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %g", e.Name, e.Value)
}
