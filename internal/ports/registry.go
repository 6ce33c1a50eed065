package ports

import "github.com/bnema/argo-agent-cli/internal/domain"

// ModelRegistry is the read-only model capability table, built once at
// startup. Lookup returns domain.ErrModelNotFound for unknown names; that is
// a hard stop for the whole request.
type ModelRegistry interface {
	Lookup(name string) (domain.ModelConfig, error)
	List() []domain.ModelConfig
}

// PromptLibrary resolves named system prompts and tasks. Selecting a task
// and selecting a system prompt are mutually exclusive at the CLI boundary.
type PromptLibrary interface {
	SystemPrompt(name string) (domain.SystemPrompt, error)
	SystemPrompts() []domain.SystemPrompt
	Task(name string) (domain.Task, error)
	Tasks() []domain.Task
}
