package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports"
	"gopkg.in/yaml.v3"
)

// builtinPrompts are the pre-authored system instructions selectable by name.
var builtinPrompts = map[string]string{
	"code_review": `You are an expert code reviewer. Your task is to:
1. Review the provided code for:
   - Code quality and best practices
   - Potential bugs and edge cases
   - Security vulnerabilities
   - Performance optimizations
   - Documentation and readability
2. Provide specific, actionable feedback
3. Suggest improvements with code examples when relevant
4. Focus on the most critical issues first

Format your response in markdown with clear sections for:
- Summary of findings
- Critical issues
- Suggestions for improvement
- Code examples (if applicable)`,
	"text_summary": `You are an expert content summarizer. Your task is to:
1. Read and understand the provided text thoroughly
2. Identify the key points, main arguments, and important details
3. Create a concise yet comprehensive summary that:
   - Captures the essential information
   - Maintains the original meaning and context
   - Is well-structured and easy to read
4. Format the summary in markdown with:
   - A clear title
   - Bullet points for key points
   - Brief explanations where needed`,
	"markdown_expert": `You are a markdown formatting expert. Your task is to:
1. Format the provided content in clean, well-structured markdown
2. Use appropriate markdown elements:
   - Headers for hierarchy
   - Lists for related items
   - Code blocks for technical content
   - Tables for structured data
   - Blockquotes for emphasis
3. Ensure the content is:
   - Easy to read
   - Well-organized
   - Properly formatted
   - Consistent in style`,
	"linux_help": `You are a Linux system expert. Your task is to:
1. Provide clear, accurate Linux-related assistance
2. Explain concepts and commands in a beginner-friendly way
3. Include:
   - Command syntax and options
   - Common use cases
   - Best practices
   - Troubleshooting tips
4. Format responses with:
   - Code blocks for commands
   - Examples with explanations
   - Step-by-step instructions when needed
   - Links to relevant documentation`,
	"linux_quick": `You are a Linux command expert. Your task is to:
1. Provide ONLY the command(s) needed to solve the user's problem
2. Be extremely concise - just the command, no explanations
3. If the user specifically asks for an explanation, provide a brief one
4. Format the command in a code block
5. If multiple commands are needed, number them`,
	"debugging": `You are a debugging expert. Your task is to:
1. Help identify and fix issues in the provided code or error messages
2. Follow a systematic approach:
   - Analyze the error/problem
   - Identify potential causes
   - Suggest specific solutions
   - Provide prevention tips
3. Format your response with:
   - Clear problem description
   - Step-by-step solution
   - Code examples
   - Best practices for prevention`,
	"documentation": `You are a technical documentation expert. Your task is to:
1. Create clear, comprehensive documentation for the provided content
2. Include:
   - Overview and purpose
   - Installation/setup instructions
   - Usage examples
   - API reference (if applicable)
   - Configuration options
3. Format in markdown with:
   - Clear hierarchy
   - Code examples
   - Tables for parameters
   - Diagrams when helpful`,
	"security": `You are a security expert. Your task is to:
1. Review and analyze security aspects of the provided content
2. Identify:
   - Potential vulnerabilities
   - Security best practices
   - Compliance requirements
   - Risk mitigation strategies
3. Provide:
   - Detailed security analysis
   - Specific recommendations
   - Code examples for fixes
   - Security checklist`,
	"performance": `You are a performance optimization expert. Your task is to:
1. Analyze and optimize the provided code or system
2. Focus on:
   - Algorithm efficiency
   - Resource usage
   - Bottlenecks
   - Scalability
3. Provide:
   - Performance analysis
   - Optimization suggestions
   - Benchmarking tips
   - Code examples`,
	"testing": `You are a testing expert. Your task is to:
1. Help create comprehensive test cases for the provided code
2. Include:
   - Unit tests
   - Integration tests
   - Edge cases
   - Test scenarios
3. Provide:
   - Test code examples
   - Testing strategies
   - Best practices
   - Coverage recommendations`,
}

// Library resolves named system prompts and tasks. Prompts are built in;
// tasks come from YAML files in a directory read once at construction.
type Library struct {
	prompts map[string]string
	tasks   map[string]domain.Task
}

var _ ports.PromptLibrary = (*Library)(nil)

// NewLibrary builds the library. A missing tasks directory yields an empty
// task set, not an error; individual malformed task files are skipped with a
// warning.
func NewLibrary(tasksDir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}

	return &Library{
		prompts: builtinPrompts,
		tasks:   loadTasks(tasksDir, logger),
	}
}

func loadTasks(dir string, logger *slog.Logger) map[string]domain.Task {
	tasks := make(map[string]domain.Task)
	if dir == "" {
		return tasks
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("reading tasks directory failed", "dir", dir, "error", err)
		}
		return tasks
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("reading task file failed", "path", path, "error", err)
			continue
		}

		var task domain.Task
		if err := yaml.Unmarshal(raw, &task); err != nil {
			logger.Warn("parsing task file failed", "path", path, "error", err)
			continue
		}

		// The file stem is the selection key, not the name field.
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		task.Name = name
		tasks[name] = task
	}

	return tasks
}

func (l *Library) SystemPrompt(name string) (domain.SystemPrompt, error) {
	instruction, ok := l.prompts[name]
	if !ok {
		return domain.SystemPrompt{}, fmt.Errorf("%w: %q", domain.ErrPromptNotFound, name)
	}
	return domain.SystemPrompt{Name: name, Instruction: instruction}, nil
}

// SystemPrompts returns every prompt sorted by name.
func (l *Library) SystemPrompts() []domain.SystemPrompt {
	prompts := make([]domain.SystemPrompt, 0, len(l.prompts))
	for name, instruction := range l.prompts {
		prompts = append(prompts, domain.SystemPrompt{Name: name, Instruction: instruction})
	}
	sort.Slice(prompts, func(i, j int) bool { return prompts[i].Name < prompts[j].Name })
	return prompts
}

func (l *Library) Task(name string) (domain.Task, error) {
	task, ok := l.tasks[name]
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, name)
	}
	return task, nil
}

// Tasks returns every task sorted by name.
func (l *Library) Tasks() []domain.Task {
	tasks := make([]domain.Task, 0, len(l.tasks))
	for _, task := range l.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Name < tasks[j].Name })
	return tasks
}
