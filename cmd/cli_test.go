package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/argo-agent-cli/internal/adapters/tokenizer"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func setGatewayEnv(t *testing.T, url string) {
	t.Helper()
	t.Setenv("ARGO_URL", url)
	t.Setenv("ARGO_USER", "tester")
	t.Setenv("ARGO_INTERACTIONS_DIR", filepath.Join(t.TempDir(), "interactions"))
}

func newGatewayServer(t *testing.T, response string) (*httptest.Server, *atomic.Value, *atomic.Int32) {
	t.Helper()

	var lastBody atomic.Value
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		lastBody.Store(body)
		_, _ = fmt.Fprintf(w, `{"response": %q}`, response)
	}))
	t.Cleanup(server.Close)

	return server, &lastBody, &calls
}

func TestAskSendsPromptAndPrintsResponse(t *testing.T) {
	server, lastBody, _ := newGatewayServer(t, "The answer is 42.")
	setGatewayEnv(t, server.URL)

	stdout, _, err := executeCLI(t, t.TempDir(), "ask", "what is the answer", "--plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "The answer is 42.")

	body, ok := lastBody.Load().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tester", body["user"])
	assert.Equal(t, "gpt4olatest", body["model"])
	assert.Equal(t, "You are a helpful AI assistant.", body["system"])

	prompts, ok := body["prompt"].([]any)
	require.True(t, ok)
	require.Len(t, prompts, 1)
	assert.Equal(t, "what is the answer", prompts[0])
}

func TestAskRequiresGatewayConfig(t *testing.T) {
	t.Setenv("ARGO_URL", "")
	t.Setenv("ARGO_USER", "")

	_, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be set")
}

func TestAskRejectsUnknownModel(t *testing.T) {
	server, _, calls := newGatewayServer(t, "never")
	setGatewayEnv(t, server.URL)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--plain", "--model", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
	assert.Equal(t, int32(0), calls.Load())
}

func TestAskRejectsInvalidTemperatureBeforeDispatch(t *testing.T) {
	server, _, calls := newGatewayServer(t, "never")
	setGatewayEnv(t, server.URL)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--plain", "--temperature", "3.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
	assert.Equal(t, int32(0), calls.Load())
}

func TestAskCountOnlySkipsGateway(t *testing.T) {
	server, _, calls := newGatewayServer(t, "never")
	setGatewayEnv(t, server.URL)

	stdout, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--count-only")
	require.NoError(t, err)
	assert.Contains(t, stdout, "prompt tokens")
	assert.Equal(t, int32(0), calls.Load())
}

func TestAskPacksFileContextIntoPrompt(t *testing.T) {
	server, lastBody, _ := newGatewayServer(t, "summarized")
	setGatewayEnv(t, server.URL)

	home := t.TempDir()
	contextPath := filepath.Join(home, "notes.txt")
	require.NoError(t, os.WriteFile(contextPath, []byte("the sky is green here"), 0o644))

	_, _, err := executeCLI(t, home, "ask", "summarize my notes", "--plain", "--context", contextPath)
	require.NoError(t, err)

	body, ok := lastBody.Load().(map[string]any)
	require.True(t, ok)
	prompts := body["prompt"].([]any)
	sent := prompts[0].(string)
	assert.Contains(t, sent, "summarize my notes")
	assert.Contains(t, sent, "reply based on the content here:")
	assert.Contains(t, sent, "the sky is green here")
}

func TestAskBudgetOverrunAbortsBeforeDispatch(t *testing.T) {
	if _, err := tokenizer.New("gpt-4"); err != nil {
		t.Skipf("tokenizer unavailable: %v", err)
	}

	server, _, calls := newGatewayServer(t, "never")
	setGatewayEnv(t, server.URL)

	home := t.TempDir()
	contextPath := filepath.Join(home, "big.txt")
	require.NoError(t, os.WriteFile(contextPath, []byte("one two three four five six seven eight nine ten"), 0o644))

	_, _, err := executeCLI(t, home, "ask", "summarize", "--plain", "--context", contextPath, "--max-tokens", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceed")
	assert.Equal(t, int32(0), calls.Load())
}

func TestAskRecordsInteraction(t *testing.T) {
	server, _, _ := newGatewayServer(t, "recorded reply")
	t.Setenv("ARGO_URL", server.URL)
	t.Setenv("ARGO_USER", "tester")

	interactionsDir := filepath.Join(t.TempDir(), "interactions")
	t.Setenv("ARGO_INTERACTIONS_DIR", interactionsDir)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--plain")
	require.NoError(t, err)

	entries, err := os.ReadDir(interactionsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "tester_gpt4olatest_")
}

func TestAskNoRecordSkipsInteractionFile(t *testing.T) {
	server, _, _ := newGatewayServer(t, "ephemeral reply")
	t.Setenv("ARGO_URL", server.URL)
	t.Setenv("ARGO_USER", "tester")

	interactionsDir := filepath.Join(t.TempDir(), "interactions")
	t.Setenv("ARGO_INTERACTIONS_DIR", interactionsDir)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--plain", "--no-record")
	require.NoError(t, err)

	_, statErr := os.Stat(interactionsDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAskSystemPromptTravelsInsideUserPrompt(t *testing.T) {
	server, lastBody, _ := newGatewayServer(t, "reviewed")
	setGatewayEnv(t, server.URL)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "review this", "--plain", "--system", "code_review")
	require.NoError(t, err)

	body := lastBody.Load().(map[string]any)
	assert.Equal(t, "You are a helpful AI assistant.", body["system"])

	sent := body["prompt"].([]any)[0].(string)
	assert.Contains(t, sent, "review this")
	assert.Contains(t, sent, "expert code reviewer")
}

func TestAskUnknownSystemPromptFails(t *testing.T) {
	server, _, calls := newGatewayServer(t, "never")
	setGatewayEnv(t, server.URL)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--plain", "--system", "nonsense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonsense")
	assert.Equal(t, int32(0), calls.Load())
}

func TestAskSystemAndTaskAreMutuallyExclusive(t *testing.T) {
	server, _, _ := newGatewayServer(t, "never")
	setGatewayEnv(t, server.URL)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "hello", "--system", "debugging", "--task", "review")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[system task]")
}

func TestAskTaskSuppliesDefaultPrompt(t *testing.T) {
	server, lastBody, _ := newGatewayServer(t, "done")
	t.Setenv("ARGO_URL", server.URL)
	t.Setenv("ARGO_USER", "tester")
	t.Setenv("ARGO_INTERACTIONS_DIR", filepath.Join(t.TempDir(), "interactions"))

	home := t.TempDir()
	tasksDir := filepath.Join(home, ".argo-agent", "tasks")
	require.NoError(t, os.MkdirAll(tasksDir, 0o755))
	task := "description: Summarize a changelog\nsystem_prompt: You summarize changelogs.\nuser_prompt: Summarize the latest changes.\n"
	require.NoError(t, os.WriteFile(filepath.Join(tasksDir, "changelog.yaml"), []byte(task), 0o644))

	_, _, err := executeCLI(t, home, "ask", "--plain", "--task", "changelog")
	require.NoError(t, err)

	sent := lastBody.Load().(map[string]any)["prompt"].([]any)[0].(string)
	assert.Contains(t, sent, "You summarize changelogs.")
	assert.Contains(t, sent, "Summarize the latest changes.")
}

func TestAskWithoutPromptFails(t *testing.T) {
	server, _, _ := newGatewayServer(t, "never")
	setGatewayEnv(t, server.URL)

	_, _, err := executeCLI(t, t.TempDir(), "ask", "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no prompt given")
}

func TestAskReadsPromptFromFile(t *testing.T) {
	server, lastBody, _ := newGatewayServer(t, "from file")
	setGatewayEnv(t, server.URL)

	home := t.TempDir()
	promptPath := filepath.Join(home, "prompt.txt")
	require.NoError(t, os.WriteFile(promptPath, []byte("prompt from a file\n"), 0o644))

	_, _, err := executeCLI(t, home, "ask", "--plain", "--prompt-file", promptPath)
	require.NoError(t, err)

	sent := lastBody.Load().(map[string]any)["prompt"].([]any)[0].(string)
	assert.Equal(t, "prompt from a file", sent)
}

func TestPromptsListsBuiltins(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "prompts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "code_review")
	assert.Contains(t, stdout, "testing")
}

func TestModelsListsCapabilityTable(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "models")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gpt4olatest")
	assert.Contains(t, stdout, "gpto1")
	assert.Contains(t, stdout, "max_completion_tokens only")
}

func TestTasksListsConfiguredTasks(t *testing.T) {
	home := t.TempDir()
	tasksDir := filepath.Join(home, ".argo-agent", "tasks")
	require.NoError(t, os.MkdirAll(tasksDir, 0o755))
	task := "description: Review a diff\nsystem_prompt: You review diffs.\n"
	require.NoError(t, os.WriteFile(filepath.Join(tasksDir, "review.yaml"), []byte(task), 0o644))

	stdout, _, err := executeCLI(t, home, "tasks")
	require.NoError(t, err)
	assert.Contains(t, stdout, "review")
	assert.Contains(t, stdout, "Review a diff")
}

func TestTasksWithoutConfigReportsEmpty(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "tasks")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no tasks configured")
}

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestDefaultToAskRoutesBarePrompts(t *testing.T) {
	root := newRootCmd()

	assert.Equal(t, []string{"ask", "what is go"}, defaultToAsk(root, []string{"what is go"}))
	assert.Equal(t, []string{"version"}, defaultToAsk(root, []string{"version"}))
	assert.Equal(t, []string{"--help"}, defaultToAsk(root, []string{"--help"}))
	assert.Empty(t, defaultToAsk(root, nil))
}
