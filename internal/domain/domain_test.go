package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		params  Parameters
		wantErr string
	}{
		{name: "defaults", params: DefaultParameters()},
		{name: "temperature low edge", params: Parameters{Temperature: 0, TopP: 0.5, MaxTokens: 1}},
		{name: "temperature high edge", params: Parameters{Temperature: 2, TopP: 0.5, MaxTokens: 1}},
		{name: "temperature out of range", params: Parameters{Temperature: 3.0, TopP: 0.5, MaxTokens: 1}, wantErr: "invalid parameter temperature: 3"},
		{name: "top_p out of range", params: Parameters{Temperature: 1, TopP: 1.5, MaxTokens: 1}, wantErr: "invalid parameter top_p: 1.5"},
		{name: "max_tokens zero", params: Parameters{Temperature: 1, TopP: 0.5, MaxTokens: 0}, wantErr: "invalid parameter max_tokens: 0"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.params.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())

			var invalid *InvalidParameterError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestNewPromptRequestStandardParams(t *testing.T) {
	t.Parallel()

	model := ModelConfig{Name: "gpt4o", MaxTokens: 16384, SupportsStandardParams: true}
	req := NewPromptRequest("alice", model, "be brief", "hello", Parameters{Temperature: 0.7, TopP: 0.9, MaxTokens: 100000})

	require.NotNil(t, req.MaxTokens)
	assert.Equal(t, 16384, *req.MaxTokens, "requested ceiling must be capped at the model maximum")
	require.NotNil(t, req.Temperature)
	assert.Equal(t, 0.7, *req.Temperature)
	require.NotNil(t, req.TopP)
	assert.Equal(t, 0.9, *req.TopP)
	assert.Nil(t, req.MaxCompletionTokens)
	assert.Equal(t, []string{"hello"}, req.Prompt)
	assert.Equal(t, []string{}, req.Stop)
}

func TestNewPromptRequestCompletionTokensOnly(t *testing.T) {
	t.Parallel()

	model := ModelConfig{Name: "gpto1", MaxTokens: 200000, SupportsStandardParams: false}
	req := NewPromptRequest("alice", model, "", "hello", Parameters{Temperature: 0.7, TopP: 0.9, MaxTokens: 4096})

	assert.Nil(t, req.Temperature)
	assert.Nil(t, req.TopP)
	assert.Nil(t, req.MaxTokens)
	require.NotNil(t, req.MaxCompletionTokens)
	assert.Equal(t, 4096, *req.MaxCompletionTokens)
}

func TestNewInteraction(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	model := ModelConfig{Name: "gpt4o", MaxTokens: 16384, SupportsStandardParams: true}
	req := NewPromptRequest("alice", model, "sys", "ask me anything", DefaultParameters())

	record := NewInteraction(at, req, "an answer", 1500*time.Millisecond)

	assert.Equal(t, at, record.Timestamp)
	assert.Equal(t, "alice", record.User)
	assert.Equal(t, "ask me anything", record.Request.Prompt)
	assert.Equal(t, "gpt4o", record.Request.Model)
	assert.Equal(t, "sys", record.Request.System)
	assert.Equal(t, "an answer", record.Response.Content)
	assert.InDelta(t, 1.5, record.Response.TimeTaken, 0.001)
	assert.Nil(t, record.Request.Parameters.MaxCompletionTokens)
}

func TestBudgetExceededErrorMessage(t *testing.T) {
	t.Parallel()

	err := &BudgetExceededError{Total: 120, Limit: 100}
	assert.Equal(t, "total tokens (120) exceed max tokens (100)", err.Error())
}
