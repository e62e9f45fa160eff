package llm

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChat struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (s *stubChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.req = req
	return s.resp, s.err
}

func TestGeneratePassesPromptsAndBudget(t *testing.T) {
	stub := &stubChat{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "answer"}},
			},
		},
	}
	c, err := NewOpenAI(Options{Model: "gpt-4o-mini", Chat: stub})
	require.NoError(t, err)

	got, err := c.Generate(context.Background(), "be brief", "what is maestro", 512)
	require.NoError(t, err)
	assert.Equal(t, "answer", got)

	assert.Equal(t, "gpt-4o-mini", stub.req.Model)
	assert.Equal(t, 512, stub.req.MaxTokens)
	require.Len(t, stub.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, stub.req.Messages[0].Role)
	assert.Equal(t, "what is maestro", stub.req.Messages[1].Content)
}

func TestGenerateErrors(t *testing.T) {
	stub := &stubChat{err: errors.New("upstream down")}
	c, err := NewOpenAI(Options{Model: "gpt-4o-mini", Chat: stub})
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "", "hello", 100)
	assert.Error(t, err)

	_, err = c.Generate(context.Background(), "", "", 100)
	assert.Error(t, err, "empty user prompt is rejected before any API call")
}

func TestNewOpenAIValidation(t *testing.T) {
	_, err := NewOpenAI(Options{APIKey: "k"})
	assert.Error(t, err, "model is mandatory")

	_, err = NewOpenAI(Options{Model: "m"})
	assert.Error(t, err, "api key is mandatory without an injected chat client")
}
