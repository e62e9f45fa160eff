// Package llm provides the language-model client used by the specialist
// stages, backed by the OpenAI Chat Completions API (or any
// OpenAI-compatible endpoint via base URL override).
package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the completion surface the stage bodies depend on. Tests swap
// in a fake; production uses the OpenAI adapter below.
type Client interface {
	// Generate returns the model's completion for the prompt pair,
	// truncated at maxTokens.
	Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// ChatClient captures the subset of go-openai used by the adapter.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (
		openai.ChatCompletionResponse, error)
}

// OpenAIClient implements Client via the Chat Completions API.
type OpenAIClient struct {
	chat  ChatClient
	model string
}

// Options configures the OpenAI adapter.
type Options struct {
	APIKey string
	// BaseURL points at an alternative OpenAI-compatible endpoint
	// (vLLM, Ollama, OpenRouter). Empty keeps the OpenAI default.
	BaseURL string
	Model   string
	// Chat overrides the constructed client; used in tests.
	Chat ChatClient
}

// NewOpenAI builds a Client from the options.
func NewOpenAI(opts Options) (*OpenAIClient, error) {
	if opts.Model == "" {
		return nil, errors.New("model is required")
	}
	chat := opts.Chat
	if chat == nil {
		if opts.APIKey == "" {
			return nil, errors.New("api key is required")
		}
		cfg := openai.DefaultConfig(opts.APIKey)
		if opts.BaseURL != "" {
			cfg.BaseURL = opts.BaseURL
		}
		chat = openai.NewClientWithConfig(cfg)
	}
	return &OpenAIClient{chat: chat, model: opts.Model}, nil
}

// Generate issues a single-turn chat completion.
func (c *OpenAIClient) Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if userPrompt == "" {
		return "", errors.New("user prompt is required")
	}
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
