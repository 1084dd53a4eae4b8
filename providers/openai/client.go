// Package openai provides a text-completion client for OpenAI-compatible
// APIs, selectable as an alternative to Gemini via configuration.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client handles chat-completion requests against an OpenAI-compatible API
type Client struct {
	Model  string
	client openai.Client
}

// NewClient creates a new client. baseURL may be empty to use the default
// OpenAI endpoint, or point at any compatible provider.
func NewClient(apiKey, model, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		Model:  model,
		client: openai.NewClient(opts...),
	}, nil
}

// GenerateContent sends a prompt as a single user message and returns the
// completion text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
