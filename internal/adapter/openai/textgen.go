// Package openai adapts an OpenAI-compatible chat-completion endpoint to
// the textgen.Generator port. Any provider speaking the OpenAI wire
// format works by overriding BaseURL.
package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	porttextgen "github.com/alanyang/currency-mesh/internal/port/textgen"
)

var _ porttextgen.Generator = (*Client)(nil)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg Config) *Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}
}

func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
