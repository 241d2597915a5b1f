package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the completion service. Requests are sent with temperature 0 so
// repeated calls with identical inputs stay as close to deterministic as the
// service allows.
type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("completion service API key is empty")
	}

	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// request builds the chat payload. Temperature must be the smallest positive
// float32: a literal 0 is dropped by the request struct's omitempty tag and
// the service would fall back to its default sampling.
func (c *Client) request(systemPrompt, userPrompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: math.SmallestNonzeroFloat32,
	}
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.request(systemPrompt, userPrompt))
	if err != nil {
		return "", fmt.Errorf("completion call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from completion service")
	}

	slog.Info("completion call",
		"model", c.model,
		"input_tokens", resp.Usage.PromptTokens,
		"output_tokens", resp.Usage.CompletionTokens,
		"total_tokens", resp.Usage.TotalTokens)

	return resp.Choices[0].Message.Content, nil
}
