package inference

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"movieapi/internal/config"
)

// Completer produces a single chat completion for a prompt.
type Completer interface {
	// Complete returns the text of the first choice. An empty string with a nil error
	// means the provider answered without content.
	Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error)
}

// chatAPI is the subset of *openai.Client used by Client.
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client talks to an OpenAI-compatible chat completion endpoint
// (Hugging Face router, vLLM, OpenAI ...). It is safe for concurrent use.
type Client struct {
	api chatAPI
}

var _ Completer = (*Client)(nil)

// NewClient builds a Client for the configured endpoint. Outbound calls are traced via otelhttp.
func NewClient(cfg config.InferenceConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("inference base url is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("inference api key is required")
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Client{api: openai.NewClientWithConfig(oc)}, nil
}

// Complete sends prompt as a single user message.
func (c *Client) Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
