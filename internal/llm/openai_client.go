// ABOUTME: OpenAI client for embeddings and chat completions
// ABOUTME: Wraps sashabaranov/go-openai with per-attempt timeouts and backoff retries
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/cryptoinsight/insight/internal/config"
	"github.com/cryptoinsight/insight/internal/models"
	"github.com/cryptoinsight/insight/internal/util"
)

// Client wraps the OpenAI API for embedding generation and chat
// completions. Embedding calls retry with exponential backoff; chat calls
// are single-shot because the Resolver handles model fallback itself.
type Client struct {
	client         *openai.Client
	embeddingModel openai.EmbeddingModel
	maxRetries     int
	retryDelay     time.Duration
	timeout        time.Duration
}

// NewClient creates a Client from config. An API key is required; callers
// that cannot supply one should skip the client entirely and rely on the
// offline paths.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &Client{
		client:         openai.NewClient(cfg.OpenAIKey),
		embeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		maxRetries:     cfg.MaxRetries,
		retryDelay:     cfg.RetryDelay,
		timeout:        cfg.Timeout,
	}, nil
}

// CreateEmbedding generates an embedding vector for text using the
// configured embedding model, retrying transient failures.
func (c *Client) CreateEmbedding(ctx context.Context, text string) ([]float64, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.Backoff(c.retryDelay, attempt)):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateEmbeddings(attemptCtx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.embeddingModel,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}
		return embedding64, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", c.maxRetries+1, lastErr)
}

// ChatCompletion sends a system+user prompt pair to the given chat model
// and returns the response text. Temperature, top-p, and max tokens from
// cfg are forwarded; top-k is not an OpenAI parameter and is ignored.
func (c *Client) ChatCompletion(ctx context.Context, model, system, user string, cfg models.GenerationConfig) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
	}
	if cfg.Temperature != nil {
		req.Temperature = *cfg.Temperature
	}
	if cfg.TopP != nil {
		req.TopP = *cfg.TopP
	}
	if cfg.MaxTokens > 0 {
		req.MaxTokens = cfg.MaxTokens
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion with %s: %w", model, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion with %s: no choices returned", model)
	}

	return resp.Choices[0].Message.Content, nil
}
