package analyze

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI chat API for CV feedback generation. A nil
// Client (or one built without an API key) is disabled and the pipeline
// skips the analysis step entirely.
type Client struct {
	api   *openai.Client
	model string
	stats *LLMStats
}

const defaultModel = "gpt-4o-mini"

func NewClient(apiKey, model string, stats *LLMStats) *Client {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
		stats: stats,
	}
}

// Enabled reports whether the client can make API calls.
func (c *Client) Enabled() bool {
	return c != nil && c.api != nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// Stats returns the latency tracker, which may be nil.
func (c *Client) Stats() *LLMStats {
	if c == nil {
		return nil
	}
	return c.stats
}

// chatJSON sends a system+user message pair and returns the raw response
// text and total token usage. Rate limits and server errors come back as
// *RetryableError so the pipeline can back off and retry.
func (c *Client) chatJSON(ctx context.Context, system, user string) (string, int, error) {
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   2048,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if c.stats != nil {
		c.stats.Record(time.Since(start))
	}
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500 {
				return "", 0, &RetryableError{
					StatusCode: apiErr.HTTPStatusCode,
					Message:    apiErr.Message,
				}
			}
		}
		return "", 0, fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("empty response from openai")
	}
	return stripCodeBlock(resp.Choices[0].Message.Content), resp.Usage.TotalTokens, nil
}

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// RetryableError indicates a transient failure that can be retried.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}
