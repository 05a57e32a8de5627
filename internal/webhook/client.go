// Package webhook delivers finished analysis results to an external
// HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mkrol/cvsift/internal/store"
)

// Client posts completed analyses to a configured callback URL. A nil
// Client is disabled and Notify becomes a no-op.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewClient(url, apiKey string) *Client {
	if url == "" {
		return nil
	}
	return &Client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether deliveries will be attempted.
func (c *Client) Enabled() bool {
	return c != nil
}

// Notify posts the analysis result as JSON. Failures are returned to the
// caller for logging; delivery is best-effort and never retried here.
func (c *Client) Notify(ctx context.Context, res *store.AnalysisResult) error {
	if c == nil {
		return nil
	}
	body, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook %s: status %d: %s", c.url, resp.StatusCode, string(respBody))
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	if c != nil {
		c.httpClient.CloseIdleConnections()
	}
}
