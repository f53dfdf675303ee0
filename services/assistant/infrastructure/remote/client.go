// Package remote calls the hosted chat and marketing recommendation endpoints.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/bizzy/pkg/telemetry"
	assistantdomain "github.com/ghuser/bizzy/services/assistant/domain"
)

// maxResponseBytes caps how much of an endpoint's answer is read.
const maxResponseBytes = 1 << 20

// Config holds the endpoint URLs and retry policy.
type Config struct {
	ChatURL           string
	RecommendationURL string
	Timeout           time.Duration
	MaxRetries        int
}

// Client talks to the assistant endpoints over JSON/HTTP.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient returns a Client whose outbound requests carry trace context.
func NewClient(cfg Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type chatRequest struct {
	UserID       string `json:"user_id"`
	UserQuestion string `json:"user_question"`
}

type recommendationRequest struct {
	UserID string `json:"user_id"`
}

type recommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

// Chat sends a question and returns the reply text. An empty string means
// the endpoint answered without content.
func (c *Client) Chat(ctx context.Context, userID uuid.UUID, question string) (string, error) {
	raw, err := c.post(ctx, "chat", c.config.ChatURL, chatRequest{UserID: userID.String(), UserQuestion: question})
	if err != nil {
		return "", err
	}
	return chatReply(raw), nil
}

// Recommend fetches a marketing recommendation for the user. An empty string
// means none was offered.
func (c *Client) Recommend(ctx context.Context, userID uuid.UUID) (string, error) {
	raw, err := c.post(ctx, "recommendation", c.config.RecommendationURL, recommendationRequest{UserID: userID.String()})
	if err != nil {
		return "", err
	}
	var resp recommendationResponse
	_ = json.Unmarshal(raw, &resp) // a non-JSON answer carries no recommendation
	return strings.TrimSpace(resp.Recommendation), nil
}

// post sends body with retries on failure. The call is counted once, by its final outcome.
func (c *Client) post(ctx context.Context, endpoint, url string, body any) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", endpoint, err)
	}

	maxRetries := c.config.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := c.postOnce(ctx, url, encoded)
		if err == nil {
			telemetry.AssistantCall(ctx, endpoint, true)
			return raw, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}
	}
	telemetry.AssistantCall(ctx, endpoint, false)
	return nil, fmt.Errorf("%w: %s: %w", assistantdomain.ErrAssistantUnavailable, endpoint, lastErr)
}

func (c *Client) postOnce(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// chatReply accepts a JSON string, an object with a reply-like field, or plain text.
func chatReply(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, key := range []string{"response", "answer", "reply", "text"} {
			if v, ok := obj[key].(string); ok {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}
	return strings.TrimSpace(string(raw))
}
