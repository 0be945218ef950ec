// Package suggest calls an external generative service to produce sample
// key/value pairs for the edit buffer.
//
// The call is deliberately thin: one request, one parse attempt, no retry,
// no streaming. A response that fails to parse is logged and treated as
// "no suggestions" - it never reaches the store or the buffer.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Pair is one suggested key/value entry.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Client talks to a chat-completion style generative endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Test override.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Client for the given endpoint and model. apiKey may
// be empty for unauthenticated endpoints.
func NewClient(endpoint, model, apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   endpoint,
		model:      model,
		apiKey:     apiKey,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chatRequest is the wire format of the completion request.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the completion response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggest asks the service for count sample key/value pairs.
//
// Transport and HTTP-status failures return an error. A response that
// arrives but cannot be parsed into pairs yields an empty list with a nil
// error - the degraded "no suggestions" outcome.
func (c *Client) Suggest(ctx context.Context, count int) ([]Pair, error) {
	prompt := fmt.Sprintf(
		"Generate %d sample key/value pairs for a web app's client-side storage "+
			"(settings, preferences, feature flags). Respond with only a JSON array "+
			"of objects with string fields \"key\" and \"value\".", count)

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("suggest: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("suggest: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("suggest: read response: %w", err)
	}

	var envelope chatResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		c.logger.Warn("suggestion response unparsable, ignoring", "error", err)
		return []Pair{}, nil
	}
	if len(envelope.Choices) == 0 {
		c.logger.Warn("suggestion response had no choices, ignoring")
		return []Pair{}, nil
	}

	pairs, err := parsePairs(envelope.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("suggestion content unparsable, ignoring", "error", err)
		return []Pair{}, nil
	}
	return pairs, nil
}

// parsePairs extracts the JSON array of pairs from the model's reply,
// tolerating a markdown code fence around the JSON.
func parsePairs(content string) ([]Pair, error) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	var pairs []Pair
	if err := json.Unmarshal([]byte(trimmed), &pairs); err != nil {
		return nil, err
	}
	if pairs == nil {
		pairs = []Pair{}
	}
	return pairs, nil
}
