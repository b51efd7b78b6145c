// Package completion talks to a hosted chat-completion API.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultURL       = "https://api.mistral.ai/v1/chat/completions"
	DefaultModel     = "mistral-tiny"
	DefaultMaxTokens = 150

	// NoResponse is returned when the reply carries no first-choice content.
	NoResponse = "No response"
)

var ErrMissingAPIKey = errors.New("completion api key is required")

type Config struct {
	APIKey    string
	URL       string
	Model     string
	MaxTokens int
	// Timeout of zero keeps the http.Client default (no timeout).
	Timeout time.Duration
}

type Client struct {
	apiKey     string
	url        string
	model      string
	maxTokens  int
	httpClient *http.Client
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Client{
		apiKey:     apiKey,
		url:        url,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Complete sends prompt as a single user message and returns the first
// choice's content, or NoResponse when the reply has none. Transport
// failures, non-2xx statuses and undecodable bodies are returned as errors.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:     c.model,
		Messages:  []message{{Role: "user", Content: prompt}},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("%d %s for url: %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), c.url, strings.TrimSpace(string(body)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == nil {
		return NoResponse, nil
	}
	return *decoded.Choices[0].Message.Content, nil
}
