package ai

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

	"github.com/rs/zerolog/log"
)

// ErrNotConfigured is returned when no endpoint or key is set.
var ErrNotConfigured = errors.New("AI endpoint not configured")

// Config holds the endpoint and the two static credentials.
type Config struct {
	URL    string
	APIKey string
	Model  string

	// GatewayHeader names the second credential header; GatewayKey is its
	// value. Both empty means the header is not sent.
	GatewayHeader string
	GatewayKey    string

	Timeout time.Duration
}

// Enabled reports whether the endpoint and key are set.
func (c Config) Enabled() bool {
	return c.URL != "" && c.APIKey != ""
}

// Client is a client for the chat-completions API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new AI client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	if cfg.Enabled() {
		log.Info().Str("url", cfg.URL).Str("model", cfg.Model).Msg("AI client configured")
	} else {
		log.Warn().Msg("AI endpoint or key missing, team commentary disabled")
	}

	return c
}

// Enabled reports whether TeamComp can be called.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.Enabled()
}

// TeamComp asks for commentary on a five-champion team and returns the
// first completion verbatim.
func (c *Client) TeamComp(ctx context.Context, team []string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	if len(team) != TeamSize {
		return "", fmt.Errorf("%w: got %d", ErrTeamSize, len(team))
	}

	return c.complete(ctx, []ChatMessage{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: BuildTeamPrompt(team)},
	})
}

// complete makes the API request to the AI service.
func (c *Client) complete(ctx context.Context, messages []ChatMessage) (string, error) {
	payload := ChatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.GatewayHeader != "" && c.cfg.GatewayKey != "" {
		req.Header.Set(c.cfg.GatewayHeader, c.cfg.GatewayKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("body", truncate(string(respBody), 300)).Msg("AI API error")
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, truncate(string(respBody), 300))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if chatResp.Error != nil && chatResp.Error.Message != "" {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	log.Debug().Dur("took", time.Since(start)).Msg("AI completion received")
	return chatResp.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
