// Package telegram provides a small client for the Telegram Bot API.
//
// It is used as the push provider: messages are sent to a chat id with the
// sendMessage method.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client represents a Telegram client used to send notifications.
type Client struct {
	token   string       // bot token for authentication
	baseURL string       // API root, overridable for tests
	client  *http.Client // HTTP client used to make requests
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new Telegram Client instance with the given bot token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send posts a message to the given chat. A non-empty subject is sent as
// the first line.
func (c *Client) Send(ctx context.Context, chatID, subject, body string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	text := body
	if subject != "" {
		text = subject + "\n\n" + body
	}

	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
