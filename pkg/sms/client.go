// Package sms provides a client for an HTTP SMS gateway.
//
// The gateway accepts a JSON body with the destination number and the message
// text and authenticates with a bearer token.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client sends text messages through the gateway.
type Client struct {
	baseURL string       // gateway endpoint, e.g. https://sms.example.com/v1/messages
	token   string       // API token sent as a bearer token
	from    string       // sender id or number
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new SMS gateway client.
func NewClient(baseURL, token, from string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		from:    from,
		client:  &http.Client{Timeout: timeout},
	}
}

// sendRequest is the payload of the gateway send endpoint.
type sendRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// Send sends msg to the given phone number.
//
// Any non-2xx gateway response is returned as an error including the response body.
func (c *Client) Send(ctx context.Context, to, msg string) error {
	body, err := json.Marshal(sendRequest{From: c.from, To: to, Text: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway error: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	return nil
}
