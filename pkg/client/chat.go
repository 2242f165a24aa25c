package client

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

	"github.com/oklog/ulid/v2"
)

// ChatClient provides a client interface for the travel assistant service.
type ChatClient interface {
	// Chat sends a message and returns the assistant's reply.
	Chat(ctx context.Context, message string) (*ChatReply, error)

	// CheckHealth probes the service health endpoint.
	CheckHealth(ctx context.Context) error
}

// HTTPChatClient implements ChatClient over plain HTTP.
type HTTPChatClient struct {
	baseURL  string
	clientID string
	http     *http.Client
	timeout  time.Duration
}

// NewHTTPClient creates a chat client for the given service base URL.
func NewHTTPClient(baseURL, clientID string) *HTTPChatClient {
	if clientID == "" {
		clientID = "travellai-client"
	}

	return &HTTPChatClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		http:     &http.Client{Timeout: 30 * time.Second},
		timeout:  30 * time.Second,
	}
}

func (c *HTTPChatClient) Chat(ctx context.Context, message string) (*ChatReply, error) {
	reqID := ulid.Make().String()

	slog.Debug("Sending chat request",
		"req_id", reqID,
		"client_id", c.clientID,
		"message_len", len(message))

	body, err := json.Marshal(ChatRequest{ReqID: reqID, Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("chat request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var reply ChatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to parse reply: %w", err)
	}

	slog.Debug("Received chat reply",
		"req_id", reply.ReqID,
		"duration_ms", reply.DurationMs)

	return &reply, nil
}

func (c *HTTPChatClient) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
