// Package llm provides a streaming chat client for an Ollama model server
// and resolves every stream, successful or not, to a user-visible answer.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message is a role-tagged chat message sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for the Ollama chat endpoint.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopK        int       `json:"top_k"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
}

// ChatChunk is one newline-delimited JSON object of the response stream.
type ChatChunk struct {
	Message *Message `json:"message,omitempty"`
	Done    bool     `json:"done"`
}

// StreamCallback is called for each chunk in a streaming response.
type StreamCallback func(chunk *ChatChunk) error

// Client is the Ollama chat client.
type Client struct {
	baseURL     string
	model       string
	temperature float64
	topK        int
	topP        float64
	httpClient  *http.Client
}

// NewClient creates a new Ollama client. The timeout bounds the whole
// request including stream consumption.
func NewClient(baseURL, model string, timeout time.Duration, temperature float64, topK int, topP float64) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		model:       model,
		temperature: temperature,
		topK:        topK,
		topP:        topP,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is a non-200 reply from the model endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model API error [%d]: %s", e.StatusCode, e.Body)
}

// DecodeError is a malformed chunk in the response stream.
type DecodeError struct {
	Line string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON in stream: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ChatStream sends a streaming chat request and calls the callback for each
// chunk. A chunk with done=true ends the stream even if further bytes
// remain unread. A malformed chunk aborts the stream with a *DecodeError.
func (c *Client) ChatStream(ctx context.Context, messages []Message, callback StreamCallback) error {
	req := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		TopK:        c.topK,
		TopP:        c.topP,
		Stream:      true,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	reader := bufio.NewReader(resp.Body)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			var chunk ChatChunk
			if jsonErr := json.Unmarshal([]byte(trimmed), &chunk); jsonErr != nil {
				return &DecodeError{Line: trimmed, Err: jsonErr}
			}
			if cbErr := callback(&chunk); cbErr != nil {
				return cbErr
			}
			if chunk.Done {
				return nil
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}
