// Package groq is a minimal client for the Groq OpenAI-compatible chat
// completion API. Like the rest of the leaf packages it is deliberately
// dependency-light:
//
//   - No logging in the library (callers decide how/what to log)
//   - Context-aware requests through an injectable HTTP client
//   - Fixed, conservative sampling (low temperature, bounded max_tokens) to
//     bias toward deterministic, catalog-grounded answers
//   - Independent character budgets for the system instructions and the user
//     utterance so a runaway prompt can never blow the request
//
// Failures carry a Kind (network, status, payload) so the orchestrator can
// count them without string matching; all kinds trigger the same degraded
// path upstream.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Defaults for request shaping. Model and sampling are constants of the
// product, not tunables surfaced to users.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel   = "mixtral-8x7b-32768"

	defaultTemperature     = 0.3
	defaultMaxTokens       = 500
	defaultSystemBudget    = 3000
	defaultUtteranceBudget = 1000
)

// ErrorKind classifies a gateway failure.
type ErrorKind int

const (
	// KindNetwork is a connect/transport failure.
	KindNetwork ErrorKind = iota
	// KindStatus is a non-2xx response.
	KindStatus
	// KindPayload is a 2xx response missing the expected content field.
	KindPayload
)

// String returns a stable label for logs and metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindPayload:
		return "payload"
	default:
		return "unknown"
	}
}

// Error is a classified gateway failure.
type Error struct {
	Kind       ErrorKind
	StatusCode int // set for KindStatus
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("groq: unexpected status %d", e.StatusCode)
	case KindPayload:
		return "groq: response missing choices[0].message.content"
	default:
		return fmt.Sprintf("groq: request failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the ErrorKind from err, defaulting to network for
// unclassified errors.
func KindOf(err error) ErrorKind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindNetwork
}

// Client calls the chat completion endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client

	temperature     float64
	maxTokens       int
	systemBudget    int
	utteranceBudget int
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the completion endpoint (tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithModel overrides the model identifier.
func WithModel(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// NewClient returns a Client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:         DefaultBaseURL,
		apiKey:          apiKey,
		model:           DefaultModel,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		temperature:     defaultTemperature,
		maxTokens:       defaultMaxTokens,
		systemBudget:    defaultSystemBudget,
		utteranceBudget: defaultUtteranceBudget,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the truncated system instructions and user utterance and
// returns the completion text. A missing choices[0].message.content field is
// a payload error, never a crash.
func (c *Client) Complete(ctx context.Context, systemPrompt, utterance string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: truncate(systemPrompt, c.systemBudget)},
			{Role: "user", Content: truncate(utterance, c.utteranceBudget)},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &Error{Kind: KindPayload, Err: err}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &Error{Kind: KindPayload}
	}
	return parsed.Choices[0].Message.Content, nil
}

// truncate clips s to at most max bytes. Budgets are character counts on
// ASCII-dominated prompts; clipping mid-rune is acceptable for the upstream
// tokenizer.
func truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}
