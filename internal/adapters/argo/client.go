// Package argo talks to an Argo-style text-generation gateway: a single JSON
// POST endpoint answering {"response": "..."}.
package argo

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

	"github.com/bnema/argo-agent-cli/internal/domain"
	"github.com/bnema/argo-agent-cli/internal/ports"
)

const (
	// maxAttempts bounds delivery at the initial attempt plus two retries.
	maxAttempts = 3

	baseBackoff = 300 * time.Millisecond

	maxResponseBytes = 10 << 20
)

// TransportError is delivery failure: a non-retryable status, or retry
// exhaustion on retryable ones.
type TransportError struct {
	Status   int
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("gateway request failed after %d attempt(s): status %d: %v", e.Attempts, e.Status, e.Err)
	}
	return fmt.Sprintf("gateway request failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseParseError is a delivered but undecodable success body.
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("parse gateway response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

type gatewayResponse struct {
	Response string `json:"response"`
}

// Client implements ports.Completer over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger

	// sleep is swapped in tests to avoid waiting out backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

var _ ports.Completer = (*Client)(nil)

// NewClient builds a gateway client. The supplied http.Client carries the
// caller's timeout; a nil client gets a sane default.
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// Complete delivers the request, retrying 500/502/503/504 and connection
// failures with exponential backoff. Elapsed covers the whole delivery,
// first attempt to final success. The response body is parsed leniently: a
// decodable envelope without a response field yields an empty string.
func (c *Client) Complete(ctx context.Context, req domain.PromptRequest) (ports.Completion, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return ports.Completion{}, fmt.Errorf("encode request: %w", err)
	}

	start := time.Now()

	var lastErr error
	lastStatus := 0
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			delay := baseBackoff << (attempt - 2)
			c.logger.Debug("retrying gateway request", "attempt", attempt, "delay", delay)
			if err := c.sleep(ctx, delay); err != nil {
				return ports.Completion{}, err
			}
		}

		body, status, err := c.post(ctx, payload)
		if err != nil {
			lastErr = err
			lastStatus = 0
			continue
		}

		if retryableStatus(status) {
			lastErr = fmt.Errorf("%s", strings.TrimSpace(string(body)))
			lastStatus = status
			continue
		}

		if status < 200 || status > 299 {
			return ports.Completion{}, &TransportError{
				Status:   status,
				Attempts: attempt,
				Err:      fmt.Errorf("%s", strings.TrimSpace(string(body))),
			}
		}

		var parsed gatewayResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return ports.Completion{}, &ResponseParseError{Err: err}
		}

		return ports.Completion{Content: parsed.Response, Elapsed: time.Since(start)}, nil
	}

	return ports.Completion{}, &TransportError{Status: lastStatus, Attempts: maxAttempts, Err: lastErr}
}

func (c *Client) post(ctx context.Context, payload []byte) ([]byte, int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return nil, 0, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	return body, response.StatusCode, nil
}

func retryableStatus(status int) bool {
	switch status {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
