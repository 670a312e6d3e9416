// Package remote talks to the warranty authority's REST API.
//
// Every response body goes through unwrapList or unwrapObject before it is
// decoded, and every non-2xx status is mapped into the failures taxonomy here,
// so nothing above this package inspects wire shapes or status codes.
package remote

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

	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/infrastructure/logging"
	"ev_warranty/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// errNotFound is returned by do for a 404. Callers decide what absence means.
var errNotFound = fmt.Errorf("authority resource %w", failures.ErrNotFound)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logging.OrNop(logger),
		metrics: m,
	}
}

// do sends one request and returns the raw response body of a 2xx reply.
// There are no retries; a failed call surfaces to the caller as is.
func (c *Client) do(ctx context.Context, operation, method, path string, body any) ([]byte, error) {
	start := time.Now()
	raw, err := c.roundTrip(ctx, operation, method, path, body)
	c.metrics.ObserveAuthority(operation, outcomeOf(err), time.Since(start))
	if err != nil && !errors.Is(err, failures.ErrNotFound) {
		c.logger.Warn("[authority][remote] request failed",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
	}
	return raw, err
}

func (c *Client) roundTrip(ctx context.Context, operation, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &failures.TransportError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &failures.TransportError{Operation: operation, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	return nil, statusError(operation, resp.StatusCode, raw)
}

// statusError maps a non-2xx reply onto the failure taxonomy.
func statusError(operation string, status int, body []byte) error {
	msg := errorMessage(body)
	switch {
	case status == http.StatusNotFound:
		return errNotFound
	case status == http.StatusConflict:
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &failures.StateError{Message: msg}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &failures.ValidationError{Reason: msg}
	default:
		return &failures.TransportError{Operation: operation, StatusCode: status, Err: errors.New(msg)}
	}
}

// errorMessage pulls a human message out of an error body. The authority is
// not consistent about the field name, and sometimes replies with plain text.
func errorMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"message", "error", "detail", "title"} {
			if v, ok := obj[key]; ok {
				var s string
				if json.Unmarshal(v, &s) == nil && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s)
				}
			}
		}
		return ""
	}
	return string(body)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, failures.ErrNotFound):
		return "not_found"
	case errors.Is(err, failures.ErrState):
		return "state"
	case errors.Is(err, failures.ErrValidation):
		return "invalid"
	default:
		return "transport"
	}
}
