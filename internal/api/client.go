// Package api is the typed client for the TinyStock backend. Every operation
// maps transport failures, unexpected statuses and malformed bodies onto a
// documented per-operation sentinel; no error crosses the package boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 10 * time.Second

// Client talks to the backend. It holds no mutable state and is safe to share.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a client for baseURL. Every request is bounded by timeout.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(zap.String("caller", "api.Client")),
	}
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

// do performs one round trip and reads the whole body. The returned error is
// non-nil only for transport-level failures.
func (c *Client) do(ctx context.Context, req request) (*envelope, error) {
	logger := c.logger.With(
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.String("correlation_id", uuid.New().String()),
	)

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Warn("request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("read response body failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("read response body: %w", err)
	}

	logger.Debug("request finished",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("bytes", len(raw)))

	return newEnvelope(resp.StatusCode, raw), nil
}

// mutate runs a create/delete call that succeeds only on wantStatus.
func (c *Client) mutate(ctx context.Context, req request, wantStatus int, okMessage string) Outcome {
	env, err := c.do(ctx, req)
	if err != nil {
		return Outcome{Message: err.Error()}
	}
	if env.status != wantStatus {
		return Outcome{Message: env.errorMessage()}
	}
	return Outcome{OK: true, Message: okMessage}
}

// read runs a GET and returns the envelope only for non-error statuses.
func (c *Client) read(ctx context.Context, req request) (*envelope, bool) {
	env, err := c.do(ctx, req)
	if err != nil {
		return nil, false
	}
	if env.status >= http.StatusBadRequest {
		c.logger.Debug("unexpected status",
			zap.String("path", req.path),
			zap.Int("status", env.status))
		return nil, false
	}
	return env, true
}
