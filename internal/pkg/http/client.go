package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redtestlab/portal/internal/pkg/circuitbreaker"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/redtestlab/portal/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

// Config describes how to reach the lab API
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxGetRetries  int
	BreakerTimeout time.Duration
}

// Request is one call to the lab API
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	// Public requests are sent without the session bearer token
	Public bool
}

// Client talks JSON to the lab API on behalf of the logged-in portal user.
// GETs are retried with backoff; writes are sent exactly once.
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
	breaker    *circuitbreaker.CircuitBreaker
	backoff    *retry.Backoff
	logger     *logger.ZapLogger
}

// NewClient creates a new lab API client
func NewClient(config Config, log *logger.ZapLogger) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	breakerCfg := circuitbreaker.DefaultConfig("lab-api")
	breakerCfg.IsFailure = isUnavailable
	if config.BreakerTimeout > 0 {
		breakerCfg.Timeout = config.BreakerTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &nethttp.Client{Timeout: config.Timeout},
		breaker:    circuitbreaker.New(breakerCfg, log),
		backoff:    retry.NewBackoff(config.MaxGetRetries, log, retry.WithRetryable(isUnavailable)),
		logger:     log,
	}
}

// BaseURL returns the lab API root every path is appended to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BreakerStats exposes the lab API circuit breaker for health checks
func (c *Client) BreakerStats() circuitbreaker.Stats {
	return c.breaker.Stats()
}

// Get fetches path with the session token and decodes the answer into result
func (c *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.Do(ctx, Request{Method: nethttp.MethodGet, Path: path, Query: query}, result)
}

// Post sends body to path with the session token
func (c *Client) Post(ctx context.Context, path string, body, result interface{}) error {
	return c.Do(ctx, Request{Method: nethttp.MethodPost, Path: path, Body: body}, result)
}

// Put sends body to path with the session token
func (c *Client) Put(ctx context.Context, path string, body, result interface{}) error {
	return c.Do(ctx, Request{Method: nethttp.MethodPut, Path: path, Body: body}, result)
}

// Delete removes the resource at path
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Method: nethttp.MethodDelete, Path: path}, nil)
}

// Do executes req and decodes a 2xx answer into result, which may be nil
func (c *Client) Do(ctx context.Context, req Request, result interface{}) error {
	token := requestcontext.GetUpstreamToken(ctx)
	if !req.Public && token == "" {
		return ErrMissingToken
	}

	call := func(ctx context.Context) error {
		return c.breaker.Execute(ctx, func(ctx context.Context) error {
			return c.send(ctx, req, token, result)
		})
	}

	var err error
	if req.Method == nethttp.MethodGet {
		err = c.backoff.Do(ctx, "GET "+req.Path, call)
	} else {
		err = call(ctx)
	}

	if errors.Is(err, circuitbreaker.ErrOpen) {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return err
}

func (c *Client) send(ctx context.Context, req Request, token string, result interface{}) error {
	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var reqBody io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if !req.Public {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		httpReq.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Lab API request failed",
			logger.String("method", req.Method),
			logger.String("path", req.Path),
			logger.Err(err))
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Lab API request completed",
		logger.String("method", req.Method),
		logger.String("path", req.Path),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body, resp.StatusCode),
		}
	}

	if err := decodeBody(body, result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

// extractMessage pulls a human message out of an error body, falling back
// to the status text
func extractMessage(body []byte, statusCode int) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		var errText string
		if json.Unmarshal(payload.Error, &errText) == nil && errText != "" {
			return errText
		}
	}

	if text := nethttp.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}

// decodeBody accepts both bare JSON and the {"success":..,"data":..}
// envelope the lab API wraps most answers in
func decodeBody(body []byte, result interface{}) error {
	body = bytes.TrimSpace(body)
	if result == nil || len(body) == 0 {
		return nil
	}

	if body[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			return json.Unmarshal(envelope.Data, result)
		}
	}

	return json.Unmarshal(body, result)
}
