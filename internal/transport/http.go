// Package transport provides HTTP and WebSocket transport implementations for exchange communication.
package transport

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"binrest/internal/ratelimit"
	"binrest/pkg/core"
)

// Client wraps a resty HTTP client with logging and optional pacing.
// It is safe for concurrent use and is shared by every role client built
// from the same connection. It never retries.
type Client struct {
	client  *resty.Client
	limiter *ratelimit.RateLimiter
	logger  zerolog.Logger
	mu      sync.RWMutex
	closed  bool
}

// Response represents an HTTP response with its status code, body, and headers.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
}

// NewClient creates a new HTTP client with the specified configuration.
func NewClient(config *core.Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)
	client.AddContentTypeDecoder("application/json", func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return sonic.Unmarshal(data, v)
	})

	var limiter *ratelimit.RateLimiter
	if config.RateLimitRequests > 0 {
		limiter = ratelimit.New(config.RateLimitRequests, config.RateLimitPeriod)
	}

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// Do executes req and returns the response whatever its status.
// The query is attached to the URL verbatim so the order the signature
// was computed over is the order the server receives.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.WrapError(core.ErrorTypeTransport, core.ErrClientClosed, "http request")
	}

	switch req.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, core.NewError(core.ErrorTypeTransport, "unsupported http method: %s", req.Method)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, core.WrapError(core.ErrorTypeTransport, err, "rate limit wait")
		}
	}

	r := c.client.R().SetContext(ctx)
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("http request")

	resp, err := r.Execute(req.Method, req.FullURL())
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
		return nil, core.WrapError(core.ErrorTypeTransport, err, "http request")
	}

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
		Headers:    headers,
	}, nil
}

// Close releases idle connections. Later calls to Do fail.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// Limiter returns the pacing limiter, nil when pacing is disabled.
func (c *Client) Limiter() *ratelimit.RateLimiter {
	return c.limiter
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the response status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}
