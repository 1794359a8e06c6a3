// Package http implements the transport layer: it executes one
// resolved HTTP exchange against the DirectPay API and returns the raw
// response. Authentication headers, socket-level retries and debug
// logging live here; the request and pagination layers above never
// retry.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/directpay-io/dpapi-client/pkg/dpapi"
)

const defaultUserAgent = "dpapi-client-go"

// Request represents a resolved HTTP exchange to execute.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    any
}

// Response is the raw result of an exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// TokenProvider supplies the bearer token attached to each request.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider for a fixed API token.
type StaticToken string

// Token implements TokenProvider.
func (t StaticToken) Token(_ context.Context) (string, error) {
	return string(t), nil
}

// Client executes exchanges against a single API base URL.
type Client struct {
	baseURL   string
	tokens    TokenProvider
	retryable *retryablehttp.Client
	userAgent string
	logger    dpapi.Logger
	debug     bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger dpapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables socket-level retries for 5xx and 429
// responses. Retries are off unless configured.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryable.RetryMax = retryMax
		c.retryable.RetryWaitMin = waitMin
		c.retryable.RetryWaitMax = waitMax
	}
}

// WithHTTPClient overrides the underlying *http.Client, e.g. for
// custom TLS configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.retryable.HTTPClient = httpClient
	}
}

// NewClient creates a transport client for the given base URL. A nil
// TokenProvider sends unauthenticated requests.
func NewClient(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	retryable := retryablehttp.NewClient()
	retryable.RetryMax = 0
	retryable.Logger = nil
	// Surface the final response instead of a synthesized give-up
	// error, so HTTP failures keep their status and body.
	retryable.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:   baseURL,
		tokens:    tokens,
		retryable: retryable,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes one exchange. Network-level failures return a
// *dpapi.TransportError; non-2xx responses return the decoded
// *dpapi.APIError alongside the raw response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		bodyBytes  []byte
		bodyReader io.Reader
	)

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyBytes = encoded
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting access token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"body":   string(bodyBytes),
		})
	}

	httpResp, err := c.retryable.Do(httpReq)
	if err != nil {
		return nil, &dpapi.TransportError{Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &dpapi.TransportError{Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"body":   string(respBody),
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, dpapi.ParseAPIError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}
