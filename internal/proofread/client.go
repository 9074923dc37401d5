package proofread

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the typo detection API.
	DefaultEndpoint = "https://api.a3rt.recruit.co.jp/proofreading/v2/typo"

	// DefaultTimeout bounds one request including reading the body.
	DefaultTimeout = 60 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 1 << 20
)

// Client submits sentences to the proofreading service.
// A Client is safe for concurrent use.
type Client struct {
	endpoint     string
	apiKey       string
	sensitivity  string
	timeout      time.Duration
	proxyAddress string
	httpClient   *http.Client
	logger       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the service URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithAPIKey sets the key sent as the apikey parameter.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithSensitivity sets the optional sensitivity parameter
// ("low", "medium" or "high"). Empty leaves it to the service default.
func WithSensitivity(sensitivity string) Option {
	return func(c *Client) {
		c.sensitivity = sensitivity
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithProxy routes requests through the SOCKS5 proxy at address.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// WithHTTPClient replaces the HTTP client. Timeout and proxy options are
// ignored when it is set.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client. It fails only for an invalid proxy address.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.httpClient == nil {
		transport, err := newTransport(c.proxyAddress)
		if err != nil {
			return nil, err
		}
		c.httpClient = &http.Client{
			Transport: transport,
			Timeout:   c.timeout,
		}
	}
	return c, nil
}

// Check submits one sentence and returns the decoded result.
func (c *Client) Check(ctx context.Context, sentence string) (*Result, error) {
	reqURL, err := c.requestURL(sentence)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("proofreading request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proofreading request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: %d", ErrHTTPStatus, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("%w: content type %q", ErrNotJSON, ct)
	}

	var result Result
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if result.Status >= ServiceErrorStatus {
		return nil, fmt.Errorf("%w: status %d: %s", ErrServiceStatus, result.Status, result.Message)
	}

	c.logger.Debug("proofreading response",
		"status", result.Status,
		"alerts", len(result.Alerts),
	)
	return &result, nil
}

// requestURL builds the GET URL for sentence.
func (c *Client) requestURL(sentence string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("sentence", sentence)
	if c.sensitivity != "" {
		q.Set("sensitivity", c.sensitivity)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
