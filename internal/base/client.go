// Package base provides the shared HTTP transport for the Nuclino API client.
package base

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/nuclino-mcp-server/metrics"
	"github.com/olgasafonova/nuclino-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the service
	DefaultUserAgent = "nuclino-mcp-server/1.0"
)

// Client sends single HTTP round trips. It never retries and never caches.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	BaseURL    string
	UserAgent  string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithBaseURL sets the root that request paths are resolved against
func WithBaseURL(u string) ClientOption {
	return func(client *Client) {
		client.BaseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.UserAgent = ua
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: NewHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		UserAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Request describes one HTTP round trip.
type Request struct {
	Method string
	URL    string

	// Route is a low-cardinality label for metrics and spans, e.g. "/v0/items/{id}".
	Route string

	Header http.Header
	Body   []byte // sent as application/json when non-nil
}

// Response is the raw result of a round trip.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// TransportError reports a request that never produced an HTTP status.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BodyError reports a failure while reading a response body.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("failed to read response: %v", e.Err)
}

func (e *BodyError) Unwrap() error { return e.Err }

// Do performs exactly one HTTP request and returns the status and body.
// Non-2xx statuses are not errors at this layer; the caller interprets them.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	ctx, span := tracing.StartAPISpan(ctx, r.Method, r.Route)
	defer span.End()

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, &TransportError{Method: r.Method, URL: r.URL, Err: err}
	}

	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	} else {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		duration := time.Since(start).Seconds()
		metrics.RecordAPICall(r.Route, r.Method, duration, "transport_error")
		tracing.RecordError(span, err)
		c.Logger.Warn("API request failed",
			"method", r.Method,
			"route", r.Route,
			"error", err)
		return nil, &TransportError{Method: r.Method, URL: r.URL, Err: err}
	}

	data, err := readAndClose(resp)
	duration := time.Since(start).Seconds()
	status := strconv.Itoa(resp.StatusCode)
	metrics.RecordAPICall(r.Route, r.Method, duration, status)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if err != nil {
		tracing.RecordError(span, err)
		return nil, &BodyError{Err: err}
	}
	metrics.ResponseSize.WithLabelValues(r.Route).Observe(float64(len(data)))

	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	} else {
		span.SetStatus(codes.Ok, "")
	}

	c.Logger.Debug("API request completed",
		"method", r.Method,
		"route", r.Route,
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration", time.Duration(duration*float64(time.Second)),
		"body_preview", truncate(string(data), 200))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// NewHTTPClient creates an HTTP client with tuned transport settings
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
