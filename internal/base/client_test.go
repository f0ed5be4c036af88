package base

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	if client == nil {
		t.Fatal("NewClient returned nil")
	}

	if client.HTTPClient == nil {
		t.Error("HTTPClient is nil")
	}
	if client.Logger == nil {
		t.Error("Logger is nil")
	}
	if client.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", client.UserAgent, DefaultUserAgent)
	}
	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTP := &http.Client{Timeout: 60 * time.Second}
	customLogger := slog.Default()

	client := NewClient(
		WithHTTPClient(customHTTP),
		WithLogger(customLogger),
		WithBaseURL("https://example.com/api/"),
		WithUserAgent("test-agent"),
	)

	if client.HTTPClient != customHTTP {
		t.Error("custom HTTP client was not set")
	}
	if client.Logger != customLogger {
		t.Error("custom logger was not set")
	}
	if client.BaseURL != "https://example.com/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", client.BaseURL)
	}
	if client.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q, want test-agent", client.UserAgent)
	}
}

func TestDo_SendsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "key" {
			t.Errorf("Authorization = %q, want key", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"title":"x"}` {
			t.Errorf("body = %s", body)
		}
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	client := NewClient()
	header := http.Header{}
	header.Set("Authorization", "key")

	resp, err := client.Do(context.Background(), Request{
		Method: http.MethodPut,
		URL:    server.URL + "/v0/items/1",
		Route:  "/v0/items/{id}",
		Header: header,
		Body:   []byte(`{"title":"x"}`),
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("StatusCode = %d, want 201", resp.StatusCode)
	}
	if string(resp.Body) != `{"status":"success"}` {
		t.Errorf("Body = %s", resp.Body)
	}
	if resp.Header.Get("X-Test") != "yes" {
		t.Error("response headers not returned")
	}
}

func TestDo_NoBodyNoContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("Content-Type = %q, want empty for GET", ct)
		}
		if accept := r.Header.Get("Accept"); accept != "*/*" {
			t.Errorf("Accept = %q, caller value should be kept", accept)
		}
	}))
	defer server.Close()

	header := http.Header{}
	header.Set("Accept", "*/*")
	_, err := NewClient().Do(context.Background(), Request{
		Method: http.MethodGet,
		URL:    server.URL,
		Route:  "download",
		Header: header,
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_ErrorStatusIsNotAnError(t *testing.T) {
	tests := []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable}

	for _, status := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"status":"fail"}`))
			}))
			defer server.Close()

			resp, err := NewClient().Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, Route: "/test"})
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if resp.StatusCode != status {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, status)
			}
		})
	}
}

func TestDo_NoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient().Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, Route: "/test"})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server called %d times, want exactly 1", got)
	}
}

func TestDo_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	_, err := NewClient().Do(context.Background(), Request{Method: http.MethodGet, URL: addr, Route: "/test"})

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %T %v, want *TransportError", err, err)
	}
	if te.Method != http.MethodGet || te.URL != addr {
		t.Errorf("TransportError = %+v", te)
	}
}

func TestDo_InvalidURL(t *testing.T) {
	_, err := NewClient().Do(context.Background(), Request{Method: http.MethodGet, URL: "://bad", Route: "/test"})

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %T %v, want *TransportError", err, err)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient().Do(ctx, Request{Method: http.MethodGet, URL: server.URL, Route: "/slow"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestBodyError(t *testing.T) {
	err := &BodyError{Err: io.ErrUnexpectedEOF}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("BodyError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "failed to read response") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello..."},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(5 * time.Second)
	if c.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", c.Timeout)
	}
	transport, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport = %T, want *http.Transport", c.Transport)
	}
	if transport.MaxIdleConnsPerHost != 20 {
		t.Errorf("MaxIdleConnsPerHost = %d, want 20", transport.MaxIdleConnsPerHost)
	}
}
