// Package api is the HTTP client for the Grab a Grub backend. All
// network calls flow through [Client]; the session cookie is carried by
// an in-process cookie jar, so every request after login is
// credentialed automatically.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/logger"
)

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://grab-a-grub-backend.onrender.com"

// EnvBaseURL overrides the backend base URL.
const EnvBaseURL = "GRUB_API_BASE_URL"

// Compile-time interface check.
var _ domain.API = (*Client)(nil)

// Error is a failed API call: the HTTP status plus the server's
// structured message when the body carried one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, http.StatusText(e.Status))
}

// Unwrap maps well-known statuses onto domain sentinels so callers can
// errors.Is against them.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	}
	return nil
}

// ErrorMessage extracts the server-provided message from err, or
// returns fallback. Used by views to show inline form errors.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely. The
// cookie jar is preserved unless the replacement brings its own.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h.Jar == nil {
			h.Jar = c.http.Jar
		}
		c.http = h
	}
}

// Client talks to the Grab a Grub REST API.
type Client struct {
	base string
	http *http.Client
	log  *logger.Logger
}

// New creates an API client for the given base URL (DefaultBaseURL
// when empty). The client holds a cookie jar so the session survives
// across calls within the process.
func New(base string, log *logger.Logger, opts ...ClientOption) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	jar, _ := cookiejar.New(nil)
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second, Jar: jar},
		log:  log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.base }

// errBody is the server's structured error envelope.
type errBody struct {
	Error string `json:"error"`
}

// do issues a JSON request and decodes the response into out (skipped
// when out is nil). Non-2xx responses become *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal payload: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	c.log.Debug("api: %s %s (req=%s)", method, path, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errBody
		_ = json.Unmarshal(respBody, &eb)
		c.log.Debug("api: %s %s -> %d (req=%s): %s", method, path, resp.StatusCode, reqID, eb.Error)
		return &Error{Status: resp.StatusCode, Message: eb.Error}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api: unmarshal response: %w", err)
		}
	}
	return nil
}
