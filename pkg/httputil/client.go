// Package httputil provides the HTTP fetch layer used to talk to Maven
// repositories.
//
// The client performs plain GET requests with a configurable timeout and
// maps response statuses onto two sentinel errors: [ErrNotFound] for 404
// responses (an expected condition for optional companion artifacts) and
// [ErrNetwork] for everything else that isn't a 200. Fetches are
// single-attempt: a failed request is reported to the caller rather than
// retried, so resolution failures surface immediately.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds each repository request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the repository responds with 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// non-OK statuses other than 404).
	ErrNetwork = errors.New("network error")
)

// Client fetches documents and artifacts from a remote repository.
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given request timeout and default
// headers. A timeout <= 0 falls back to [DefaultTimeout]. Pass nil for
// headers if no default headers are needed.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		headers: headers,
	}
}

// GetText performs an HTTP GET request and returns the response body as a
// string. Used for XML documents (repository metadata, POM descriptors).
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	data, err := c.GetBytes(ctx, url)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetBytes performs an HTTP GET request and returns the raw response body.
// Used for binary artifacts.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("%w: %s", err, url)
	}
	return io.ReadAll(resp.Body)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
