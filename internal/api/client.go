// Package api is the HTTP client for the mood-journal backend. It owns
// the wire format, bearer-token attachment, and the error taxonomy;
// everything above it works with typed models.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodlogapp/moodlog/internal/logger"
	"github.com/moodlogapp/moodlog/internal/session"
)

const defaultTimeout = 30 * time.Second

// Client issues JSON requests against the backend. Safe for concurrent
// use; the session store is read on every request and written only on a
// 401.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

// New creates a client for the backend at baseURL, reading credentials
// from sess.
func New(baseURL string, sess *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		session: sess,
	}
}

// Session exposes the session store backing this client.
func (c *Client) Session() *session.Store {
	return c.session
}

// Ping checks that the backend is reachable. It needs no credentials.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil, false)
}

// do issues one request and decodes a 2xx JSON body into out (when out
// is non-nil). Authenticated requests carry the bearer token; a 401 on
// those clears the session and returns ErrUnauthenticated. Any other
// non-2xx becomes an *APIError with the server detail when present.
// There are no retries: every failure surfaces once to the caller.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if authed && resp.StatusCode == http.StatusUnauthorized {
		logger.Info("Server rejected token, clearing session", "path", path)
		c.session.Logout()
		return ErrUnauthenticated
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
