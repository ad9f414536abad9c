package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/lifelens/lifelens-cli/internal/config"
	"github.com/lifelens/lifelens-cli/internal/logger"
	"github.com/lifelens/lifelens-cli/internal/session"
)

// ErrNotAuthenticated is returned before any network traffic when the
// session has no user id or access token.
var ErrNotAuthenticated = errors.New("not authenticated, run 'lifelens auth login' first")

// Error is a failed backend response. Message is the backend's own message
// when the body carried one, otherwise the HTTP status text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the lifelens backend. Every call checks the session
// first, waits for the rate limiter, and sends the bearer token.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Provider
	limiter *rate.Limiter
}

// New builds a client from config and the keyring-backed session.
func New(cfg config.Config, sess session.Provider) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		session: sess,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
	}
}

// UserID returns the session's user id. Callers that embed the id in a
// path use this rather than holding their own copy.
func (c *Client) UserID() string {
	return c.session.UserID()
}

// do sends one request and decodes the enveloped data into out (when out
// is non-nil). A non-2xx response becomes an *Error; body read problems on
// an otherwise failed response never mask the status.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.session.UserID() == "" || c.session.AccessToken() == "" {
		return ErrNotAuthenticated
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("unable to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.session.AccessToken())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("api request", "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return fmt.Errorf("unable to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode, Message: extractMessage(raw)}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		logger.Debug("api error", "status", apiErr.Status, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unable to decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unable to decode response data: %w", err)
	}
	return nil
}

// extractMessage pulls the backend's message field out of an error body.
func extractMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Message
}

// isMissingData reports whether err is the backend's 403 "no data for this
// user yet" convention for the given message fragment. Only the endpoints
// that document the convention should treat it as a non-error.
func isMissingData(err error, fragment string) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusForbidden && strings.Contains(strings.ToLower(apiErr.Message), fragment)
}
