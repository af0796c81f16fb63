// Package upstream provides read-mostly connectivity to the charity-platform
// backend. Every admin-console resource (partners, charities, donors,
// recipients, transactions, requests) is fetched from here as loosely-shaped
// JSON and normalized elsewhere; this package only moves bytes and classifies
// failures.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/naf3/admin-console-api/internal/auth"
	"github.com/naf3/admin-console-api/internal/config"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

// Error is a transport-level failure talking to the backend: a network error,
// a non-2xx response, or an undecodable body. The Message prefers the
// backend-supplied "message" field so the console can show it verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream request failed: %s", e.Message)
}

// Client talks to the two upstream bases (general API and admin API). It holds
// no state beyond configuration; the bearer token travels in the request
// context so concurrent requests for different sessions never interfere.
type Client struct {
	httpClient *http.Client
	apiBase    string
	adminBase  string
	loginPath  string
	logger     *zap.Logger
}

// NewClient creates an upstream client from configuration.
func NewClient(cfg *config.UpstreamConfig, logger *zap.Logger) *Client {
	timeout := cfg.RequestTimeoutDuration()
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	logger.Info("Initializing upstream client",
		zap.String("api_base", cfg.APIBaseURL),
		zap.String("admin_base", cfg.AdminBaseURL),
		zap.Duration("request_timeout", timeout),
	)

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiBase:    strings.TrimRight(cfg.APIBaseURL, "/"),
		adminBase:  strings.TrimRight(cfg.AdminBaseURL, "/"),
		loginPath:  cfg.LoginPath,
		logger:     logger,
	}
}

// APIBaseURL returns the general API base, used by the pass-through proxy.
func (c *Client) APIBaseURL() string { return c.apiBase }

// AdminBaseURL returns the admin API base, used by the pass-through proxy.
func (c *Client) AdminBaseURL() string { return c.adminBase }

// Get fetches a resource from the general API base and decodes the JSON body.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodGet, c.apiBase, path, nil)
}

// AdminGet fetches a resource from the admin API base.
func (c *Client) AdminGet(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodGet, c.adminBase, path, nil)
}

// Post sends a JSON body to the general API base.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, c.apiBase, path, body)
}

// Login posts credentials to the configured login endpoint. The raw response
// is returned alongside the HTTP status so the caller can relay both.
func (c *Client) Login(ctx context.Context, body any) (any, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, &Error{Message: "Login proxy failed."}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+c.loginPath, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, &Error{Message: "Login proxy failed."}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Upstream login request failed", zap.Error(err))
		return nil, 0, &Error{Message: "Login proxy failed."}
	}
	defer resp.Body.Close()

	decoded, _ := decodeBody(resp.Body)
	return decoded, resp.StatusCode, nil
}

func (c *Client) do(ctx context.Context, method, base, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: "Request failed"}
		}
		reader = bytes.NewReader(payload)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return nil, &Error{Message: "Request failed"}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := auth.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &Error{Message: "Request failed"}
	}
	defer resp.Body.Close()

	decoded, decodeErr := decodeBody(resp.Body)

	c.logger.Debug("Upstream request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(decoded),
		}
	}
	if decodeErr != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: "Request failed"}
	}

	return decoded, nil
}

// decodeBody decodes a JSON response body. An empty body decodes to nil
// without error; anything else malformed reports a decode failure.
func decodeBody(r io.Reader) (any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// errorMessage extracts a human-readable failure string from an error body,
// preferring the backend's own "message" field.
func errorMessage(decoded any) string {
	if rec, ok := decoded.(map[string]any); ok {
		if msg, ok := rec["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return "Request failed"
}
