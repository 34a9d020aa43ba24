// Package api is a client for the portfolio service's auth and profile
// endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/zseed/internal/profile"
)

// DefaultTimeout bounds each request.
const DefaultTimeout = 15 * time.Second

// DefaultBaseURL is the local development server.
const DefaultBaseURL = "http://localhost:8080"

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
	profilePath  = "/portfolio/"

	// responses are only inspected for status, token and error text
	maxBodySize = 1 << 20
)

// RegisterRequest is the body of a registration call.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken *string `json:"access_token"`
}

// Client talks to one API base URL. The underlying http.Client keeps
// connections alive across calls.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The caller's client is
// used as is; WithTimeout does not touch it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for baseURL. Trailing slashes are dropped.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: NormalizeBaseURL(baseURL),
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

// NormalizeBaseURL strips trailing slashes so paths can be appended.
func NormalizeBaseURL(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register creates an account. 201 and 409 (already registered) both
// succeed; any other status is a *StatusError.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	const op = "register"

	resp, err := c.post(ctx, op, registerPath, req, "")
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusCreated, http.StatusConflict:
		return nil
	}
	return newStatusError(op, resp)
}

// Login exchanges credentials for an access token. Only 200 with a
// non-empty access_token succeeds.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const op = "login"

	resp, err := c.post(ctx, op, loginPath, loginRequest{Email: email, Password: password}, "")
	if err != nil {
		return "", err
	}

	if resp.status != http.StatusOK {
		return "", newStatusError(op, resp)
	}

	var lr loginResponse
	if err := json.Unmarshal([]byte(resp.body), &lr); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	if lr.AccessToken == nil || *lr.AccessToken == "" {
		return "", fmt.Errorf("%s: %w", op, ErrMissingToken)
	}

	return *lr.AccessToken, nil
}

// CreateProfile posts doc on behalf of the token's owner. 201, 409, and
// any response whose body says the profile already exists succeed.
func (c *Client) CreateProfile(ctx context.Context, token string, doc *profile.Document) error {
	const op = "create profile"

	resp, err := c.post(ctx, op, profilePath, doc, token)
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusCreated, http.StatusConflict:
		return nil
	}
	if alreadyExists(resp.body) {
		return nil
	}
	return newStatusError(op, resp)
}

type response struct {
	status int
	body   string
}

func (c *Client) post(ctx context.Context, op, path string, payload any, token string) (*response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			"op", op, "req_id", reqID, "err", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("api request",
		"op", op, "req_id", reqID, "path", path, "status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds())

	return &response{status: resp.StatusCode, body: string(body)}, nil
}
