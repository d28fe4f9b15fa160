package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/dashauth/internal/common"
	"github.com/dmitrijs2005/dashauth/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

const (
	fallbackLogin    = "Login failed"
	fallbackRegister = "Registration failed"
	fallbackForgot   = "Failed to send reset link"
)

// HTTPClient talks to the REST auth endpoint rooted at baseURL.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	timeout      time.Duration
	logger       logging.Logger
	newRequestID func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero leaves requests unbounded, which
// is the default; callers may still cancel through the context.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient validates baseURL (http or https, e.g.
// "http://127.0.0.1:8080/api/v1") and builds a client.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: missing host", baseURL)
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{},
		logger:       logging.Nop(),
		newRequestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		// copy so a shared client such as http.DefaultClient is left alone
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	c.logger = c.logger.With("module", "auth_client")
	return c, nil
}

type response struct {
	status    int
	body      []byte
	requestID string
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, token string) (*response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, transportError(msgUnreachable, err)
	}

	requestID := c.newRequestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, transportError(msgUnreachable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(msgUnreachable, err)
	}

	c.logger.Debug(ctx, "request completed", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	return &response{status: resp.StatusCode, body: b, requestID: requestID}, nil
}

// failure converts a non-2xx response into an AuthError. Server-side failures
// (5xx) count as transport problems, everything else as a rejection.
func failure(r *response, fallback string) *AuthError {
	kind := KindCredential
	if r.status >= http.StatusInternalServerError {
		kind = KindTransport
	}
	return &AuthError{Kind: kind, Status: r.status, Message: errorMessage(r.body, fallback)}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	r, err := c.do(ctx, http.MethodPost, "/login", map[string]string{"email": email, "password": password}, "")
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, failure(r, fallbackLogin)
	}

	p, err := decodeAuthEnvelope(r.status, r.body)
	if err != nil {
		return nil, err
	}
	if p.Token == "" {
		return nil, protocolError(r.status, msgMissingToken)
	}
	if p.User == nil {
		return nil, protocolError(r.status, msgMissingUser)
	}

	return &AuthResult{User: p.User, Token: p.Token}, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*RegisterResult, error) {
	r, err := c.do(ctx, http.MethodPost, "/register", map[string]string{"name": name, "email": email, "password": password}, "")
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, failure(r, fallbackRegister)
	}

	p, err := decodeAuthEnvelope(r.status, r.body)
	if err != nil {
		return nil, err
	}

	switch {
	case p.Token != "":
		if p.User == nil {
			return nil, protocolError(r.status, msgMissingUser)
		}
		return &RegisterResult{AuthResult: AuthResult{User: p.User, Token: p.Token}, Message: p.Message}, nil
	case p.Message != "" || p.UserID != "":
		return &RegisterResult{Message: p.Message, UserID: p.UserID}, nil
	default:
		return nil, protocolError(r.status, msgMissingToken)
	}
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	r, err := c.do(ctx, http.MethodPost, "/forgot-password", map[string]string{"email": email}, "")
	if err != nil {
		return err
	}
	if !r.ok() {
		return failure(r, fallbackForgot)
	}
	return nil
}

// VerifyToken reports whether the server accepts token. Any failure, including
// an unreachable server, counts as invalid.
func (c *HTTPClient) VerifyToken(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	r, err := c.do(ctx, http.MethodGet, "/verify-token", nil, token)
	if err != nil {
		return false
	}
	return r.ok()
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
