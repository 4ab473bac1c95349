// Package gateway mediates every HTTP call the storefront client makes. It
// attaches the bearer token, enforces a per-call timeout and turns HTTP
// outcomes into typed errors. It never touches UI state; callers own the
// loading overlay and toasts.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vijayaragavan-dev/storefront/internal/session"
)

// DefaultTimeout is the ceiling applied to a call when none is configured.
const DefaultTimeout = 15 * time.Second

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes int64 = 4 << 20

// errCeiling is the cancellation cause of the gateway's own deadline, so a
// shorter deadline on the caller's context is not reported as a timeout.
var errCeiling = errors.New("gateway: request ceiling reached")

// Descriptor describes one call. It is not modified by the gateway.
type Descriptor struct {
	Endpoint     string
	Method       string
	Body         any
	RequiresAuth bool
}

// Gateway issues requests against a base URL.
type Gateway struct {
	baseURL   string
	timeout   time.Duration
	maxBody   int64
	client    *http.Client
	store     session.Store
	onExpired func()
	logger    *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout sets the per-call ceiling. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithMaxBodyBytes caps the bytes read from a response. Non-positive values
// are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.maxBody = n
		}
	}
}

// WithHTTPClient replaces the underlying client. Its own Timeout should be
// zero; the gateway applies the ceiling through the request context.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

// WithLogger sets the logger used for per-call outcome lines.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// OnSessionExpired registers the navigation hook run after a 401 has
// cleared the session. It runs synchronously, once per 401 response, before
// the call returns.
func OnSessionExpired(fn func()) Option {
	return func(g *Gateway) { g.onExpired = fn }
}

// New creates a gateway targeting baseURL (e.g. "http://localhost:8080/api").
func New(baseURL string, store session.Store, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		maxBody: DefaultMaxBodyBytes,
		client:  &http.Client{},
		store:   store,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Timeout returns the configured ceiling.
func (g *Gateway) Timeout() time.Duration { return g.timeout }

// Get issues an authenticated GET.
func (g *Gateway) Get(ctx context.Context, endpoint string) (Result, error) {
	return g.Request(ctx, Descriptor{Endpoint: endpoint, Method: http.MethodGet, RequiresAuth: true})
}

// Post issues an authenticated POST with a JSON body.
func (g *Gateway) Post(ctx context.Context, endpoint string, body any) (Result, error) {
	return g.Request(ctx, Descriptor{Endpoint: endpoint, Method: http.MethodPost, Body: body, RequiresAuth: true})
}

// Put issues an authenticated PUT with a JSON body.
func (g *Gateway) Put(ctx context.Context, endpoint string, body any) (Result, error) {
	return g.Request(ctx, Descriptor{Endpoint: endpoint, Method: http.MethodPut, Body: body, RequiresAuth: true})
}

// Delete issues an authenticated DELETE.
func (g *Gateway) Delete(ctx context.Context, endpoint string) (Result, error) {
	return g.Request(ctx, Descriptor{Endpoint: endpoint, Method: http.MethodDelete, RequiresAuth: true})
}

// Request performs one call. It returns the payload on 2xx (a null Result on
// 204) or one of *NetworkError, *TimeoutError, *SessionExpiredError,
// *HTTPError, *DecodeError.
func (g *Gateway) Request(ctx context.Context, d Descriptor) (Result, error) {
	method := strings.ToUpper(d.Method)
	if method == "" {
		method = http.MethodGet
	}
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedMethod, d.Method)
	}

	var bodyReader io.Reader
	if method != http.MethodGet && d.Body != nil {
		data, err := json.Marshal(d.Body)
		if err != nil {
			return Result{}, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeoutCause(ctx, g.timeout, errCeiling)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+d.Endpoint, bodyReader)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if d.RequiresAuth && g.store != nil {
		if token := g.store.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	res, status, err := g.do(ctx, req, method, d.Endpoint)
	g.logOutcome(method, d.Endpoint, status, time.Since(start), err)
	return res, err
}

func (g *Gateway) do(ctx context.Context, req *http.Request, method, endpoint string) (Result, int, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return Result{}, 0, g.transportError(ctx, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		g.expireSession()
		return Result{}, resp.StatusCode, &SessionExpiredError{Method: method, Endpoint: endpoint}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBody+1))
	if err != nil {
		return Result{}, resp.StatusCode, g.transportError(ctx, method, endpoint, err)
	}
	truncated := int64(len(body)) > g.maxBody
	if truncated {
		body = body[:g.maxBody]
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := MessageUnreadableError
		if !truncated {
			msg = errorMessage(body)
		}
		return Result{}, resp.StatusCode, &HTTPError{
			Method:   method,
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Message:  msg,
		}
	}
	if truncated {
		return Result{}, resp.StatusCode, &DecodeError{Endpoint: endpoint, Err: fmt.Errorf("response body exceeds %d bytes", g.maxBody)}
	}

	// 204, and 200 with an empty body (bodiless DELETE handlers), are null.
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return Result{}, resp.StatusCode, nil
	}

	if !json.Valid(body) {
		return Result{}, resp.StatusCode, &DecodeError{Endpoint: endpoint, Err: errors.New("response body is not valid JSON")}
	}
	return Result{raw: json.RawMessage(body), endpoint: endpoint}, resp.StatusCode, nil
}

// transportError separates the gateway's own ceiling from every other
// failure, including a deadline set by the caller.
func (g *Gateway) transportError(ctx context.Context, method, endpoint string, err error) error {
	if errors.Is(context.Cause(ctx), errCeiling) {
		return &TimeoutError{Method: method, Endpoint: endpoint, After: g.timeout}
	}
	return &NetworkError{Method: method, Endpoint: endpoint, Err: err}
}

func (g *Gateway) expireSession() {
	if g.store != nil {
		if err := g.store.Clear(); err != nil {
			g.logger.Error("clearing expired session", "error", err)
		}
	}
	if g.onExpired != nil {
		g.onExpired()
	}
}

// errorMessage extracts {"message": "..."} from an error body. A body that is
// not JSON yields MessageUnreadableError; JSON without a message yields
// MessageRequestFailed.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return MessageUnreadableError
	}
	if payload.Message == "" {
		return MessageRequestFailed
	}
	return payload.Message
}

func (g *Gateway) logOutcome(method, endpoint string, status int, took time.Duration, err error) {
	attrs := []any{
		"method", method,
		"endpoint", endpoint,
		"status", status,
		"duration", took,
	}
	if err == nil {
		g.logger.Debug("request completed", attrs...)
		return
	}
	attrs = append(attrs, "kind", KindOf(err).String(), "error", err)
	g.logger.Warn("request failed", attrs...)
}
