package starpick

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/starpick-admin/internal/domain/session"
	"github.com/riskibarqy/starpick-admin/internal/platform/id"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

const (
	defaultBaseURL  = "http://starpick-server.test/api/v1"
	maxResponseBody = 8 << 20
	requestIDHeader = "X-Request-ID"
)

var (
	requestPool  bytebufferpool.Pool
	responsePool bytebufferpool.Pool
)

// pooledBody is a request body backed by a pooled buffer. The transport closes
// request bodies once it is done with them, which returns the buffer.
type pooledBody struct {
	*bytes.Reader
	buf  *bytebufferpool.ByteBuffer
	once sync.Once
}

func encodeBody(body any) (*pooledBody, error) {
	buf := requestPool.Get()
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(body); err != nil {
		requestPool.Put(buf)
		return nil, err
	}
	return &pooledBody{Reader: bytes.NewReader(buf.B), buf: buf}, nil
}

func (b *pooledBody) Close() error {
	b.once.Do(func() { requestPool.Put(b.buf) })
	return nil
}

// Navigator moves the console to a route, used to send the operator back to
// the login screen.
type Navigator func(path string)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Sessions       session.Store
	OnUnauthorized Navigator
	IDs            id.Generator
	Logger         *logging.Logger
}

// Client talks to the StarPick backend on behalf of the signed-in operator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sessions   session.Store
	navigate   Navigator
	ids        id.Generator
	logger     *logging.Logger

	// unauthorizedFired is set by the first 401 and cleared by Rearm.
	unauthorizedFired atomic.Bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	ids := cfg.IDs
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}

	navigate := cfg.OnUnauthorized
	if navigate == nil {
		navigate = func(string) {}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sessions:   cfg.Sessions,
		navigate:   navigate,
		ids:        ids,
		logger:     logger,
	}
}

// Rearm lets the next 401 clear the session and navigate again. Called after
// a new session is saved.
func (c *Client) Rearm() {
	c.unauthorizedFired.Store(false)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	fullURL := buildURL(c.baseURL, path)
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s %s request", method, path)
	}
	if body != nil {
		payload, err := encodeBody(body)
		if err != nil {
			return nil, crerr.Wrapf(err, "encode %s %s request", method, path)
		}
		req.Body = payload
		req.ContentLength = int64(payload.Len())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, c.ids.NewID())
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s %s: %s", usecase.ErrDependencyUnavailable, method, path, err.Error())
	}
	defer resp.Body.Close()

	buf := responsePool.Get()
	defer responsePool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBody)); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, crerr.Wrapf(err, "read %s %s response", method, path)
	}
	raw := append([]byte(nil), buf.B...)

	c.logger.DebugContext(ctx, "starpick request",
		"method", method,
		"path", path,
		"status_code", resp.StatusCode,
		"request_id", req.Header.Get(requestIDHeader),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, newAPIError(method, path, resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) token(ctx context.Context) string {
	if c.sessions == nil {
		return ""
	}
	s, err := c.sessions.Load(ctx)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s.Token)
}

// handleUnauthorized clears the session and navigates to the login route once
// per burst of 401 responses.
func (c *Client) handleUnauthorized(ctx context.Context) {
	if !c.unauthorizedFired.CompareAndSwap(false, true) {
		return
	}
	if c.sessions != nil {
		if err := c.sessions.Clear(ctx); err != nil {
			c.logger.WarnContext(ctx, "clear session after 401 failed", "error", err)
		}
	}
	c.logger.InfoContext(ctx, "session expired, returning to login")
	c.navigate("/")
}

func buildURL(baseURL, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
