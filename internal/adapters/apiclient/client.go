// Package apiclient is the typed HTTP client for the remote job-board API.
// Every call carries the caller's session; its token is attached as a bearer
// credential through an oauth2 transport.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	apperrors "github.com/careerhub/portal/internal/errors"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 10 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Transport overrides the base round tripper (tests, proxies).
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client issues requests against the API. It is safe for concurrent use.
type Client struct {
	base      *url.URL
	transport http.RoundTripper
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

// New validates opts and builds a Client.
func New(opts Options) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http(s), got %q", raw)
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:      base,
		transport: transport,
		timeout:   timeout,
		userAgent: opts.UserAgent,
		logger:    logger.With("component", "apiclient"),
	}, nil
}

// httpClient returns a client that authenticates as sess, or an anonymous one
// when the session has no token.
func (c *Client) httpClient(sess domainauth.Session) *http.Client {
	if sess.Token == "" {
		return &http.Client{Transport: c.transport, Timeout: c.timeout}
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: sess.Token, TokenType: "Bearer"})
	return &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: c.transport},
		Timeout:   c.timeout,
	}
}

// endpoint joins path segments onto the base URL. Segments are escaped.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := *c.base
	var b strings.Builder
	b.WriteString(strings.TrimRight(u.Path, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	b.WriteByte('/')
	u.Path = b.String()
	u.RawPath = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// call describes one request.
type call struct {
	method      string
	url         string
	body        []byte
	contentType string
	// op names the operation in errors and logs, e.g. "fetch jobs".
	op string
}

func jsonCall(method, endpoint, op string, payload any) (call, error) {
	c := call{method: method, url: endpoint, op: op}
	if payload == nil {
		return c, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return c, fmt.Errorf("%s: encode request: %w", op, err)
	}
	c.body = b
	c.contentType = "application/json"
	return c, nil
}

// do executes req and returns the response body of a 2xx response.
func (c *Client) do(ctx context.Context, sess domainauth.Session, req call) ([]byte, error) {
	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, req.op)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient(sess).Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			"op", req.op, "method", req.method, "url", req.url,
			"duration", time.Since(start), "error", err)
		return nil, transportError(ctx, req.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	c.logger.DebugContext(ctx, "api request",
		"op", req.op, "method", req.method, "url", req.url,
		"status", resp.StatusCode, "duration", time.Since(start))
	if readErr != nil {
		return nil, transportError(ctx, req.op, readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(req.op, resp.StatusCode, payload)
	}
	return payload, nil
}

// doJSON executes req and decodes a JSON response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, sess domainauth.Session, req call, out any) error {
	payload, err := c.do(ctx, sess, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "%s: decode response", req.op)
	}
	return nil
}

// doList executes req and decodes a list response, accepting either a bare
// array or a paginated envelope.
func (c *Client) doList(ctx context.Context, sess domainauth.Session, req call, out any) error {
	payload, err := c.do(ctx, sess, req)
	if err != nil {
		return err
	}
	if err := decodeList(payload, out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "%s: decode response", req.op)
	}
	return nil
}
