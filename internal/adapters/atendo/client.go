// Package atendo is the HTTP client for the upstream Atendo directory API
// (auth, users, roles, permissions, tenants). All responses are JSON;
// protected endpoints take a bearer token. Transport failures, non-2xx
// statuses, and malformed bodies normalize into upstream AppErrors so
// callers never persist partially received state.
package atendo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/atendo-hq/console-api/internal/errors"
	"github.com/atendo-hq/console-api/internal/ports"
)

// Config captures the upstream connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client talks to the Atendo directory API. It is safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a directory client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("atendo base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, client: hc}, nil
}

var _ ports.Directory = (*Client)(nil)

// requestParams groups the pieces of one upstream call.
type requestParams struct {
	method string
	path   string // already escaped, starts with "/"
	query  url.Values
	token  string // bearer token; empty for public endpoints
	body   any    // JSON-encoded when non-nil
}

// do issues the request and decodes a 2xx JSON response into out (when
// out is non-nil). Any failure comes back as an upstream AppError; a 401
// maps to unauthorized so callers can route it to the refresh path.
func (c *Client) do(ctx context.Context, p requestParams, out any) error {
	var reqBody io.Reader
	if p.body != nil {
		encoded, err := json.Marshal(p.body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	target := c.baseURL + p.path
	if len(p.query) > 0 {
		target += "?" + p.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, p.method, target, reqBody)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	if p.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "%s %s", p.method, p.path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, p)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode %s %s response", p.method, p.path)
	}
	return nil
}

// statusError turns a non-2xx response into an AppError, preferring the
// upstream's own message when the body carries one.
func statusError(resp *http.Response, p requestParams) error {
	msg := upstreamMessage(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		if msg == "" {
			msg = "upstream rejected credentials"
		}
		return apperrors.Unauthorized(msg)
	}
	if msg != "" {
		return apperrors.Upstreamf("%s %s: HTTP %d: %s", p.method, p.path, resp.StatusCode, msg)
	}
	return apperrors.Upstreamf("%s %s: HTTP %d", p.method, p.path, resp.StatusCode)
}

// upstreamMessage extracts {"message": ...} from an error body, if any.
func upstreamMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(raw))
}

func pathEscapef(format string, args ...string) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(a)
	}
	return fmt.Sprintf(format, escaped...)
}
