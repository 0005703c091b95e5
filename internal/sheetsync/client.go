// Package sheetsync moves the order table to and from the remote
// spreadsheet store, speaking the row-table JSON format relayed by the
// proxy.
package sheetsync

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

	"orderpad/internal/order"
)

// Sentinel errors for the two ways a sync can fail. Callers branch with
// errors.Is: unavailable remotes degrade to local state on the load path and
// surface to the user on the save path; malformed payloads never replace
// local state.
var (
	ErrRemoteUnavailable = errors.New("remote unavailable")
	ErrMalformedPayload  = errors.New("malformed payload")
)

const (
	syncPath         = "/sync"
	defaultUserAgent = "orderpad/0.1"
	defaultTimeout   = 10 * time.Second
)

// Client talks to the sync endpoint behind the relay proxy.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given base URL. A bare host:port is
// accepted and normalized to http.
func NewClient(rawURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch retrieves the remote row table. Transport failures and non-2xx
// statuses wrap ErrRemoteUnavailable; an undecodable body wraps
// ErrMalformedPayload.
func (c *Client) Fetch(ctx context.Context) (Envelope, error) {
	if c == nil {
		return Envelope{}, fmt.Errorf("client is nil")
	}
	req, err := c.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return Envelope{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Envelope{}, fmt.Errorf("%w: %s", ErrRemoteUnavailable, statusMessage(resp))
	}

	var env Envelope
	dec := json.NewDecoder(io.LimitReader(resp.Body, 25<<20))
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("%w: decode body: %v", ErrMalformedPayload, err)
	}
	return env, nil
}

// Import fetches, validates, and rebuilds a table from the remote store. On
// any error the caller's current table stays authoritative; Import never
// returns a partial table alongside an error.
func (c *Client) Import(ctx context.Context) (order.Table, error) {
	env, err := c.Fetch(ctx)
	if err != nil {
		return order.Table{}, err
	}
	if err := Validate(env); err != nil {
		return order.Table{}, err
	}
	return order.FromRows(env.Header, env.Rows), nil
}

// Push sends an envelope to the remote store. Local state is never mutated
// by the response; failures are reported for the caller to surface.
func (c *Client) Push(ctx context.Context, env Envelope) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrRemoteUnavailable, statusMessage(resp))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, error) {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: syncPath})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

// statusMessage reads a bounded slice of an error response body so the user
// sees what the remote said, not just a code.
func statusMessage(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return resp.Status
	}
	return fmt.Sprintf("status=%d: %s", resp.StatusCode, msg)
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("remote url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse remote url %q: %w", rawURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
