// Package probe provides the HTTP implementation of the agent's health
// probe capability: one GET per check, bounded by a per-request timeout.
package probe

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxDrainBytes limits how much of a response body is drained before the
// connection is returned to the pool.
const maxDrainBytes = 64 << 10

// connection pooling limits; the agent probes a single host
const (
	defaultMaxIdleConnsPerHost = 2
	defaultIdleConnTimeout     = 60 * time.Second
)

// Client is an HTTP client wrapper for periodic single-endpoint probes.
//
// Timeouts are applied per-request via context, not as a global client
// timeout, so the agent's configured probe timeout is the only bound.
// Response bodies are discarded; only the status code matters.
type Client struct {
	httpClient *http.Client
}

// New creates a probe [Client]. With insecure set, server certificates are
// not verified; the deployed device probes its own site over TLS without a
// CA bundle, and this preserves that behavior for parity testing.
func New(insecure bool) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: insecure,
				},
			},
		},
	}
}

// Probe issues a single GET and returns the HTTP status code. Any
// transport-level failure (DNS, connect, TLS, timeout) is returned as an
// error; the caller classifies it as down.
func (c *Client) Probe(ctx context.Context, url string, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// drain a bounded amount so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return resp.StatusCode, nil
}

// Close closes idle connections in the client's pool. Safe to call
// multiple times; the client remains usable afterwards.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
