// Package biolink provides a client for the Monarch Initiative BioLink API
// and the services around it (SciGraph, Solr, the phenotype analyzer).
//
// Besides one method per endpoint, the client aggregates several requests
// into UI-ready records: association counts per entity and node summaries.
package biolink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matsen/biolink/internal/config"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to Monarch services.
	DefaultUserAgent = "biolink-cli"

	// DefaultAppBase is reported when the configured app base is empty.
	DefaultAppBase = "https://beta.monarchinitiative.org"

	// maxErrorBody bounds how much of an error response is kept in APIError.
	maxErrorBody = 512
)

// Client is an HTTP client for the BioLink API and related Monarch services.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	server     config.Server
	logger     *slog.Logger
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client bound to one server profile.
func NewClient(server config.Server, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		server:     server.Normalized(),
		logger:     slog.Default(),
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Server returns the server profile the client talks to.
func (c *Client) Server() config.Server {
	return c.server
}

// AppBase returns the application base URL of the configured deployment.
func (c *Client) AppBase() string {
	if c.server.AppBase != "" {
		return c.server.AppBase
	}
	return DefaultAppBase
}

// biolinkURL joins path segments onto the BioLink base URL, escaping each.
func (c *Client) biolinkURL(segments ...string) string {
	return joinURL(c.server.BiolinkURL, segments...)
}

func joinURL(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for i, s := range segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// fetch performs a GET and returns the body, which is guaranteed to be a
// JSON object or array.
func (c *Client) fetch(ctx context.Context, endpoint string, params Params) (json.RawMessage, error) {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Values().Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "url", reqURL, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetworkError, err)
	}

	c.logger.Debug("request complete",
		"url", reqURL,
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start))

	if err := checkHTTPErrors(resp, body, endpoint); err != nil {
		return nil, err
	}

	if !isStructured(body) {
		return nil, fmt.Errorf("%w: %s returned a non-structured body", ErrInvalidResponse, endpoint)
	}

	return json.RawMessage(body), nil
}

// getJSON fetches endpoint and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params Params, out any) error {
	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrInvalidResponse, endpoint, err)
	}
	return nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response, body []byte, endpoint string) error {
	if resp.StatusCode < 400 {
		return nil
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	code := "api_error"
	if resp.StatusCode == http.StatusNotFound {
		code = "not_found"
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       code,
		Message:    msg,
		URL:        endpoint,
	}
}

// isStructured reports whether body is a valid JSON object or array.
func isStructured(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	return json.Valid(trimmed)
}
