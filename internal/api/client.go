package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Default configuration values.
const (
	DefaultBaseURL   = "https://api.elasticemail.com/v2"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "elasticemail-client-go"
)

// Format selects the response encoding requested from the API.
type Format string

const (
	// FormatJSON is the API default.
	FormatJSON Format = "json"
	// FormatXML asks the API for XML responses.
	FormatXML Format = "xml"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatXML
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	format     Format
	userAgent  string
	logger     zerolog.Logger
}

// Config holds struct-based configuration for NewClient.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Format     Format
	UserAgent  string
	// Logger receives debug events for every request. Nil disables logging.
	Logger *zerolog.Logger
}

// NewClient creates a client from a Config. Zero values take the defaults.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    cfg.APIKey,
		format:    FormatJSON,
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}
	if cfg.BaseURL != "" {
		c.baseURL = cfg.BaseURL
	}
	if cfg.Format != "" {
		c.format = cfg.Format
	}
	if cfg.UserAgent != "" {
		c.userAgent = cfg.UserAgent
	}
	if cfg.Logger != nil {
		c.logger = *cfg.Logger
	}

	if !c.format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, c.format)
	}
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	switch {
	case cfg.HTTPClient != nil:
		c.httpClient = cfg.HTTPClient
	case cfg.Timeout > 0:
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	default:
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return c, nil
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. It takes precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithFormat sets the response format.
func WithFormat(format Format) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = &logger
	}
}

// New creates a new API client using functional options.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{APIKey: apiKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// WithAPIKey returns a copy of the client that authenticates with apiKey.
// The copy shares the underlying HTTP client.
func (c *Client) WithAPIKey(apiKey string) *Client {
	cp := *c
	cp.apiKey = apiKey
	return &cp
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Format returns the configured response format.
func (c *Client) Format() Format {
	return c.format
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Request sends req and decodes the response data into result.
// result may be nil when the operation returns nothing.
func (c *Client) Request(ctx context.Context, req *Request, result any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	httpReq, encoding, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		cause := stripURLError(err)
		c.logger.Debug().
			Str("endpoint", req.Endpoint).
			Str("method", httpReq.Method).
			Err(cause).
			Msg("request failed")
		return &NetworkError{Err: cause, URL: c.endpointURL(req.Endpoint)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, URL: c.endpointURL(req.Endpoint)}
	}

	c.logger.Debug().
		Str("endpoint", req.Endpoint).
		Str("method", httpReq.Method).
		Str("encoding", encoding).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request done")

	return c.decodeResponse(req.Endpoint, resp.StatusCode, body, result)
}

func (c *Client) endpointURL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// stripURLError drops the *url.Error layer, whose message embeds the full
// request URL including the apikey query parameter.
func stripURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
