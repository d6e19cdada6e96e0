package elasticemail

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/elasticemail/client-go/internal/api"
)

// Format selects the response encoding requested from the API.
type Format = api.Format

const (
	// FormatJSON is the default response format.
	FormatJSON = api.FormatJSON
	// FormatXML requests XML responses.
	FormatXML = api.FormatXML
)

const (
	defaultBaseURL = api.DefaultBaseURL
	defaultTimeout = api.DefaultTimeout
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	format     Format
	userAgent  string
	logger     *zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
// Default: https://api.elasticemail.com/v2
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Its own Timeout applies and
// WithTimeout is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithFormat sets the response format.
// Default: FormatJSON
func WithFormat(format Format) Option {
	return func(c *clientConfig) {
		c.format = format
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger that receives a debug event per request.
// The API key is never logged. Default: no logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}
