package elasticemail

import (
	"github.com/elasticemail/client-go/internal/api"
)

// Version is the client library version, sent in the default User-Agent.
const Version = "0.4.0"

// Client is the Elastic Email API client. Operations are grouped by resource:
// Email, Segment and Contact. A Client holds no mutable state and is safe for
// concurrent use.
type Client struct {
	apiClient *api.Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	return api.NewClient(api.Config{
		APIKey:     apiKey,
		BaseURL:    cfg.baseURL,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Format:     cfg.format,
		UserAgent:  cfg.userAgent,
		Logger:     cfg.logger,
	})
}

// New creates a new Elastic Email client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		timeout:   defaultTimeout,
		format:    FormatJSON,
		userAgent: "elasticemail-go/" + Version,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// WithAPIKey returns a client that authenticates with apiKey and otherwise
// shares this client's configuration. Use it to act for several accounts
// from one configured client.
func (c *Client) WithAPIKey(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{apiClient: c.apiClient.WithAPIKey(apiKey)}, nil
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Format returns the response format in use.
func (c *Client) Format() Format {
	return c.apiClient.Format()
}
