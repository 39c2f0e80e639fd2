package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxRetries is the default maximum number of retries.
	DefaultMaxRetries = 3
)

// Client is the Gemini API client.
//
// A Client is an explicitly constructed value; there is no package-level
// singleton. Construct one per credential and pass it where needed.
type Client struct {
	// Text provides text and JSON generation operations.
	Text *TextService

	// Speech provides speech synthesis operations.
	Speech *SpeechService

	config *clientConfig
	genai  *genai.Client
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetry sets the maximum number of retries for transient errors.
func WithRetry(maxRetries int) Option {
	return func(c *clientConfig) {
		c.maxRetries = maxRetries
	}
}

// NewClient creates a new Gemini API client.
//
// The apiKey is checked with ValidateAPIKey before any network use; an
// invalid key fails fast with the validation message.
//
// Example:
//
//	client, err := gemini.NewClient(ctx, "your-api-key")
//	client, err := gemini.NewClient(ctx, "your-api-key", gemini.WithTimeout(30*time.Second))
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if v := ValidateAPIKey(apiKey); !v.Valid {
		return nil, fmt.Errorf("gemini: invalid API key: %s", v.Message)
	}

	cfg := &clientConfig{
		apiKey:     apiKey,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	gcfg := &genai.ClientConfig{
		APIKey:     cfg.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.httpClient,
	}
	if cfg.baseURL != "" {
		gcfg.HTTPOptions.BaseURL = cfg.baseURL
	}

	gc, err := genai.NewClient(ctx, gcfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	c := &Client{
		config: cfg,
		genai:  gc,
	}
	c.Text = newTextService(c)
	c.Speech = newSpeechService(c)
	return c, nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	c.config.httpClient.CloseIdleConnections()
	return nil
}

// do runs fn with retry for transient failures, using exponential backoff:
// 1s, 2s, 4s, ...
func (c *Client) do(ctx context.Context, requestID string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= c.config.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			slog.Debug("gemini: retrying request",
				"request_id", requestID, "attempt", attempt, "backoff", backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := wrapAPIError(fn())
		if err == nil {
			return nil
		}
		lastErr = err

		apiErr, ok := AsError(err)
		if !ok {
			// Non-API errors (network failures) are retryable.
			continue
		}
		if !apiErr.Retryable() {
			return err
		}
	}
	return lastErr
}
