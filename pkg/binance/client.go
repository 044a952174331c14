package binance

import (
	"fmt"

	"github.com/rs/zerolog"

	"binancekit/internal/transport"
	"binancekit/pkg/core"
)

// Client talks to the Binance spot REST API. It holds no mutable state beyond
// the underlying HTTP connection pool: every call builds its own parameter
// map, query string and signature, so a single Client is safe for concurrent
// use.
type Client struct {
	config *core.Config
	http   *transport.Client
	logger zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds construction options for the Client.
type Options struct {
	Logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a Client for the given configuration. The config is validated
// once here and never mutated afterwards.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	httpClient, err := transport.NewClient(&transport.Config{
		BaseURL: config.BaseURL,
		Timeout: config.Timeout,
	}, options.Logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	return &Client{
		config: config,
		http:   httpClient,
		logger: options.Logger,
	}, nil
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	if c.http != nil {
		return c.http.Close()
	}
	return nil
}
