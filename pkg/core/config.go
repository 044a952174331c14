package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ProductionURL is the REST endpoint for Binance spot trading.
const ProductionURL = "https://api.binance.com"

// DefaultRecvWindow is the default signed-request staleness tolerance in
// milliseconds. Bounds are enforced server-side, not locally.
const DefaultRecvWindow int64 = 5000

// Config holds everything a client needs to reach the exchange. It is built
// once by the caller and treated as read-only afterwards, so a single Config
// may back any number of concurrent calls.
type Config struct {
	// BaseURL is the scheme+host prefix every request path is appended to.
	BaseURL string `json:"base_url" validate:"required,url"`

	// APIKey identifies the account on signed endpoints. Empty means the
	// client can only reach public market data.
	APIKey string `json:"api_key"`

	// SecretKey is the HMAC key used to sign requests. Empty means the
	// client can only reach public market data.
	SecretKey string `json:"secret_key"`

	// RecvWindow is sent with every signed request as the staleness
	// tolerance in milliseconds.
	RecvWindow int64 `json:"recv_window" validate:"min=0"`

	// Timeout is the maximum duration for a single HTTP round trip.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config pointed at production with empty credentials,
// a 5000ms recvWindow and a 10s request timeout.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    ProductionURL,
		RecvWindow: DefaultRecvWindow,
		Timeout:    10 * time.Second,
		LogLevel:   "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API key pair and returns the config for chaining.
func (c *Config) WithCredentials(apiKey, secretKey string) *Config {
	c.APIKey = apiKey
	c.SecretKey = secretKey
	return c
}

// WithBaseURL overrides the API endpoint and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithRecvWindow sets the signed-request tolerance in milliseconds and returns
// the config for chaining.
func (c *Config) WithRecvWindow(ms int64) *Config {
	c.RecvWindow = ms
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}
