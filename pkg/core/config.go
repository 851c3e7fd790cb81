package core

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

// Credentials holds API authentication credentials.
// The API key and the secret key are independent: public endpoints need
// neither, keyed endpoints only the API key, signed endpoints both.
type Credentials struct {
	// APIKey is sent in the X-MBX-APIKEY header.
	APIKey string `json:"api_key"`
	// SecretKey is used only to sign requests; it is never sent or logged.
	SecretKey string `json:"-"`
}

// HasAPIKey reports whether the API key header can be attached.
func (c *Credentials) HasAPIKey() bool {
	return c != nil && c.APIKey != ""
}

// CanSign reports whether requests can be signed.
func (c *Credentials) CanSign() bool {
	return c != nil && c.SecretKey != ""
}

// String masks the API key and never prints the secret.
func (c *Credentials) String() string {
	if c == nil {
		return "Credentials{}"
	}
	return fmt.Sprintf("Credentials{APIKey:%s, Signing:%t}", maskKey(c.APIKey), c.SecretKey != "")
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains all configuration options for a client.
type Config struct {
	// BaseURL is the REST root, e.g. https://api.binance.com.
	BaseURL     string       `json:"base_url" validate:"required,url"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// RateLimitRequests paces outgoing requests per RateLimitPeriod; zero disables pacing.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for baseURL with a 10s timeout and no pacing.
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:  baseURL,
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks the configuration. A malformed base URL is reported as a URL parse error.
func (c *Config) Validate() error {
	if _, err := ParseBaseURL(c.BaseURL); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.RateLimitRequests > 0 && c.RateLimitPeriod <= 0 {
		return fmt.Errorf("RateLimitPeriod must be positive when RateLimitRequests is set")
	}
	return nil
}

// ParseBaseURL parses and checks an exchange root URL.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, WrapError(ErrorTypeURLParse, err, fmt.Sprintf("parse base url %q", raw))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, NewError(ErrorTypeURLParse, "base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, NewError(ErrorTypeURLParse, "base url %q: missing host", raw)
	}
	return u, nil
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit sets the pacing parameters and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
