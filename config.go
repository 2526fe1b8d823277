package capitol

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults for the Congress.gov v3 API. These values are part of the
// observable contract: construction applies them to every field left unset.
const (
	// DefaultBaseURL is the production Congress.gov API root.
	DefaultBaseURL = "https://api.congress.gov/v3"

	// DefaultRateLimit is the api.data.gov request budget per hour.
	DefaultRateLimit = 5000

	// DefaultTimeoutMillis is the request timeout in milliseconds.
	DefaultTimeoutMillis = 30000
)

// Environment variables read by ConfigFromEnv.
const (
	EnvBaseURL       = "CONGRESS_API_URL"
	EnvAPIKey        = "CONGRESS_API_KEY"
	EnvRateLimit     = "CONGRESS_API_RATE_LIMIT"
	EnvTimeoutMillis = "CONGRESS_API_TIMEOUT_MS"
)

// Config holds the settings for a Client. A Client copies its Config at
// construction and never mutates it afterwards, so a single Config value can
// seed any number of clients.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// APIKey authenticates requests. Empty or blank means unconfigured; the
	// Client refuses to dispatch until a key is present.
	APIKey string

	// RateLimit is the request budget per hour. It is advisory metadata for
	// an external limiter unless WithRateLimitGuard is enabled.
	RateLimit int

	// Timeout bounds each request from dispatch to the last body byte.
	Timeout time.Duration
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() Config {
	return Config{}.withDefaults()
}

// withDefaults fills every unset field. Defaulting happens here, at
// construction, never at read time.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeoutMillis * time.Millisecond
	}
	return c
}

// IsConfigured reports whether an API key is present after trimming
// whitespace. This is the sole gate consulted before issuing network calls.
func (c Config) IsConfigured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ConfigFromEnv builds a Config from the process environment, falling back
// to the defaults for anything unset or unparseable.
func ConfigFromEnv() Config {
	cfg := Config{
		BaseURL: os.Getenv(EnvBaseURL),
		APIKey:  os.Getenv(EnvAPIKey),
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit = n
		}
	}
	if v := os.Getenv(EnvTimeoutMillis); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.Timeout = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg.withDefaults()
}
