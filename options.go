package capitol

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option represents a configuration option for New.
type Option func(*Client)

// WithConfig replaces the whole configuration. Unset fields still receive
// their defaults at construction.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.config = cfg
	}
}

// WithBaseURL sets the API root URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.config.BaseURL = baseURL
	}
}

// WithAPIKey sets the api.data.gov API key.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.config.APIKey = key
	}
}

// WithRateLimit sets the hourly request budget carried in the configuration.
func WithRateLimit(requestsPerHour int) Option {
	return func(c *Client) {
		c.config.RateLimit = requestsPerHour
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.config.Timeout = d
		if c.httpClient != nil {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient sets a custom HTTP client. A zero Timeout on the provided
// client is replaced by the configured timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimitGuard makes the client enforce its configured RateLimit with
// a token bucket: the full hourly budget is available immediately and refills
// evenly across the hour. Denied calls fail with ErrRateLimited before any
// network attempt. Without this option RateLimit is advisory metadata for an
// external limiter.
func WithRateLimitGuard() Option {
	return func(c *Client) {
		c.rateLimitGuard = true
	}
}

// WithLogger sets a logger for debug output. A nil logger keeps the client
// silent.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a plain console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		c.logger = NewSimpleLogger()
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithMetricsRegistry enables metrics on a caller-owned registry, which keeps
// tests and multi-client processes free of duplicate registration panics.
func WithMetricsRegistry(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollectorWithRegistry(registerer)
	}
}
