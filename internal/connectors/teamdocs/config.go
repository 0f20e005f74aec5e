package teamdocs

import "strings"

const (
	// DefaultPageSize is the per_page value for list requests.
	DefaultPageSize = 100

	// DefaultMaxInFlight caps simultaneous page requests per fetch.
	DefaultMaxInFlight = 5

	// DefaultRequestsPerSecond is the sustained request rate.
	DefaultRequestsPerSecond = 8.0

	// DefaultBurstSize is the token bucket burst size.
	DefaultBurstSize = 10
)

// Config holds the Teamdocs API client configuration.
type Config struct {
	// BaseURL is the API origin, e.g. "https://teamdocs.example.com".
	BaseURL string

	// PageSize is the per_page value for list requests.
	// Default: DefaultPageSize.
	PageSize int

	// MaxInFlight caps simultaneous page requests within one fetch.
	// Default: DefaultMaxInFlight.
	MaxInFlight int

	// RequestsPerSecond is the sustained request rate across all fetches.
	// Default: DefaultRequestsPerSecond.
	RequestsPerSecond float64

	// BurstSize is the token bucket burst size.
	// Default: DefaultBurstSize.
	BurstSize int
}

// NewConfig returns a Config for baseURL with catalog defaults.
func NewConfig(baseURL string) *Config {
	cfg := &Config{BaseURL: baseURL}
	cfg.applyDefaults()
	return cfg
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrConfigMissingBaseURL
	}
	return nil
}

// applyDefaults fills zero values with catalog defaults.
func (c *Config) applyDefaults() {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxInFlight <= 0 {
		c.MaxInFlight = DefaultMaxInFlight
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.BurstSize <= 0 {
		c.BurstSize = DefaultBurstSize
	}
}
