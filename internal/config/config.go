// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SourceBaseURL is the root of the scraped site.
	SourceBaseURL string `koanf:"source_base_url"`

	// UserAgent is sent on every upstream request.
	UserAgent string `koanf:"user_agent"`

	// FetchTimeoutSeconds bounds each upstream fetch.
	FetchTimeoutSeconds int `koanf:"fetch_timeout_seconds"`

	// FixtureLimit caps the default fixture listing.
	FixtureLimit int `koanf:"fixture_limit"`

	// TimeOffsetHours shifts the source's local times for display.
	TimeOffsetHours int `koanf:"time_offset_hours"`
}

// New creates a Config with defaults. The source defaults mirror the
// site the service was built against.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8000",
		SourceBaseURL:       "https://www.ysscores.com",
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		FetchTimeoutSeconds: 10,
		FixtureLimit:        8,
		TimeOffsetHours:     8,
	}
}
