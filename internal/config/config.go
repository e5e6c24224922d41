// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Image    ImageConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// CatalogConfig holds catalog source and normalization settings.
type CatalogConfig struct {
	// SourceURL is the published spreadsheet export fetched on every request.
	// Left optional here: the pipeline reports a configuration error at load
	// time so the rest of the site (including the image proxy) stays up.
	// Supports both CATALOG_CSV_URL and CATALOG_SOURCE_URL for compatibility.
	SourceURL string `env:"CATALOG_CSV_URL" envAlt:"CATALOG_SOURCE_URL"`

	// SiteTitle is the display title shown on rendered pages.
	SiteTitle string `env:"SITE_TITLE" default:"Maurice Burns Estate"`

	// DefaultStatus is applied to rows with a blank status.
	// Set to empty to keep blank statuses blank.
	DefaultStatus string `env:"CATALOG_DEFAULT_STATUS" default:"Available"`

	// ExcludedStatus drops rows whose status matches exactly.
	// Set to empty to disable status filtering.
	ExcludedStatus string `env:"CATALOG_EXCLUDED_STATUS" default:"Removed"`

	// FetchTimeout bounds the source fetch (default: 30s)
	FetchTimeout time.Duration `env:"CATALOG_FETCH_TIMEOUT" default:"30s"`
}

// ImageConfig holds image proxy settings.
type ImageConfig struct {
	// ThumbnailURL is the upstream endpoint template; %s receives the
	// URL-escaped file id.
	ThumbnailURL string `env:"IMAGE_THUMBNAIL_URL" default:"https://drive.google.com/thumbnail?id=%s&sz=w2000"`

	// CredentialsFile is an optional Google service account JSON file.
	// When set, images are fetched through the Drive API instead of the
	// public thumbnail endpoint, which also works for non-public folders.
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`

	// FetchTimeout bounds a single upstream image fetch (default: 30s)
	FetchTimeout time.Duration `env:"IMAGE_FETCH_TIMEOUT" default:"30s"`

	// CacheMaxAge is the public cache directive in seconds (default: 1 day)
	CacheMaxAge int `env:"IMAGE_CACHE_MAX_AGE" default:"86400"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
