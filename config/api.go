package config

import (
	"strings"
	"time"
)

const (
	defaultAPITimeout = 15 * time.Second
	maxAPITimeout     = 2 * time.Minute
)

// APIConfig points the portal at the remote job-board API that owns all data.
type APIConfig struct {
	// BaseURL is the scheme and host of the API, e.g. "http://localhost:8000".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds a single upstream request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// UserAgent is sent on every upstream request.
	UserAgent string `env:"USER_AGENT" envDefault:"careerhub-portal"`

	// MaxUploadBytes caps the size of study-material files accepted from browsers.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"20971520"`
}

// Sanitize trims the base URL and clamps the timeout.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultAPITimeout
	}
	if c.Timeout > maxAPITimeout {
		c.Timeout = maxAPITimeout
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 20 << 20
	}
}
