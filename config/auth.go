package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents how portal sessions are established.
type AuthMode string

const (
	// AuthModeRemote exchanges credentials with the remote API's login endpoint.
	AuthModeRemote AuthMode = "remote"
	// AuthModeMock issues a fixed identity without contacting the API (development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "remote", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: remote, mock)", v)
	}
}

// DevAuthConfig controls the mock identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID   string `env:"USER_ID"   envDefault:"dev-user"`
	Name     string `env:"NAME"      envDefault:"Dev User"`
	UserType string `env:"USER_TYPE" envDefault:"admin"`
	Token    string `env:"TOKEN"     envDefault:""`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines how sessions are created.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"remote"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminUserType is the API user_type value that grants admin pages.
	AdminUserType string `env:"ADMIN_USER_TYPE" envDefault:"admin"`
}

// SessionConfig controls the lifetime of portal sessions.
type SessionConfig struct {
	// TTL is how long a session lives after login.
	TTL time.Duration `env:"TTL" envDefault:"12h"`

	// CookieName names the browser cookie carrying the session id.
	CookieName string `env:"COOKIE_NAME" envDefault:"session_id"`
}

// Sanitize applies defaults to session settings.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 12 * time.Hour
	}
	s.CookieName = strings.TrimSpace(s.CookieName)
	if s.CookieName == "" {
		s.CookieName = "session_id"
	}
}
