// Package devauth provides a config-driven AuthProvider for local development.
// It accepts any well-formed credentials and answers with a fixed identity.
package devauth

import (
	"context"
	"errors"
	"strings"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/ports"
)

var _ ports.AuthProvider = (*Provider)(nil)

// Config describes the identity every login resolves to.
// Token is forwarded to the API as-is; leave it empty for anonymous browsing
// against a permissive local API.
type Config struct {
	UserID   string
	Name     string
	UserType string
	Token    string
}

// Provider implements ports.AuthProvider without contacting the API.
type Provider struct {
	identity domainauth.Identity
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.UserID) == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	token := cfg.Token
	if token == "" {
		token = "dev-token-" + cfg.UserID
	}
	return &Provider{
		identity: domainauth.Identity{
			UserID:   cfg.UserID,
			Name:     cfg.Name,
			UserType: cfg.UserType,
			Token:    token,
		},
	}, nil
}

// Login returns the configured identity for any non-empty password,
// using the submitted email.
func (p *Provider) Login(_ context.Context, creds domainauth.Credentials) (domainauth.Identity, error) {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return domainauth.Identity{}, apperrors.Unauthorized("email and password are required")
	}
	id := p.identity
	id.Email = strings.TrimSpace(creds.Email)
	return id, nil
}
