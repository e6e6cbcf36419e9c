package ports

// Package ports defines interfaces (hexagonal ports) for the portal.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
)

// AuthProvider exchanges login credentials for an API identity and token.
type AuthProvider interface {
	Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper maps an API user type to a portal role.
type RoleMapper interface {
	Map(userType string) domainauth.Role
}

// ErrSessionNotFound is returned by SessionStore.Get when no live session exists for the ID.
var ErrSessionNotFound = errors.New("session not found")
