// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider = (*MockAuthProvider)(nil)
	_ ports.SessionStore = (*MemorySessionStore)(nil)
)

// MockAuthProvider accepts one password for any email and answers with DefaultUser.
type MockAuthProvider struct {
	LoginFunc func(ctx context.Context, creds domainauth.Credentials) (domainauth.Identity, error)

	Password    string
	DefaultUser domainauth.Identity

	mu    sync.Mutex
	calls []domainauth.Credentials
}

// NewMockAuthProvider creates a MockAuthProvider accepting "secret".
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		Password: "secret",
		DefaultUser: domainauth.Identity{
			UserID:   "mock-user-1",
			Name:     "Mock User",
			UserType: "student",
			Token:    "mock-token",
		},
	}
}

func (m *MockAuthProvider) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Identity, error) {
	m.mu.Lock()
	m.calls = append(m.calls, creds)
	m.mu.Unlock()

	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	if creds.Password != m.Password {
		return domainauth.Identity{}, apperrors.Unauthorized("Invalid email or password")
	}
	id := m.DefaultUser
	id.Email = creds.Email
	return id, nil
}

// Calls returns the credentials Login received, in order.
func (m *MockAuthProvider) Calls() []domainauth.Credentials {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domainauth.Credentials(nil), m.calls...)
}

// MemorySessionStore is an in-memory session store for unit tests. Unlike
// memstore it does not check expiry, so callers can exercise their own.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are stored.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
