// Package memstore provides process-local session and form guard stores for
// development when no Redis is configured. State is lost on restart.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/material"
	"github.com/careerhub/portal/internal/ports"
)

var (
	_ ports.SessionStore = (*SessionStore)(nil)
	_ ports.FormGuard    = (*FormGuard)(nil)
)

// SessionStore is an in-memory ports.SessionStore.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
	now      func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session), now: time.Now}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, id)
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// FormGuard is an in-memory ports.FormGuard. Closed tokens are kept for the
// life of the process.
type FormGuard struct {
	mu     sync.Mutex
	phases map[string]material.Phase
}

// NewFormGuard creates an empty guard.
func NewFormGuard() *FormGuard {
	return &FormGuard{phases: make(map[string]material.Phase)}
}

func (g *FormGuard) Begin(_ context.Context, token string) error {
	if token == "" {
		return errors.New("form token cannot be empty")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	state := material.FormState{Phase: g.phases[token]}
	if err := state.Begin(); err != nil {
		return err
	}
	g.phases[token] = state.Phase
	return nil
}

func (g *FormGuard) Finish(_ context.Context, token string, success bool) error {
	if token == "" {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if success {
		g.phases[token] = material.PhaseClosed
		return nil
	}
	delete(g.phases, token)
	return nil
}
