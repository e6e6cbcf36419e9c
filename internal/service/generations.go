package service

import (
	"strings"
	"sync"
)

// Generations issues increasing request tokens per key (session and view) so
// a handler can tell whether a newer request for the same view has started
// while it was waiting on the API. Stale responses are dropped, not rendered.
type Generations struct {
	mu   sync.Mutex
	last map[string]uint64
}

// NewGenerations creates an empty tracker.
func NewGenerations() *Generations {
	return &Generations{last: make(map[string]uint64)}
}

// Next starts a new generation for key and returns its token.
func (g *Generations) Next(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last[key]++
	return g.last[key]
}

// IsCurrent reports whether token is still the newest generation for key.
func (g *Generations) IsCurrent(key string, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last[key] == token
}

// Forget drops every key of a session.
func (g *Generations) Forget(sessionID string) {
	prefix := sessionID + ":"
	g.mu.Lock()
	defer g.mu.Unlock()
	for k := range g.last {
		if strings.HasPrefix(k, prefix) {
			delete(g.last, k)
		}
	}
}

// GenerationKey joins a session ID and a view name.
func GenerationKey(sessionID, view string) string {
	return sessionID + ":" + view
}
