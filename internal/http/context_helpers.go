package httpx

import (
	"context"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
)

type sessionKey struct{}

// WithSession returns a child context that carries the signed-in session.
func WithSession(ctx context.Context, sess domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFrom returns the session stored by the auth middleware.
// Handlers that are only mounted behind it may ignore ok.
func SessionFrom(ctx context.Context) (domainauth.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(domainauth.Session)
	return sess, ok && sess.ID != ""
}
