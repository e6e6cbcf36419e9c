package httpx

import (
	"net/http"
	"time"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
)

// SessionCookies writes and clears the cookie carrying the session id.
type SessionCookies struct {
	Name   string
	Domain string
	// InsecureDev allows the cookie over plain HTTP outside TLS; never set in production.
	InsecureDev bool
}

func (c SessionCookies) name() string {
	if c.Name == "" {
		return "session_id"
	}
	return c.Name
}

// Set issues the cookie for sess, expiring with it.
func (c SessionCookies) Set(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    sess.ID,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   !c.InsecureDev || isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// Clear expires the cookie.
func (c SessionCookies) Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   !c.InsecureDev || isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// sessionID returns the id from the request cookie, or "".
func (c SessionCookies) sessionID(r *http.Request) string {
	ck, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	return ck.Value
}
