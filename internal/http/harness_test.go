package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/careerhub/portal/internal/adapters/apiclient"
	"github.com/careerhub/portal/internal/adapters/authroles"
	"github.com/careerhub/portal/internal/adapters/devauth"
	"github.com/careerhub/portal/internal/adapters/memstore"
	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/service"
)

const testCSRFToken = "test-csrf-token"

// testPortal is the full router wired to real services over a fake API.
type testPortal struct {
	t        *testing.T
	api      *fakeAPI
	sessions *memstore.SessionStore
	handler  http.Handler
}

type portalOption func(*RouterServices)

func withMaxUpload(n int64) portalOption {
	return func(s *RouterServices) { s.MaxUploadBytes = n }
}

func newTestPortal(t *testing.T, opts ...portalOption) *testPortal {
	t.Helper()
	api := newFakeAPI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := apiclient.New(apiclient.Options{BaseURL: api.srv.URL, Timeout: 5 * time.Second, Logger: logger})
	require.NoError(t, err)
	provider, err := devauth.NewProvider(devauth.Config{UserID: "u1", Name: "Test Student", UserType: "student"})
	require.NoError(t, err)

	sessions := memstore.NewSessionStore()
	services := RouterServices{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Provider: provider,
			Sessions: sessions,
			Roles:    authroles.StaticRoleMapper{AdminUserType: "admin"},
		}),
		Jobs:         service.NewJobService(service.JobServiceOptions{API: client.Jobs(), Logger: logger}),
		AdminJobs:    service.NewAdminJobService(service.AdminJobServiceOptions{API: client.AdminJobs(), Logger: logger}),
		Materials:    service.NewMaterialService(service.MaterialServiceOptions{API: client.Materials(), Guard: memstore.NewFormGuard(), Logger: logger}),
		Health:       func(context.Context) error { return nil },
		JobsPageSize: 10,
		TemplateFS:   os.DirFS("../../frontend/templates"),
		Logger:       logger,
	}
	for _, opt := range opts {
		opt(&services)
	}
	h, err := NewRouter(services)
	require.NoError(t, err)
	return &testPortal{t: t, api: api, sessions: sessions, handler: h}
}

// signIn stores a live session and returns its id.
func (p *testPortal) signIn(role domainauth.Role) string {
	p.t.Helper()
	sess := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Name:      "Test User",
		Email:     "test@example.com",
		Role:      role,
		Token:     "token-" + string(role),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(p.t, p.sessions.Save(context.Background(), sess))
	return sess.ID
}

type requestOption func(*http.Request)

// asUser attaches the session cookie.
func asUser(sessionID string) requestOption {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	}
}

// viaHTMX marks the request as an htmx swap into target.
func viaHTMX(target string) requestOption {
	return func(r *http.Request) {
		r.Header.Set("Hx-Request", "true")
		if target != "" {
			r.Header.Set("Hx-Target", target)
		}
	}
}

func withoutCSRF() requestOption {
	return func(r *http.Request) {
		r.Header.Del(DefaultCSRFHeaderName)
	}
}

func withBody(contentType string, body io.Reader) requestOption {
	return func(r *http.Request) {
		r.Body = io.NopCloser(body)
		r.ContentLength = -1
		r.Header.Set("Content-Type", contentType)
	}
}

// serve runs one request through the router. form, when non-nil, is sent
// url-encoded. Every request carries a matching CSRF cookie and header.
func (p *testPortal) serve(method, target string, form url.Values, opts ...requestOption) *httptest.ResponseRecorder {
	p.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	r := httptest.NewRequest(method, target, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	r.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	for _, opt := range opts {
		opt(r)
	}
	rec := httptest.NewRecorder()
	p.handler.ServeHTTP(rec, r)
	return rec
}

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

// texts returns the trimmed text of every match.
func texts(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
