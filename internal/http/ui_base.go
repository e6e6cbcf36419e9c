package httpx

import (
	"bytes"
	"context"
	"html"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/domain/material"
	"github.com/careerhub/portal/internal/service"
)

// AuthService is the session lifecycle the UI needs.
type AuthService interface {
	SessionReader
	Login(ctx context.Context, creds domainauth.Credentials) (domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// JobsService backs the job dashboard, detail and saved pages.
type JobsService interface {
	Feed(ctx context.Context, sess domainauth.Session, q service.FeedQuery) (*service.Feed, error)
	Detail(ctx context.Context, sess domainauth.Session, id string) (*service.Detail, error)
	SavedJobs(ctx context.Context, sess domainauth.Session) ([]job.Job, error)
	ToggleSave(ctx context.Context, sess domainauth.Session, id string, shown bool) (job.Toggle, error)
}

// AdminJobsService backs the admin job dashboard.
type AdminJobsService interface {
	List(ctx context.Context, sess domainauth.Session) ([]job.Job, error)
	Get(ctx context.Context, sess domainauth.Session, id string) (job.Job, error)
	Create(ctx context.Context, sess domainauth.Session, in job.Input) (job.Job, error)
	Update(ctx context.Context, sess domainauth.Session, id string, in job.Input) (job.Job, error)
	Delete(ctx context.Context, sess domainauth.Session, id string) error
	TogglePin(ctx context.Context, sess domainauth.Session, id string, prior bool) (job.Toggle, error)
}

// MaterialsService backs study-material browsing and the admin table.
type MaterialsService interface {
	List(ctx context.Context, sess domainauth.Session, q material.Query) ([]material.StudyMaterial, error)
	AdminList(ctx context.Context, sess domainauth.Session) ([]material.StudyMaterial, error)
	Get(ctx context.Context, sess domainauth.Session, id string) (material.StudyMaterial, error)
	Submit(ctx context.Context, sess domainauth.Session, sub service.Submission) (material.StudyMaterial, error)
	Delete(ctx context.Context, sess domainauth.Session, id string) error
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthService      = (*service.AuthService)(nil)
	_ JobsService      = (*service.JobService)(nil)
	_ AdminJobsService = (*service.AdminJobService)(nil)
	_ MaterialsService = (*service.MaterialService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T           *TemplateRenderer
	Auth        AuthService
	Jobs        JobsService
	AdminJobs   AdminJobsService
	Materials   MaterialsService
	Generations *service.Generations
	Cookies     SessionCookies

	SiteName       string
	FeedRefresh    time.Duration
	JobsPageSize   int
	MaxUploadBytes int64
	IsDev          bool // Development mode flag for enhanced error reporting
	Logger         *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) siteName() string {
	if h.SiteName == "" {
		return "CareerHub"
	}
	return h.SiteName
}

// session returns the signed-in session. Handlers are only mounted behind
// RequireSession, so a missing session is a wiring bug and yields a zero value.
func session(r *http.Request) domainauth.Session {
	sess, _ := SessionFrom(r.Context())
	return sess
}

// renderPage renders a full page, or for htmx navigation only its content plus
// out-of-band title updates.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	page, _ := data["CurrentPage"].(string)
	title, _ := data["Title"].(string)
	pageTitle, _ := data["PageTitle"].(string)

	var buf bytes.Buffer
	buf.WriteString(`<title>` + html.EscapeString(title) + `</title>`)
	buf.WriteString(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + html.EscapeString(pageTitle) + `</h1>`)
	if err := h.T.ExecuteTo(&buf, ContentTemplateFor(page), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger().Error("failed to write partial page", "error", err)
	}
}

// renderFragment renders one named template for an htmx swap.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.Render(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment "+name)
	}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)
	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<pre class="template-error">` + html.EscapeString(context+": "+err.Error()) + `</pre>`))
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// NotFound renders the not-found page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, PageMeta{Title: "Not Found", CurrentPage: "notfound"}).Build()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.renderPage(w, r, data)
}
