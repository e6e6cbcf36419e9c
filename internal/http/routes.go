package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	portal "github.com/careerhub/portal"
	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/service"
)

// TemplatePathFromRoot is where templates live on disk relative to the repository root.
const TemplatePathFromRoot = "frontend/templates"

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth        AuthService
	Jobs        JobsService
	AdminJobs   AdminJobsService
	Materials   MaterialsService
	Generations *service.Generations
	// Health probes the session store; nil reports healthy.
	Health HealthProbe

	Cookies            SessionCookies
	CompressionEnabled bool
	CompressionLevel   int

	SiteName       string
	FeedRefresh    time.Duration
	JobsPageSize   int
	MaxUploadBytes int64

	// TemplateFS overrides the template source (tests). Defaults to disk in dev
	// mode and the embedded templates otherwise.
	TemplateFS fs.FS
	Now        func() time.Time
	IsDev      bool
	Logger     *slog.Logger
}

// NewRouter creates the HTTP router with the browser middleware chain:
// recover, access log, compression, CSRF, then the mux behind a 404 page.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Auth == nil || services.Jobs == nil || services.AdminJobs == nil || services.Materials == nil {
		return nil, errors.New("router: auth, jobs, admin jobs and materials services are required")
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	uiHandlers, err := setupUIHandlers(services, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", healthHandler(services.Health, logger))
	mux.Handle("HEAD /healthz", healthHandler(services.Health, logger))
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	registerUIRoutes(mux, uiHandlers, uiRouteConfig{Auth: services.Auth, Cookies: services.Cookies})

	var handler http.Handler = &notFoundHandler{mux: mux, uiHandlers: uiHandlers}
	handler = CSRFProtection(CSRFConfig{CookieDomain: services.Cookies.Domain})(handler)
	if services.CompressionEnabled {
		handler = Compression(CompressionConfig{Level: services.CompressionLevel, Logger: logger})(handler)
	}
	handler = Logging(logger)(handler)
	return Recover(logger)(handler), nil
}

// templateFS picks the template source: override, disk in dev mode, else embedded.
func templateFS(services RouterServices) (fs.FS, error) {
	if services.TemplateFS != nil {
		return services.TemplateFS, nil
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot), nil
	}
	sub, err := fs.Sub(portal.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return nil, fmt.Errorf("template sub-filesystem: %w", err)
	}
	return sub, nil
}

// setupUIHandlers creates the UI handlers with their template renderer.
func setupUIHandlers(services RouterServices, logger *slog.Logger) (*UIHandlers, error) {
	fsys, err := templateFS(services)
	if err != nil {
		return nil, err
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: fsys,
		DevMode:    services.IsDev,
		Now:        services.Now,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	generations := services.Generations
	if generations == nil {
		generations = service.NewGenerations()
	}
	return &UIHandlers{
		T:              tr,
		Auth:           services.Auth,
		Jobs:           services.Jobs,
		AdminJobs:      services.AdminJobs,
		Materials:      services.Materials,
		Generations:    generations,
		Cookies:        services.Cookies,
		SiteName:       services.SiteName,
		FeedRefresh:    services.FeedRefresh,
		JobsPageSize:   services.JobsPageSize,
		MaxUploadBytes: services.MaxUploadBytes,
		IsDev:          services.IsDev,
		Logger:         logger,
	}, nil
}

// staticWithFallback serves /static/* from disk in dev mode and from the embedded FS otherwise.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	staticSub, err := fs.Sub(portal.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))), true)
}

// staticWithCacheHeaders adds cache headers: short public caching for embedded
// assets, none in dev mode so edits show up on reload.
func staticWithCacheHeaders(handler http.Handler, cacheable bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and renders the portal's 404 page.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only unmatched routes are buffered; handler responses stream straight through.
	if _, pattern := h.mux.Handler(r); pattern != "" {
		h.mux.ServeHTTP(w, r)
		return
	}
	cw := newCaptureWriter()
	h.mux.ServeHTTP(cw, r)
	if cw.status == http.StatusNotFound && !strings.HasPrefix(r.URL.Path, "/static/") {
		h.uiHandlers.NotFound(w, r)
		return
	}
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

type uiRouteConfig struct {
	Auth    SessionReader
	Cookies SessionCookies
}

func (c uiRouteConfig) authWrap(h http.HandlerFunc) http.Handler {
	return RequireSession(c.Auth, c.Cookies)(h)
}

func (c uiRouteConfig) adminWrap(h http.HandlerFunc) http.Handler {
	return RequireSession(c.Auth, c.Cookies)(RequireRole(domainauth.RoleAdmin)(h))
}

func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.Handle("GET /{$}", http.RedirectHandler(defaultLandingPath, http.StatusSeeOther))

	registerUIJobRoutes(mux, h, cfg)
	registerUIMaterialRoutes(mux, h, cfg)
	registerUIAdminJobRoutes(mux, h, cfg)
	registerUIAdminMaterialRoutes(mux, h, cfg)
}

func registerUIJobRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	mux.Handle("GET /jobs", cfg.authWrap(h.JobsDashboard))
	mux.Handle("GET /jobs/feed", cfg.authWrap(h.JobsFeed))
	mux.Handle("GET /jobs/saved", cfg.authWrap(h.SavedJobs))
	mux.Handle("GET /jobs/{id}", cfg.authWrap(h.JobDetail))
	mux.Handle("POST /jobs/{id}/save", cfg.authWrap(h.ToggleSave))
}

func registerUIMaterialRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	mux.Handle("GET /materials", cfg.authWrap(h.MaterialsHome))
	mux.Handle("GET /materials/jobs", cfg.authWrap(h.JobMaterialCategories))
	mux.Handle("GET /materials/jobs/{category}", cfg.authWrap(h.JobMaterialsByCategory))
	mux.Handle("GET /materials/exams", cfg.authWrap(h.ExamMaterials))
	mux.Handle("GET /materials/{id}", cfg.authWrap(h.MaterialDetail))
}

func registerUIAdminJobRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	mux.Handle("GET /admin", http.RedirectHandler(adminJobsPath, http.StatusSeeOther))
	mux.Handle("GET /admin/jobs", cfg.adminWrap(h.AdminJobsList))
	mux.Handle("GET /admin/jobs/new", cfg.adminWrap(h.AdminJobNew))
	mux.Handle("POST /admin/jobs", cfg.adminWrap(h.AdminJobCreate))
	mux.Handle("GET /admin/jobs/{id}/edit", cfg.adminWrap(h.AdminJobEdit))
	mux.Handle("POST /admin/jobs/{id}", cfg.adminWrap(h.AdminJobUpdate))
	mux.Handle("GET /admin/jobs/{id}/delete", cfg.adminWrap(h.AdminJobConfirmDelete))
	mux.Handle("DELETE /admin/jobs/{id}", cfg.adminWrap(h.AdminJobDelete))
	// Plain forms cannot send DELETE; the confirm page posts here instead.
	mux.Handle("POST /admin/jobs/{id}/delete", cfg.adminWrap(h.AdminJobDelete))
	mux.Handle("POST /admin/jobs/{id}/pin", cfg.adminWrap(h.AdminJobTogglePin))
}

func registerUIAdminMaterialRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	mux.Handle("GET /admin/materials", cfg.adminWrap(h.AdminMaterialsList))
	mux.Handle("GET /admin/materials/new", cfg.adminWrap(h.AdminMaterialNew))
	mux.Handle("POST /admin/materials", cfg.adminWrap(h.AdminMaterialCreate))
	mux.Handle("GET /admin/materials/{id}/edit", cfg.adminWrap(h.AdminMaterialEdit))
	mux.Handle("POST /admin/materials/{id}", cfg.adminWrap(h.AdminMaterialUpdate))
	mux.Handle("GET /admin/materials/{id}/delete", cfg.adminWrap(h.AdminMaterialConfirmDelete))
	mux.Handle("DELETE /admin/materials/{id}", cfg.adminWrap(h.AdminMaterialDelete))
	mux.Handle("POST /admin/materials/{id}/delete", cfg.adminWrap(h.AdminMaterialDelete))
}
