package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/careerhub/portal/internal/http/ui/viewmodel"
	"github.com/careerhub/portal/internal/service"
)

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// newPage starts template data with the shared layout fields.
func (h *UIHandlers) newPage(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: h.basePageData(r, meta), r: r}
}

// WithPagination adds a viewmodel.Pagination for the page under "Pagination",
// linking neighbours through basePath with the current filters preserved.
func (b *TemplateDataBuilder) WithPagination(info service.PageInfo, basePath string) *TemplateDataBuilder {
	p := viewmodel.Pagination{
		Page:       info.Page,
		PageSize:   info.PageSize,
		HasPrev:    info.HasPrev(),
		HasNext:    info.HasNext(),
		TotalCount: info.Total,
	}
	if info.Total > 0 {
		p.StartIndex = info.Start + 1
		p.EndIndex = info.End
	}
	if p.HasPrev {
		p.PrevURL = buildPageURL(basePath, b.r.URL.Query(), info.Page-1)
	}
	if p.HasNext {
		p.NextURL = buildPageURL(basePath, b.r.URL.Query(), info.Page+1)
	}
	b.data["Pagination"] = p
	return b
}

// WithNotice shows a banner above the content.
func (b *TemplateDataBuilder) WithNotice(n *viewmodel.Notice) *TemplateDataBuilder {
	if n != nil {
		b.data["Notice"] = n
	}
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// buildLayout constructs shared layout metadata from the request/session context.
func (h *UIHandlers) buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		SiteName:    h.siteName(),
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}
	if layout.PageTitle == "" {
		layout.PageTitle = meta.Title
	}
	if sess, ok := SessionFrom(r.Context()); ok {
		layout.IsAuthenticated = true
		layout.IsAdmin = sess.IsAdmin()
		layout.User = &viewmodel.User{Name: sess.Name, Email: sess.Email, Role: string(sess.Role)}
	}
	return layout
}

// basePageData flattens the layout into the map every page template receives.
func (h *UIHandlers) basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := h.buildLayout(r, meta)
	data := map[string]any{
		"SiteName":        layout.SiteName,
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
		"CSRFToken":       layout.CSRFToken,
		"Errors":          map[string]string{},
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// buildPageURL returns basePath with page set, preserving other non-empty query params.
func buildPageURL(basePath string, q url.Values, page int) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") || k == "page" {
			continue
		}
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				qq.Add(k, s)
			}
		}
	}
	qq.Set("page", strconv.Itoa(page))
	return basePath + "?" + qq.Encode()
}

// getPageParam parses a positive page number, defaulting to 1.
func getPageParam(q url.Values) int {
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		return n
	}
	return 1
}

// getPageSizeParam parses page_size within service bounds.
func getPageSizeParam(q url.Values, fallback int) int {
	if n, err := strconv.Atoi(q.Get("page_size")); err == nil && n > 0 {
		return min(n, service.MaxPageSize)
	}
	return fallback
}
