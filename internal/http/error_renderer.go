package httpx

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/http/ui/viewmodel"
	"github.com/careerhub/portal/internal/validation"
)

// noticeFor turns a failure into the user-facing notice: the operation's
// message plus what the user can do about the error category.
func noticeFor(err error, message string) *viewmodel.Notice {
	cat := apperrors.CategoryOf(err)
	n := &viewmodel.Notice{Category: string(cat), Message: message}
	hint := cat.Hint()
	if cat == apperrors.CategoryValidation || cat == apperrors.CategoryConflict {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Status != 0 && appErr.Message != "" {
			// The API explained what it rejected.
			hint = appErr.Message
		}
	}
	if hint != "" {
		n.Message = strings.TrimSpace(message + " " + hint)
	}
	return n
}

// fieldErrors extracts per-field messages from a validation failure.
func fieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	if field := apperrors.GetField(err); field != "" {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return map[string]string{field: appErr.Message}
		}
	}
	return nil
}

// handled deals with failures that have one response regardless of the page:
// canceled requests get nothing, and an upstream 401 ends the session.
func (h *UIHandlers) handled(w http.ResponseWriter, r *http.Request, err error) bool {
	if apperrors.IsSilent(err) {
		h.logger().DebugContext(r.Context(), "request canceled", "path", r.URL.Path)
		return true
	}
	if apperrors.IsUnauthorized(err) {
		h.expireSession(w, r)
		return true
	}
	return false
}

// expireSession drops the server session after the API rejected its token
// and sends the browser to the login page.
func (h *UIHandlers) expireSession(w http.ResponseWriter, r *http.Request) {
	if sess, ok := SessionFrom(r.Context()); ok {
		if err := h.Auth.Logout(r.Context(), sess.ID); err != nil {
			h.logger().WarnContext(r.Context(), "delete expired session failed", "error", err)
		}
		if h.Generations != nil {
			h.Generations.Forget(sess.ID)
		}
	}
	h.Cookies.Clear(w, r)
	redirectToLogin(w, r)
}

// failAction reports a failed htmx action as an error toast and leaves the
// page as it is. Full-page submits fall back to redirecting to back.
func (h *UIHandlers) failAction(w http.ResponseWriter, r *http.Request, err error, message, back string) {
	if h.handled(w, r, err) {
		return
	}
	h.logger().WarnContext(r.Context(), message, "error", err, "path", r.URL.Path)
	n := noticeFor(err, message)
	if IsHTMX(r) {
		HTMX(w).Toast(n.Message, "error").Discard()
		return
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// failPage renders the page with a banner instead of content. data already
// carries the page metadata and any partial results.
func (h *UIHandlers) failPage(w http.ResponseWriter, r *http.Request, err error, message string, b *TemplateDataBuilder) {
	if h.handled(w, r, err) {
		return
	}
	h.logger().WarnContext(r.Context(), message, "error", err, "path", r.URL.Path)
	if apperrors.IsNotFound(err) {
		h.NotFound(w, r)
		return
	}
	n := noticeFor(err, message)
	if IsHTMX(r) {
		HTMX(w).Toast(n.Message, "error")
	}
	h.renderPage(w, r, b.WithNotice(n).Build())
}
