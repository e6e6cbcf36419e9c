package httpx

import (
	"net/http"
	"strings"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	apperrors "github.com/careerhub/portal/internal/errors"
)

const defaultLandingPath = "/jobs"

func loginMeta() PageMeta {
	return PageMeta{Title: "Sign in", CurrentPage: "login"}
}

// LoginPage renders the sign-in form.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, loginMeta()).
		With("Next", safeRedirectPath(r.URL.Query().Get("next"))).
		Build()
	h.renderPage(w, r, data)
}

// Login exchanges credentials for an API token and starts a session.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	creds := domainauth.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	next := safeRedirectPath(r.PostFormValue("next"))

	sess, err := h.Auth.Login(r.Context(), creds)
	if err != nil {
		if apperrors.IsSilent(err) {
			return
		}
		h.logger().InfoContext(r.Context(), "login failed", "error", err)
		message := "Login failed."
		if apperrors.IsUnauthorized(err) {
			message = "Invalid email or password."
		}
		data := h.newPage(r, loginMeta()).
			With("Next", next).
			With("Email", creds.Email).
			WithFieldErrors(fieldErrors(err)).
			WithNotice(noticeFor(err, message))
		h.renderPage(w, r, data.Build())
		return
	}

	h.Cookies.Set(w, r, sess)
	h.logger().InfoContext(r.Context(), "user signed in", "user_id", sess.UserID, "role", string(sess.Role))
	if next == "" {
		next = defaultLandingPath
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(next)
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout ends the session, clears the cookie and returns to the login page.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if id := h.Cookies.sessionID(r); id != "" {
		if err := h.Auth.Logout(r.Context(), id); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
		if h.Generations != nil {
			h.Generations.Forget(id)
		}
	}
	h.Cookies.Clear(w, r)
	if IsHTMX(r) {
		HTMX(w).Redirect("/login")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
