package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Client-side events the layout script listens for.
const (
	eventToast        = "showToast"
	eventJobsChanged  = "jobs:changed"
	eventMaterialsSet = "materials:changed"
)

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// WantsPartial returns true when the handler should return only the main fragment (not full layout).
// History restores swap the whole body, so they get the full page.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !strings.EqualFold(r.Header.Get("Hx-History-Restore-Request"), "true")
}

// HXTarget returns the id of the element being updated, without a leading '#'.
func HXTarget(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Hx-Target"), "#")
}

// SetHXRedirect instructs htmx to redirect the browser to the given URL.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set("Hx-Redirect", url) }

// HTMXResponse builds htmx response headers. Trigger calls accumulate into
// one Hx-Trigger object, so a toast and a refresh event can travel together.
type HTMXResponse struct {
	w        http.ResponseWriter
	triggers map[string]any
}

// HTMX creates a new HTMXResponse for fluent response building.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Trigger adds a client-side event with an optional payload (nil sends true).
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	if h.triggers == nil {
		h.triggers = existingTriggers(h.w.Header().Get("Hx-Trigger"))
	}
	if payload == nil {
		payload = true
	}
	h.triggers[event] = payload
	b, err := json.Marshal(h.triggers)
	if err != nil {
		h.w.Header().Set("Hx-Trigger", event)
		return h
	}
	h.w.Header().Set("Hx-Trigger", string(b))
	return h
}

// Toast queues a toast notification of the given kind (success, error, info).
func (h *HTMXResponse) Toast(message, kind string) *HTMXResponse {
	if strings.TrimSpace(message) == "" {
		return h
	}
	return h.Trigger(eventToast, map[string]string{"message": message, "type": kind})
}

// PushURL pushes the given URL into the browser history for the new content.
func (h *HTMXResponse) PushURL(url string) *HTMXResponse {
	h.w.Header().Set("Hx-Push-Url", url)
	return h
}

// ReplaceURL replaces the current history entry, for updates that should not add one (polling).
func (h *HTMXResponse) ReplaceURL(url string) *HTMXResponse {
	h.w.Header().Set("Hx-Replace-Url", url)
	return h
}

// Retarget swaps the response into a different element than the request named.
func (h *HTMXResponse) Retarget(selector string) *HTMXResponse {
	h.w.Header().Set("Hx-Retarget", selector)
	return h
}

// Redirect sends Hx-Redirect with 204 No Content. The handler must return afterwards.
func (h *HTMXResponse) Redirect(url string) {
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// Discard answers 204 with Hx-Reswap none so the client keeps its current DOM.
// Used when a response was superseded by a newer request for the same view.
func (h *HTMXResponse) Discard() {
	h.w.Header().Set("Hx-Reswap", "none")
	h.w.WriteHeader(http.StatusNoContent)
}

func existingTriggers(header string) map[string]any {
	m := map[string]any{}
	if header == "" {
		return m
	}
	if err := json.Unmarshal([]byte(header), &m); err != nil {
		// A bare event name.
		return map[string]any{header: true}
	}
	return m
}
