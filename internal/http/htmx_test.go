package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHTMX(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsHTMX(r))
	r.Header.Set("HX-Request", "TRUE")
	assert.True(t, IsHTMX(r))
	assert.True(t, WantsPartial(r))
	r.Header.Set("HX-History-Restore-Request", "true")
	assert.False(t, WantsPartial(r))
}

func TestHTMXResponse_TriggersAccumulate(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Toast("Saved", "success").Trigger(eventJobsChanged, nil)
	HTMX(rec).Trigger("other", map[string]int{"n": 1})

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("Hx-Trigger")), &got))
	assert.Equal(t, map[string]any{"message": "Saved", "type": "success"}, got[eventToast])
	assert.Equal(t, true, got[eventJobsChanged])
	assert.Equal(t, map[string]any{"n": float64(1)}, got["other"])
}

func TestHTMXResponse_EmptyToastIsSkipped(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Toast("  ", "error")
	assert.Empty(t, rec.Header().Get("Hx-Trigger"))
}

func TestHTMXResponse_Redirect(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Redirect("/admin/jobs")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/admin/jobs", rec.Header().Get("Hx-Redirect"))
}

func TestHTMXResponse_Discard(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Discard()
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("Hx-Reswap"))
}

func TestHXTarget(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("HX-Target", "#admin-jobs-table")
	assert.Equal(t, "admin-jobs-table", HXTarget(r))
}
