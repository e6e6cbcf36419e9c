package httpx

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"mime/multipart"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
)

type testFile struct {
	name string
	data string
}

// multipartBody encodes fields, and file when given, the way the browser submits the material form.
func multipartBody(t *testing.T, fields url.Values, file *testFile) requestOption {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("file", file.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.data))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return withBody(w.FormDataContentType(), &buf)
}

func jobMaterialFields(token string) url.Values {
	return url.Values{
		"form_token":     {token},
		"title":          {"Quantitative Aptitude"},
		"type":           {"job"},
		"category":       {"central"},
		"content.text":   {"Percentages and averages"},
		"faq_question":   {"How long?"},
		"faq_answer":     {"Two weeks"},
		"subject_name":   {""},
		"subject_topics": {""},
	}
}

func formValues(doc *goquery.Document, name string) []string {
	var out []string
	doc.Find(`[name="` + name + `"]`).Each(func(_ int, s *goquery.Selection) {
		if s.Is("textarea") {
			out = append(out, s.Text())
			return
		}
		v, _ := s.Attr("value")
		out = append(out, v)
	})
	return out
}

func TestAdminMaterialsList(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)

	rec := p.serve(http.MethodGet, "/admin/materials", nil, asUser(id))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.Len(t, texts(doc, "#admin-materials-table tbody tr"), 4)
	assert.Equal(t, "Exam Materials", strings.TrimSpace(doc.Find("#material-e1 td").Eq(1).Text()))
	assert.True(t, p.api.Called("GET /api/users/admin/study-materials/"))
}

func TestAdminMaterialNew(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)

	rec := p.serve(http.MethodGet, "/admin/materials/new", nil, asUser(id))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	form := doc.Find("#material-form")
	require.Equal(t, 1, form.Length())
	enctype, _ := form.Attr("enctype")
	assert.Equal(t, "multipart/form-data", enctype)
	token := formValues(doc, "form_token")
	require.Len(t, token, 1)
	assert.NotEmpty(t, token[0])
	assert.Equal(t, "Job Materials", strings.TrimSpace(doc.Find("#type option[selected]").Text()))
	assert.Equal(t, []string{"Select a category", "MNC", "State Government", "Central Government", "Others"}, texts(doc, "#category option"))
	assert.Equal(t, []string{"Application Start", "Application End", "Exam Date", "Result Date"}, formValues(doc, "date_event"),
		"the default date rows travel as hidden inputs for job materials")
	assert.Len(t, formValues(doc, "faq_question"), 1)
}

func TestAdminMaterialForm_AddFAQRow(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)
	fields := jobMaterialFields("tok-add")
	fields.Set("op", "add-faq")

	rec := p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("material-form"), multipartBody(t, fields, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := strings.TrimSpace(rec.Body.String())
	assert.True(t, strings.HasPrefix(body, `<form id="material-form"`), body)
	doc := parseHTML(t, rec)
	assert.Equal(t, []string{"How long?", ""}, formValues(doc, "faq_question"))
	assert.Equal(t, []string{"Quantitative Aptitude"}, formValues(doc, "title"))
	assert.Equal(t, []string{"tok-add"}, formValues(doc, "form_token"))
	assert.Empty(t, p.api.Calls(), "list operations never submit")
}

func TestAdminMaterialForm_RemoveFAQRowByIndex(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)
	fields := jobMaterialFields("tok-remove")
	fields["faq_question"] = []string{"First?", "Second?"}
	fields["faq_answer"] = []string{"One", "Two"}
	fields.Set("op", "remove-faq")

	rec := p.serve(http.MethodPost, "/admin/materials?index=0", nil, asUser(id), viaHTMX("material-form"), multipartBody(t, fields, nil))

	doc := parseHTML(t, rec)
	assert.Equal(t, []string{"Second?"}, formValues(doc, "faq_question"))
	assert.Equal(t, []string{"Two"}, formValues(doc, "faq_answer"))
	disabled := doc.Find(`button[value="remove-faq"][disabled]`).Length()
	assert.Equal(t, 1, disabled, "the last FAQ cannot be removed")
}

func TestAdminMaterialForm_TypeChangeShowsExamSections(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)
	fields := jobMaterialFields("tok-type")
	fields.Set("type", "exam")
	fields.Set("op", "refresh")

	rec := p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("material-form"), multipartBody(t, fields, nil))

	doc := parseHTML(t, rec)
	assert.Equal(t, []string{"Select a category", "Competitive", "Entrance", "Others"}, texts(doc, "#category option"))
	assert.Equal(t, "Select a category", strings.TrimSpace(doc.Find("#category option[selected]").Text()),
		"a category of the previous type is cleared")
	assert.Equal(t, 1, doc.Find(`[name="conductingBody"]`).Length())
	assert.Equal(t, 1, doc.Find(`[name="resources.mockTests"]`).Length())
}

func TestAdminMaterialCreate_WithFile(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)
	fields := jobMaterialFields("tok-create")

	rec := p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("main-content"),
		multipartBody(t, fields, &testFile{name: "notes.pdf", data: "%PDF-1.7 notes"}))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, adminMaterialsPath, rec.Header().Get("Hx-Redirect"))
	trigger := rec.Header().Get("Hx-Trigger")
	assert.Contains(t, trigger, "Study material added successfully")
	assert.Contains(t, trigger, "materials:changed")

	uploads := p.api.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "Quantitative Aptitude", uploads[0].Draft.Title)
	assert.Equal(t, "central", string(uploads[0].Draft.Category))
	assert.Equal(t, "notes.pdf", uploads[0].Filename)
	assert.Equal(t, "%PDF-1.7 notes", uploads[0].FileData)
}

func TestAdminMaterialCreate_DuplicateSubmitIsRejected(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)
	fields := jobMaterialFields("tok-once")

	first := p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("main-content"), multipartBody(t, fields, nil))
	require.Equal(t, adminMaterialsPath, first.Header().Get("Hx-Redirect"))

	second := p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("main-content"), multipartBody(t, fields, nil))

	assert.Empty(t, second.Header().Get("Hx-Redirect"))
	assert.Equal(t, 1, parseHTML(t, second).Find(".notice-conflict").Length())
	assert.Len(t, p.api.Uploads(), 1)
}

func TestAdminMaterialCreate_InvalidDraft(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)
	fields := jobMaterialFields("tok-invalid")
	fields.Set("title", "")
	fields.Set("category", "entrance")

	rec := p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("main-content"), multipartBody(t, fields, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, p.api.Calls())
	doc := parseHTML(t, rec)
	assert.Len(t, texts(doc, ".field-error"), 2)
	assert.Equal(t, []string{"tok-invalid"}, formValues(doc, "form_token"), "the same form instance can be resubmitted")

	fields.Set("title", "Fixed title")
	fields.Set("category", "mnc")
	rec = p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("main-content"), multipartBody(t, fields, nil))
	assert.Equal(t, adminMaterialsPath, rec.Header().Get("Hx-Redirect"))
}

func TestAdminMaterialCreate_FileTooLarge(t *testing.T) {
	p := newTestPortal(t, withMaxUpload(8))
	id := p.signIn(domainauth.RoleAdmin)

	rec := p.serve(http.MethodPost, "/admin/materials", nil, asUser(id), viaHTMX("main-content"),
		multipartBody(t, jobMaterialFields("tok-big"), &testFile{name: "big.bin", data: strings.Repeat("x", 64)}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"file is larger than 8 B"}, texts(parseHTML(t, rec), ".field-error"))
	assert.Empty(t, p.api.Uploads())
}

func TestAdminMaterialEditAndUpdate_KeepsStoredFile(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)

	edit := p.serve(http.MethodGet, "/admin/materials/e1/edit", nil, asUser(id))
	require.Equal(t, http.StatusOK, edit.Code)
	doc := parseHTML(t, edit)
	assert.Equal(t, []string{"National Entrance Test"}, formValues(doc, "title"))
	assert.Equal(t, []string{"Physics"}, formValues(doc, "subject_name"))
	action, _ := doc.Find("#material-form").Attr("action")
	require.Equal(t, "/admin/materials/e1", action)

	fields := url.Values{
		"form_token":     formValues(doc, "form_token"),
		"title":          {"National Entrance Test 2027"},
		"type":           {"exam"},
		"category":       {"entrance"},
		"faq_question":   {"Is there negative marking?"},
		"faq_answer":     {"Yes"},
		"subject_name":   {"Physics"},
		"subject_topics": {"Mechanics"},
	}
	rec := p.serve(http.MethodPost, action, nil, asUser(id), viaHTMX("main-content"), multipartBody(t, fields, nil))

	assert.Equal(t, adminMaterialsPath, rec.Header().Get("Hx-Redirect"))
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "Study material updated successfully")
	assert.True(t, p.api.Called("PUT /api/users/study-materials/e1/"))
	uploads := p.api.Uploads()
	require.Len(t, uploads, 1)
	assert.Empty(t, uploads[0].Filename, "no file part is sent when none was chosen")
}

func TestAdminMaterialDelete(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleAdmin)

	confirm := p.serve(http.MethodGet, "/admin/materials/m2/delete", nil, asUser(id), viaHTMX("modal"))
	deleteURL, _ := parseHTML(t, confirm).Find("button[hx-delete]").Attr("hx-delete")
	require.Equal(t, "/admin/materials/m2", deleteURL)

	rec := p.serve(http.MethodDelete, deleteURL, nil, asUser(id), viaHTMX(""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, p.api.Called("DELETE /api/users/study-materials/m2/"))
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "Study material deleted successfully")
	doc := parseHTML(t, rec)
	assert.Equal(t, 0, doc.Find("#material-m2").Length())
	assert.Len(t, texts(doc, "#admin-materials-table tbody tr"), 3)
}
