package httpx

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
)

func TestMaterialsHome(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials", nil, asUser(id))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Job Materials", "Exam Materials"}, texts(parseHTML(t, rec), ".card-link h2"))
	assert.Empty(t, p.api.Calls())
}

func TestJobMaterialCategories(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/jobs", nil, asUser(id))

	doc := parseHTML(t, rec)
	assert.Equal(t, []string{"MNC", "State Government", "Central Government", "Others"}, texts(doc, ".card-link h2"))
	href, _ := doc.Find(".card-link").First().Attr("href")
	assert.Equal(t, "/materials/jobs/mnc", href)
}

func TestJobMaterialsByCategory(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/jobs/MNC", nil, asUser(id))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.Equal(t, []string{"Aptitude Basics"}, texts(doc, ".material-list h3"))
	assert.Equal(t, []string{"Numbers and ratios"}, texts(doc, ".material-list li p:not(.material-meta)"))
	assert.True(t, p.api.Called("GET /api/users/study-materials/"))
}

func TestJobMaterialsByCategory_ExamCategoryIsNotFound(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/jobs/competitive", nil, asUser(id))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, p.api.Called("GET /api/users/study-materials/"))
}

func TestJobMaterialsByCategory_Empty(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/jobs/central", nil, asUser(id))

	assert.Equal(t, []string{"No study materials found."}, texts(parseHTML(t, rec), ".empty-state"))
}

func TestExamMaterials(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/exams", nil, asUser(id))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.ElementsMatch(t, []string{"National Entrance Test", "Civil Services Prelims"}, texts(doc, "#exam-list h3"))
	assert.Equal(t, []string{"All", "Competitive", "Entrance", "Others"}, texts(doc, "#exam-category option"))
	assert.Equal(t, "All", strings.TrimSpace(doc.Find("#exam-category option[selected]").Text()))
}

func TestExamMaterials_FilterFragment(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/exams?category=entrance", nil, asUser(id), viaHTMX(examListTarget))

	require.Equal(t, http.StatusOK, rec.Code)
	body := strings.TrimSpace(rec.Body.String())
	assert.True(t, strings.HasPrefix(body, `<div id="exam-list">`), body)
	assert.Equal(t, []string{"National Entrance Test"}, texts(parseHTML(t, rec), "h3"))
}

func TestExamMaterials_UnknownCategoryShowsAll(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/exams?category=mnc", nil, asUser(id))

	assert.Len(t, texts(parseHTML(t, rec), "#exam-list h3"), 2)
}

func TestExamMaterials_FailureToastsForFragment(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)
	p.api.failWith("GET /api/users/study-materials/", http.StatusServiceUnavailable)

	rec := p.serve(http.MethodGet, "/materials/exams?category=all", nil, asUser(id), viaHTMX(examListTarget))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "Error fetching study materials")
}

func TestMaterialDetail_JobMaterial(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/m1", nil, asUser(id))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.Equal(t, "Aptitude Basics", strings.TrimSpace(doc.Find(".material-detail h2").Text()))
	assert.Equal(t, 0, doc.Find("#exam-tabs").Length())
}

func TestMaterialDetail_ExamTabs(t *testing.T) {
	tests := []struct {
		name       string
		tab        string
		activeHref string
		check      func(t *testing.T, panel string)
	}{
		{
			name:       "overview by default",
			activeHref: "/materials/e1?tab=overview",
			check: func(t *testing.T, panel string) {
				assert.Contains(t, panel, "Testing Agency")
			},
		},
		{
			name:       "tab by index",
			tab:        "1",
			activeHref: "/materials/e1?tab=eligibility",
			check: func(t *testing.T, panel string) {
				assert.Equal(t, 3, strings.Count(panel, "Not specified"))
			},
		},
		{
			name:       "pattern shows syllabus",
			tab:        "pattern",
			activeHref: "/materials/e1?tab=pattern",
			check: func(t *testing.T, panel string) {
				assert.Contains(t, panel, "180")
				assert.Contains(t, panel, "Physics")
			},
		},
		{
			name:       "dates",
			tab:        "dates",
			activeHref: "/materials/e1?tab=dates",
			check: func(t *testing.T, panel string) {
				assert.Contains(t, panel, "2027-05-04")
			},
		},
		{
			name:       "resources show the registrable domain",
			tab:        "resources",
			activeHref: "/materials/e1?tab=resources",
			check: func(t *testing.T, panel string) {
				assert.Contains(t, panel, "Mock Tests")
				assert.Contains(t, panel, "example.co.uk")
				assert.NotContains(t, panel, "Previous Year Papers")
			},
		},
		{
			name:       "empty community",
			tab:        "community",
			activeHref: "/materials/e1?tab=community",
			check: func(t *testing.T, panel string) {
				assert.Equal(t, "Not specified", panel)
			},
		},
		{
			name:       "out of range index falls back to overview",
			tab:        "42",
			activeHref: "/materials/e1?tab=overview",
			check:      func(*testing.T, string) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPortal(t)
			id := p.signIn(domainauth.RoleUser)
			target := "/materials/e1"
			if tt.tab != "" {
				target += "?tab=" + tt.tab
			}

			rec := p.serve(http.MethodGet, target, nil, asUser(id))

			require.Equal(t, http.StatusOK, rec.Code)
			doc := parseHTML(t, rec)
			require.Equal(t, 7, doc.Find("#exam-tabs [role=tab]").Length())
			active := doc.Find(`#exam-tabs [role=tab][aria-selected="true"]`)
			require.Equal(t, 1, active.Length())
			href, _ := active.Attr("href")
			assert.Equal(t, tt.activeHref, href)
			tt.check(t, strings.Join(strings.Fields(doc.Find(".tab-panel").Text()), " "))
		})
	}
}

func TestMaterialDetail_TabSwitchFragment(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/e1?tab=faqs", nil, asUser(id), viaHTMX(examTabsTarget))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/materials/e1?tab=faqs", rec.Header().Get("Hx-Push-Url"))
	body := strings.TrimSpace(rec.Body.String())
	assert.True(t, strings.HasPrefix(body, `<div id="exam-tabs"`), body)
	assert.Contains(t, body, "Is there negative marking?")
}

func TestMaterialDetail_NotFound(t *testing.T) {
	p := newTestPortal(t)
	id := p.signIn(domainauth.RoleUser)

	rec := p.serve(http.MethodGet, "/materials/missing", nil, asUser(id))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
