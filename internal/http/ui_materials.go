package httpx

import (
	"net/http"
	"net/url"

	"github.com/careerhub/portal/internal/domain/material"
	"github.com/careerhub/portal/internal/http/ui/viewmodel"
	"github.com/careerhub/portal/internal/service"
)

const (
	msgFetchMaterials = "Error fetching study materials"
	msgFetchMaterial  = "Failed to load study material."
	examListTarget    = "exam-list"
	examTabsTarget    = "exam-tabs"
	viewExamList      = "exam-list"
)

// MaterialsHome offers job or exam materials.
func (h *UIHandlers) MaterialsHome(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.newPage(r, PageMeta{Title: "Study Materials", CurrentPage: "materials"}).Build())
}

// JobMaterialCategories shows one card per job-material category.
func (h *UIHandlers) JobMaterialCategories(w http.ResponseWriter, r *http.Request) {
	cats := material.CategoryOptions(material.TypeJob)
	cards := make([]viewmodel.CategoryCard, 0, len(cats))
	for _, c := range cats {
		cards = append(cards, viewmodel.CategoryCard{
			Category: c,
			Label:    c.Label(),
			URL:      "/materials/jobs/" + url.PathEscape(string(c)),
		})
	}
	data := h.newPage(r, PageMeta{Title: "Job Materials", CurrentPage: "material-categories"}).
		With("Cards", cards).
		Build()
	h.renderPage(w, r, data)
}

// JobMaterialsByCategory lists job materials of one category.
func (h *UIHandlers) JobMaterialsByCategory(w http.ResponseWriter, r *http.Request) {
	cat := material.ParseCategory(r.PathValue("category"))
	if !material.TypeJob.Allows(cat) {
		h.NotFound(w, r)
		return
	}
	b := h.newPage(r, PageMeta{Title: cat.Label() + " Materials", CurrentPage: "material-list"}).
		With("Category", cat)
	items, err := h.Materials.List(r.Context(), session(r), material.Query{Type: material.TypeJob, Category: cat})
	if err != nil {
		h.failPage(w, r, err, msgFetchMaterials, b.With("Materials", []material.StudyMaterial{}))
		return
	}
	h.renderPage(w, r, b.With("Materials", items).Build())
}

// examCategory reads the exam list filter; "all" and unknown values select every category.
func examCategory(v string) material.Category {
	c := material.ParseCategory(v)
	if material.TypeExam.Allows(c) {
		return c
	}
	return ""
}

// ExamMaterials lists exam materials. Filter changes request only the list;
// a response overtaken by a newer filter change is discarded.
func (h *UIHandlers) ExamMaterials(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	cat := examCategory(r.URL.Query().Get("category"))
	fragment := HXTarget(r) == examListTarget

	key := service.GenerationKey(sess.ID, viewExamList)
	gen := h.Generations.Next(key)
	items, err := h.Materials.List(r.Context(), sess, material.Query{Type: material.TypeExam, Category: cat})
	if fragment && !h.Generations.IsCurrent(key, gen) {
		HTMX(w).Discard()
		return
	}

	options := []viewmodel.Option{{Value: "all", Label: "All", Selected: cat == ""}}
	for _, c := range material.CategoryOptions(material.TypeExam) {
		options = append(options, viewmodel.Option{Value: string(c), Label: c.Label(), Selected: c == cat})
	}
	b := h.newPage(r, PageMeta{Title: "Exam Materials", CurrentPage: "exams"}).
		With("Options", options).
		With("Materials", items)

	if err != nil {
		if fragment {
			h.failAction(w, r, err, msgFetchMaterials, "/materials/exams")
			return
		}
		h.failPage(w, r, err, msgFetchMaterials, b.With("Materials", []material.StudyMaterial{}))
		return
	}
	if fragment {
		h.renderFragment(w, r, examListTarget, b.Build())
		return
	}
	h.renderPage(w, r, b.Build())
}

// MaterialDetail shows one material. Exams use the tabbed viewer; tab
// switches request only the tab panel.
func (h *UIHandlers) MaterialDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b := h.newPage(r, PageMeta{Title: "Study Material", CurrentPage: "material-detail"})
	m, err := h.Materials.Get(r.Context(), session(r), id)
	if err != nil {
		if HXTarget(r) == examTabsTarget {
			h.failAction(w, r, err, msgFetchMaterial, "/materials")
			return
		}
		h.failPage(w, r, err, msgFetchMaterial, b)
		return
	}

	b.With("Title", m.Title).
		With("Material", m).
		With("FileKind", string(material.KindOfFile(m.Content.File))).
		With("Embed", material.YouTubeEmbedURL(m.Content.YouTube))
	if m.Type != material.TypeExam {
		h.renderPage(w, r, b.Build())
		return
	}

	tab := material.ParseTab(r.URL.Query().Get("tab"))
	base := "/materials/" + url.PathEscape(id)
	b.With("CurrentPage", "exam-detail").
		With("Tab", string(tab)).
		With("Tabs", viewmodel.TabLinks(base, tab)).
		With("Resources", viewmodel.ResourceLinks(m)).
		With("Community", viewmodel.CommunityLinks(m))
	if HXTarget(r) == examTabsTarget {
		HTMX(w).PushURL(base + "?tab=" + url.QueryEscape(string(tab)))
		h.renderFragment(w, r, examTabsTarget, b.Build())
		return
	}
	h.renderPage(w, r, b.Build())
}
