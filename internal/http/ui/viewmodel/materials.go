package viewmodel

import (
	"net/url"

	"github.com/careerhub/portal/internal/domain/material"
)

// CategoryCard links to the materials of one category.
type CategoryCard struct {
	Category material.Category
	Label    string
	URL      string
}

// TabLink is one entry of the exam viewer's tab strip.
type TabLink struct {
	Tab    material.Tab
	Label  string
	URL    string
	Active bool
}

// TabLinks builds the tab strip for the material at basePath with active selected.
func TabLinks(basePath string, active material.Tab) []TabLink {
	tabs := material.Tabs()
	out := make([]TabLink, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, TabLink{
			Tab:    t,
			Label:  t.Label(),
			URL:    basePath + "?" + url.Values{"tab": {string(t)}}.Encode(),
			Active: t == active,
		})
	}
	return out
}

// Link is an outbound link with its registrable domain for display.
type Link struct {
	Label string
	URL   string
}

// ResourceLinks lists the non-empty resource links of m in display order.
func ResourceLinks(m material.StudyMaterial) []Link {
	return nonEmpty(
		Link{"Mock Tests", m.Resources.MockTests},
		Link{"Study Materials", m.Resources.StudyMaterials},
		Link{"Previous Year Papers", m.Resources.PreviousYearPapers},
	)
}

// CommunityLinks lists the non-empty community links of m in display order.
func CommunityLinks(m material.StudyMaterial) []Link {
	return nonEmpty(
		Link{"Discussion Forum", m.Community.Forum},
		Link{"Ask Doubts", m.Community.Doubts},
		Link{"Feedback", m.Community.Feedback},
	)
}

func nonEmpty(links ...Link) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}
