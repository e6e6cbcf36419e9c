package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/http/ui/viewmodel"
	"github.com/careerhub/portal/internal/service"
)

const (
	msgFetchJobs   = "Failed to fetch jobs. Please try again later."
	msgFetchJob    = "Failed to load job details."
	msgToggleSaved = "Failed to update saved jobs."
	viewJobsFeed   = "jobs-feed"
	// feedViewParam carries the id of one rendered dashboard, so polls from
	// different tabs of a session do not overtake each other.
	feedViewParam = "view"
)

var statusOptions = []struct {
	Value job.StatusFilter
	Label string
}{
	{job.FilterLive, "Live"},
	{job.FilterExpired, "Expired"},
	{job.FilterAll, "All"},
}

// feedQuery reads the dashboard filters from the query string.
func (h *UIHandlers) feedQuery(q url.Values) service.FeedQuery {
	size := h.JobsPageSize
	if size <= 0 {
		size = service.DefaultPageSize
	}
	return service.FeedQuery{
		Filter: job.Filter{
			Query:    q.Get("q"),
			Category: strings.TrimSpace(q.Get("category")),
		},
		Status:   job.ParseStatusFilter(q.Get("status")),
		Page:     getPageParam(q),
		PageSize: getPageSizeParam(q, size),
	}
}

func jobsMeta() PageMeta {
	return PageMeta{Title: "Jobs", PageTitle: "Job Board", CurrentPage: "jobs"}
}

// feedData fills the list fields shared by the dashboard and the feed fragment.
func (h *UIHandlers) feedData(b *TemplateDataBuilder, fq service.FeedQuery, feed *service.Feed) *TemplateDataBuilder {
	categories := make([]viewmodel.Option, 0, len(feed.Categories)+1)
	categories = append(categories, viewmodel.Option{Value: "", Label: "All companies", Selected: fq.Filter.Category == ""})
	for _, c := range feed.Categories {
		categories = append(categories, viewmodel.Option{Value: c, Label: c, Selected: c == fq.Filter.Category})
	}
	statuses := make([]viewmodel.Option, 0, len(statusOptions))
	for _, s := range statusOptions {
		statuses = append(statuses, viewmodel.Option{Value: string(s.Value), Label: s.Label, Selected: s.Value == fq.Status})
	}
	return b.
		With("Jobs", viewmodel.JobCards(feed.Jobs, feed.Saved.Has)).
		With("Query", fq.Filter.Query).
		With("Categories", categories).
		With("Statuses", statuses).
		With("Filtered", !fq.Filter.IsZero()).
		With("RefreshSeconds", h.refreshSeconds()).
		With("FeedURL", feedURL(b.r.URL.Query())).
		WithPagination(feed.Page, "/jobs")
}

// JobsDashboard renders the job board with filters and the polled list.
func (h *UIHandlers) JobsDashboard(w http.ResponseWriter, r *http.Request) {
	fq := h.feedQuery(r.URL.Query())
	b := h.newPage(r, jobsMeta()).With("ViewID", uuid.NewString())

	feed, err := h.Jobs.Feed(r.Context(), session(r), fq)
	if err != nil {
		h.feedData(b, fq, &service.Feed{Saved: job.NewSavedSet()})
		h.failPage(w, r, err, msgFetchJobs, b)
		return
	}
	h.renderPage(w, r, h.feedData(b, fq, feed).Build())
}

// JobsFeed renders only the list for polling and filter changes. A response
// overtaken by a newer request from the same dashboard is discarded.
func (h *UIHandlers) JobsFeed(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	viewID := feedViewID(r.URL.Query())
	key := service.GenerationKey(sess.ID, viewJobsFeed+"/"+viewID)
	gen := h.Generations.Next(key)

	fq := h.feedQuery(r.URL.Query())
	feed, err := h.Jobs.Feed(r.Context(), sess, fq)
	if !h.Generations.IsCurrent(key, gen) {
		HTMX(w).Discard()
		return
	}
	if err != nil {
		h.failAction(w, r, err, msgFetchJobs, "/jobs")
		return
	}
	HTMX(w).ReplaceURL(buildFeedURL(r.URL.Query()))
	if viewID == "" {
		viewID = uuid.NewString()
	}
	b := h.newPage(r, jobsMeta()).With("ViewID", viewID)
	h.renderFragment(w, r, "job-feed", h.feedData(b, fq, feed).Build())
}

// feedViewID returns the dashboard id sent with a feed request, or "" when it
// is missing or not a UUID.
func feedViewID(q url.Values) string {
	id, err := uuid.Parse(q.Get(feedViewParam))
	if err != nil {
		return ""
	}
	return id.String()
}

func (h *UIHandlers) refreshSeconds() int {
	if s := int(h.FeedRefresh.Seconds()); s > 0 {
		return s
	}
	return 30
}

// feedParams keeps the non-empty dashboard filters of q. The search text is
// kept verbatim since it is matched as typed.
func feedParams(q url.Values) url.Values {
	qq := url.Values{}
	if v := q.Get("q"); v != "" {
		qq.Set("q", v)
	}
	for _, k := range []string{"category", "status", "page", "page_size"} {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			qq.Set(k, v)
		}
	}
	return qq
}

// feedURL is the polling URL of the list for the filters in q.
func feedURL(q url.Values) string {
	qq := feedParams(q)
	if len(qq) == 0 {
		return "/jobs/feed"
	}
	return "/jobs/feed?" + qq.Encode()
}

// buildFeedURL is the dashboard URL matching the filters of a feed request.
func buildFeedURL(q url.Values) string {
	qq := feedParams(q)
	if len(qq) == 0 {
		return "/jobs"
	}
	return "/jobs?" + qq.Encode()
}

// JobDetail shows one job and records the view.
func (h *UIHandlers) JobDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b := h.newPage(r, PageMeta{Title: "Job", PageTitle: "Job Details", CurrentPage: "job-detail"})

	d, err := h.Jobs.Detail(r.Context(), session(r), id)
	if err != nil {
		h.failPage(w, r, err, msgFetchJob, b)
		return
	}
	h.renderPage(w, r, b.With("Title", d.Job.Title).With("Job", viewmodel.NewJobCard(d.Job, d.Saved)).Build())
}

// SavedJobs lists the user's bookmarked jobs.
func (h *UIHandlers) SavedJobs(w http.ResponseWriter, r *http.Request) {
	b := h.newPage(r, PageMeta{Title: "Saved Jobs", CurrentPage: "saved-jobs"})
	jobs, err := h.Jobs.SavedJobs(r.Context(), session(r))
	if err != nil {
		h.failPage(w, r, err, msgFetchJobs, b.With("Jobs", []viewmodel.JobCard{}))
		return
	}
	cards := viewmodel.JobCards(jobs, func(string) bool { return true })
	h.renderPage(w, r, b.With("Jobs", cards).Build())
}

// ToggleSave flips the saved flag and swaps the button. On failure the
// button keeps its prior state and an error toast is shown. The form carries
// the state the page showed.
func (h *UIHandlers) ToggleSave(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	shown, _ := strconv.ParseBool(r.PostFormValue("saved"))
	t, err := h.Jobs.ToggleSave(r.Context(), session(r), id, shown)
	if err != nil {
		if h.handled(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "toggle saved job failed", "job_id", id, "error", err)
		HTMX(w).Toast(noticeFor(err, msgToggleSaved).Message, "error")
	} else if t.State == job.ToggleCommitted {
		msg := "Job removed from saved jobs."
		if t.Current() {
			msg = "Job saved."
		}
		HTMX(w).Toast(msg, "success").Trigger(eventJobsChanged, nil)
	}
	if !IsHTMX(r) {
		http.Redirect(w, r, "/jobs/"+url.PathEscape(id), http.StatusSeeOther)
		return
	}
	h.renderFragment(w, r, "save-button", viewmodel.Toggle{ID: id, On: t.Current(), Failed: err != nil})
}
