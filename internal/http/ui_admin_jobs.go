package httpx

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/http/ui/viewmodel"
)

const (
	msgSaveJob          = "Failed to save job."
	msgDeleteJob        = "Failed to delete job."
	msgTogglePin        = "Failed to update pin status."
	msgConfirmDeleteJob = "Are you sure you want to delete this job?"
	adminJobsTable      = "admin-jobs-table"
	adminJobsPath       = "/admin/jobs"
)

// FormMode distinguishes create from edit renders of a form.
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

func adminJobsMeta() PageMeta {
	return PageMeta{Title: "Manage Jobs", CurrentPage: "admin-jobs"}
}

func adminJobFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "Edit Job", CurrentPage: "admin-job-form"}
	}
	return PageMeta{Title: "New Job", CurrentPage: "admin-job-form"}
}

// AdminJobsList renders the job table, pinned first. Requests targeting only
// the table get the table fragment.
func (h *UIHandlers) AdminJobsList(w http.ResponseWriter, r *http.Request) {
	b := h.newPage(r, adminJobsMeta())
	jobs, err := h.AdminJobs.List(r.Context(), session(r))
	if err != nil {
		if HXTarget(r) == adminJobsTable {
			h.failAction(w, r, err, msgFetchJobs, adminJobsPath)
			return
		}
		h.failPage(w, r, err, msgFetchJobs, b.With("Jobs", []viewmodel.JobCard{}))
		return
	}
	b.With("Jobs", viewmodel.JobCards(jobs, nil))
	if HXTarget(r) == adminJobsTable {
		h.renderFragment(w, r, adminJobsTable, b.Build())
		return
	}
	h.renderPage(w, r, b.Build())
}

// AdminJobNew renders an empty job form.
func (h *UIHandlers) AdminJobNew(w http.ResponseWriter, r *http.Request) {
	h.renderJobForm(w, r, jobForm{Mode: FormModeCreate, Input: job.Input{WorkType: job.WorkTypeRemote}})
}

// AdminJobEdit renders the form pre-filled with the job.
func (h *UIHandlers) AdminJobEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	j, err := h.AdminJobs.Get(r.Context(), session(r), id)
	if err != nil {
		h.failPage(w, r, err, "Failed to load job.", h.newPage(r, adminJobsMeta()).With("Jobs", []viewmodel.JobCard{}))
		return
	}
	h.renderJobForm(w, r, jobForm{Mode: FormModeEdit, ID: id, Input: job.InputFromJob(j)})
}

// AdminJobCreate validates and creates a job.
func (h *UIHandlers) AdminJobCreate(w http.ResponseWriter, r *http.Request) {
	h.submitJob(w, r, "")
}

// AdminJobUpdate validates and updates a job.
func (h *UIHandlers) AdminJobUpdate(w http.ResponseWriter, r *http.Request) {
	h.submitJob(w, r, r.PathValue("id"))
}

func (h *UIHandlers) submitJob(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	in := parseJobInput(r)
	form := jobForm{Mode: FormModeCreate, ID: id, Input: in}
	var err error
	if id == "" {
		_, err = h.AdminJobs.Create(r.Context(), session(r), in)
	} else {
		form.Mode = FormModeEdit
		_, err = h.AdminJobs.Update(r.Context(), session(r), id, in)
	}
	if err != nil {
		if h.handled(w, r, err) {
			return
		}
		h.logger().InfoContext(r.Context(), "job form rejected", "job_id", id, "error", err)
		form.Errors = fieldErrors(err)
		form.Notice = noticeFor(err, msgSaveJob)
		h.renderJobForm(w, r, form)
		return
	}

	msg := "Job created successfully."
	if id != "" {
		msg = "Job updated successfully."
	}
	h.finishForm(w, r, msg, adminJobsPath)
}

type jobForm struct {
	Mode   FormMode
	ID     string
	Input  job.Input
	Errors map[string]string
	Notice *viewmodel.Notice
}

func (h *UIHandlers) renderJobForm(w http.ResponseWriter, r *http.Request, f jobForm) {
	action := adminJobsPath
	if f.Mode == FormModeEdit {
		action = adminJobsPath + "/" + url.PathEscape(f.ID)
	}
	workTypes := make([]viewmodel.Option, 0, 3)
	for _, wt := range job.WorkTypes() {
		workTypes = append(workTypes, viewmodel.Option{Value: string(wt), Label: string(wt), Selected: wt == f.Input.WorkType})
	}
	data := h.newPage(r, adminJobFormMeta(f.Mode)).
		With("Mode", string(f.Mode)).
		With("Action", action).
		With("Input", f.Input).
		With("WorkTypes", workTypes).
		WithFieldErrors(f.Errors).
		WithNotice(f.Notice).
		Build()
	h.renderPage(w, r, data)
}

// finishForm runs the success path of a form: notify, then close by
// navigating back to the table.
func (h *UIHandlers) finishForm(w http.ResponseWriter, r *http.Request, message, back string) {
	if IsHTMX(r) {
		HTMX(w).Toast(message, "success").Redirect(back)
		return
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// AdminJobConfirmDelete renders the delete confirmation. The DELETE request
// is only ever issued from this dialog.
func (h *UIHandlers) AdminJobConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.renderConfirm(w, r, confirmDialog{
		Title:     "Delete job",
		Message:   msgConfirmDeleteJob,
		DeleteURL: adminJobsPath + "/" + url.PathEscape(id),
		CancelURL: adminJobsPath,
		Target:    "#" + adminJobsTable,
	})
}

// AdminJobDelete deletes the job and answers with the re-fetched table.
func (h *UIHandlers) AdminJobDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.AdminJobs.Delete(r.Context(), session(r), id); err != nil {
		h.failAction(w, r, err, msgDeleteJob, adminJobsPath)
		return
	}
	HTMX(w).Toast("Job deleted successfully.", "success")
	if !IsHTMX(r) {
		http.Redirect(w, r, adminJobsPath, http.StatusSeeOther)
		return
	}
	jobs, err := h.AdminJobs.List(r.Context(), session(r))
	if err != nil {
		// The delete went through; make the browser reload the table on its own.
		HTMX(w).Redirect(adminJobsPath)
		return
	}
	data := h.newPage(r, adminJobsMeta()).
		With("Jobs", viewmodel.JobCards(jobs, nil)).
		With("CloseModal", true).
		Build()
	HTMX(w).Retarget("#" + adminJobsTable)
	h.renderFragment(w, r, adminJobsTable, data)
}

// AdminJobTogglePin flips the pinned flag. The form carries the state the page showed.
func (h *UIHandlers) AdminJobTogglePin(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	prior, _ := strconv.ParseBool(r.PostFormValue("pinned"))
	t, err := h.AdminJobs.TogglePin(r.Context(), session(r), id, prior)
	if err != nil {
		if h.handled(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "toggle pin failed", "job_id", id, "error", err)
		HTMX(w).Toast(noticeFor(err, msgTogglePin).Message, "error")
	} else {
		msg := "Job unpinned."
		if t.Current() {
			msg = "Job pinned."
		}
		HTMX(w).Toast(msg, "success").Trigger(eventJobsChanged, nil)
	}
	if !IsHTMX(r) {
		http.Redirect(w, r, adminJobsPath, http.StatusSeeOther)
		return
	}
	h.renderFragment(w, r, "pin-button", viewmodel.Toggle{ID: id, On: t.Current(), Failed: err != nil})
}

// confirmDialog is the shared delete confirmation.
type confirmDialog struct {
	Title     string
	Message   string
	DeleteURL string
	CancelURL string
	Target    string
	CSRFToken string
}

func (h *UIHandlers) renderConfirm(w http.ResponseWriter, r *http.Request, d confirmDialog) {
	d.CSRFToken = GetCSRFToken(r)
	if IsHTMX(r) {
		h.renderFragment(w, r, "confirm-dialog", d)
		return
	}
	data := h.newPage(r, PageMeta{Title: d.Title, CurrentPage: "confirm"}).With("Dialog", d).Build()
	h.renderPage(w, r, data)
}
