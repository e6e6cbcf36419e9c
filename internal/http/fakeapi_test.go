package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/domain/material"
)

// fakeAPI is an in-memory stand-in for the remote REST API. It records every
// request as "METHOD /path" so tests can assert on upstream traffic.
type fakeAPI struct {
	srv *httptest.Server

	mu        sync.Mutex
	jobs      []job.Job
	materials []material.StudyMaterial
	saved     map[string]bool
	calls     []string
	// uploads holds the data part and file name of each material create or update.
	uploads []fakeUpload
	nextID  int
	// fail maps "METHOD /path" to a status the fake answers with instead.
	fail map[string]int
	// gates hold the overview for a status until the channel is closed;
	// entered is signalled when a gated request arrives.
	gates   map[string]chan struct{}
	entered chan string
}

type fakeUpload struct {
	Draft    material.Draft
	Filename string
	FileData string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{
		saved:   map[string]bool{},
		fail:    map[string]int{},
		gates:   map[string]chan struct{}{},
		entered: make(chan string, 4),
		nextID:  100,
		jobs: []job.Job{
			{ID: "1", Title: "Backend Engineer", CompanyName: "Acme", RequiredSkills: "Go, SQL", JobLocation: "Pune", WorkType: job.WorkTypeRemote, Status: job.StatusLive, CreatedAt: "2026-10-01T09:00:00Z"},
			{ID: "2", Title: "Frontend Developer", CompanyName: "Globex", RequiredSkills: "HTMX, CSS", JobLocation: "Delhi", WorkType: job.WorkTypeHybrid, Status: job.StatusLive, Pinned: true, CreatedAt: "2026-09-20T09:00:00Z"},
			{ID: "3", Title: "Data Analyst", CompanyName: "Initech", RequiredSkills: "Excel", JobLocation: "Mumbai", WorkType: job.WorkTypeOnSite, Status: job.StatusExpired, CreatedAt: "2026-08-01T09:00:00Z"},
		},
		materials: []material.StudyMaterial{
			{ID: "m1", Title: "Aptitude Basics", Type: material.TypeJob, Category: material.CategoryMNC, Content: material.Content{Text: "<p>Numbers and <b>ratios</b></p>"}},
			{ID: "m2", Title: "State Services Guide", Type: material.TypeJob, Category: material.CategoryState},
			{
				ID: "e1", Title: "National Entrance Test", Type: material.TypeExam, Category: material.CategoryEntrance,
				ConductingBody: "Testing Agency",
				Pattern:        material.Pattern{QuestionCount: "180"},
				Dates:          []material.DateEntry{{Event: "Exam Date", Date: "2027-05-04"}},
				Resources:      material.Resources{MockTests: "https://mock.example.co.uk/tests"},
				FAQs:           []material.FAQ{{Question: "Is there negative marking?", Answer: "Yes"}},
				Syllabus:       material.Syllabus{Subjects: []material.Subject{{Name: "Physics", Topics: "Mechanics"}}},
			},
			{ID: "e2", Title: "Civil Services Prelims", Type: material.TypeExam, Category: material.CategoryCompetitive},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/jobs-overview/{$}", f.overview)
	mux.HandleFunc("GET /api/users/jobs/{id}/{$}", f.getJob)
	mux.HandleFunc("POST /api/users/jobs/{id}/{action}/{$}", f.jobAction)
	mux.HandleFunc("GET /api/users/saved-jobs/{user}/{$}", f.savedJobs)
	mux.HandleFunc("GET /api/admin/jobs-api/{$}", f.adminListJobs)
	mux.HandleFunc("POST /api/admin/jobs-api/{$}", f.adminCreateJob)
	mux.HandleFunc("GET /api/admin/jobs-api/{id}/{$}", f.getJob)
	mux.HandleFunc("PUT /api/admin/jobs-api/{id}/{$}", f.adminUpdateJob)
	mux.HandleFunc("DELETE /api/admin/jobs-api/{id}/{$}", f.adminDeleteJob)
	mux.HandleFunc("POST /api/admin/jobs/{id}/toggle-pin/{$}", f.togglePin)
	mux.HandleFunc("GET /api/users/study-materials/{$}", f.listMaterials)
	mux.HandleFunc("GET /api/users/admin/study-materials/{$}", f.adminListMaterials)
	mux.HandleFunc("GET /api/users/study-materials/{id}/{$}", f.getMaterial)
	mux.HandleFunc("POST /api/users/study-materials/add/{$}", f.createMaterial)
	mux.HandleFunc("PUT /api/users/study-materials/{id}/{$}", f.updateMaterial)
	mux.HandleFunc("DELETE /api/users/study-materials/{id}/{$}", f.deleteMaterial)

	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := r.Method + " " + r.URL.Path
		f.mu.Lock()
		f.calls = append(f.calls, call)
		status := f.fail[call]
		f.mu.Unlock()
		if status != 0 {
			writeJSON(w, status, map[string]string{"detail": "upstream refused"})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// Calls returns a copy of the recorded requests.
func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// Called reports whether call was recorded.
func (f *fakeAPI) Called(call string) bool {
	return slices.Contains(f.Calls(), call)
}

func (f *fakeAPI) failWith(call string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[call] = status
}

// gate holds overview requests for status until the returned func is called.
func (f *fakeAPI) gate(status string) (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.gates[status] = ch
	f.mu.Unlock()
	return func() { close(ch) }
}

func (f *fakeAPI) jobByID(id string) (job.Job, bool) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return job.Job{}, false
}

func (f *fakeAPI) overview(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	f.mu.Lock()
	gate := f.gates[status]
	f.mu.Unlock()
	if gate != nil {
		f.entered <- status
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := []job.Job{}
	for _, j := range f.jobs {
		if status == "all" || string(j.Status) == status {
			out = append(out, j)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": out})
}

func (f *fakeAPI) getJob(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobByID(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (f *fakeAPI) jobAction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.PathValue("action") {
	case "save":
		f.saved[id] = true
	case "unsave":
		delete(f.saved, id)
	case "view":
		for i := range f.jobs {
			if f.jobs[i].ID == id {
				f.jobs[i].Views++
			}
		}
	default:
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}

func (f *fakeAPI) savedJobs(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []job.Job{}
	for _, j := range f.jobs {
		if f.saved[j.ID] {
			out = append(out, j)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) adminListJobs(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.jobs)
}

func (f *fakeAPI) adminCreateJob(w http.ResponseWriter, r *http.Request) {
	var in job.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	j := jobFromInput(strconv.Itoa(f.nextID), in)
	f.jobs = append(f.jobs, j)
	writeJSON(w, http.StatusCreated, j)
}

func (f *fakeAPI) adminUpdateJob(w http.ResponseWriter, r *http.Request) {
	var in job.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	id := r.PathValue("id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			f.jobs[i] = jobFromInput(id, in)
			writeJSON(w, http.StatusOK, f.jobs[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func jobFromInput(id string, in job.Input) job.Job {
	return job.Job{
		ID:                  id,
		Title:               in.Title,
		CompanyName:         in.CompanyName,
		RoleSummary:         in.RoleSummary,
		RequiredSkills:      in.RequiredSkills,
		JobLocation:         in.JobLocation,
		WorkType:            in.WorkType,
		ApplicationDeadline: in.ApplicationDeadline,
		ContactEmail:        in.ContactEmail,
		Status:              job.StatusLive,
	}
}

func (f *fakeAPI) adminDeleteJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = slices.DeleteFunc(f.jobs, func(j job.Job) bool { return j.ID == id })
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) togglePin(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			f.jobs[i].Pinned = !f.jobs[i].Pinned
			writeJSON(w, http.StatusOK, map[string]bool{"pinned": f.jobs[i].Pinned})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (f *fakeAPI) listMaterials(w http.ResponseWriter, r *http.Request) {
	typ, cat := r.URL.Query().Get("type"), r.URL.Query().Get("category")
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []material.StudyMaterial{}
	for _, m := range f.materials {
		if (typ == "" || string(m.Type) == typ) && (cat == "" || string(m.Category) == cat) {
			out = append(out, m)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) adminListMaterials(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": f.materials})
}

func (f *fakeAPI) getMaterial(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.materials {
		if m.ID == id {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

// readEnvelope decodes the multipart body the client sends for create and update.
func readEnvelope(r *http.Request) (fakeUpload, error) {
	var up fakeUpload
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		return up, err
	}
	if err := json.Unmarshal([]byte(r.FormValue(material.PartData)), &up.Draft); err != nil {
		return up, err
	}
	if fhs := r.MultipartForm.File[material.PartFile]; len(fhs) > 0 {
		up.Filename = fhs[0].Filename
		file, err := fhs[0].Open()
		if err != nil {
			return up, err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return up, err
		}
		up.FileData = string(data)
	}
	return up, nil
}

func materialFromDraft(id string, d material.Draft) material.StudyMaterial {
	return material.StudyMaterial{
		ID: id, Title: d.Title, Type: d.Type, Category: d.Category,
		ConductingBody: d.ConductingBody, ExamType: d.ExamType,
		Eligibility: d.Eligibility, Pattern: d.Pattern, Dates: d.Dates,
		Content: d.Content, Resources: d.Resources, Community: d.Community,
		FAQs: d.FAQs, Syllabus: d.Syllabus,
	}
}

func (f *fakeAPI) createMaterial(w http.ResponseWriter, r *http.Request) {
	up, err := readEnvelope(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, up)
	f.nextID++
	m := materialFromDraft("m"+strconv.Itoa(f.nextID), up.Draft)
	f.materials = append(f.materials, m)
	writeJSON(w, http.StatusCreated, m)
}

func (f *fakeAPI) updateMaterial(w http.ResponseWriter, r *http.Request) {
	up, err := readEnvelope(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	id := r.PathValue("id")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, up)
	for i := range f.materials {
		if f.materials[i].ID == id {
			f.materials[i] = materialFromDraft(id, up.Draft)
			writeJSON(w, http.StatusOK, f.materials[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (f *fakeAPI) deleteMaterial(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.materials = slices.DeleteFunc(f.materials, func(m material.StudyMaterial) bool { return m.ID == id })
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) Uploads() []fakeUpload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.uploads)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
