package apiclient

import (
	"context"
	"net/http"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/ports"
)

var _ ports.AdminJobsAPI = (*AdminJobs)(nil)

// AdminJobs is the canonical admin CRUD surface under /api/admin/jobs-api/.
type AdminJobs struct {
	c *Client
}

// AdminJobs returns the admin job surface of c.
func (c *Client) AdminJobs() *AdminJobs { return &AdminJobs{c: c} }

func (a *AdminJobs) collection() string {
	return a.c.endpoint(nil, "api", "admin", "jobs-api")
}

func (a *AdminJobs) item(id string) string {
	return a.c.endpoint(nil, "api", "admin", "jobs-api", id)
}

// List returns every job regardless of status.
func (a *AdminJobs) List(ctx context.Context, sess domainauth.Session) ([]job.Job, error) {
	var out []job.Job
	err := a.c.doList(ctx, sess, call{method: http.MethodGet, url: a.collection(), op: "fetch jobs"}, &out)
	return out, err
}

// Get fetches one job.
func (a *AdminJobs) Get(ctx context.Context, sess domainauth.Session, id string) (job.Job, error) {
	var out job.Job
	err := a.c.doJSON(ctx, sess, call{method: http.MethodGet, url: a.item(id), op: "fetch job"}, &out)
	return out, err
}

// Create posts a new job.
func (a *AdminJobs) Create(ctx context.Context, sess domainauth.Session, in job.Input) (job.Job, error) {
	req, err := jsonCall(http.MethodPost, a.collection(), "create job", in)
	if err != nil {
		return job.Job{}, err
	}
	var out job.Job
	err = a.c.doJSON(ctx, sess, req, &out)
	return out, err
}

// Update replaces a job's fields.
func (a *AdminJobs) Update(ctx context.Context, sess domainauth.Session, id string, in job.Input) (job.Job, error) {
	req, err := jsonCall(http.MethodPut, a.item(id), "update job", in)
	if err != nil {
		return job.Job{}, err
	}
	var out job.Job
	err = a.c.doJSON(ctx, sess, req, &out)
	return out, err
}

// Delete removes a job.
func (a *AdminJobs) Delete(ctx context.Context, sess domainauth.Session, id string) error {
	return a.c.doJSON(ctx, sess, call{method: http.MethodDelete, url: a.item(id), op: "delete job"}, nil)
}

// TogglePin flips the job's pinned flag and returns the new value.
func (a *AdminJobs) TogglePin(ctx context.Context, sess domainauth.Session, id string) (bool, error) {
	var out struct {
		Pinned bool `json:"pinned"`
	}
	err := a.c.doJSON(ctx, sess, call{
		method: http.MethodPost,
		url:    a.c.endpoint(nil, "api", "admin", "jobs", id, "toggle-pin"),
		op:     "toggle pin",
	}, &out)
	return out.Pinned, err
}
