package apiclient

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/ports"
)

var _ ports.JobsAPI = (*Jobs)(nil)

// Jobs is the user-facing job board surface.
type Jobs struct {
	c *Client
}

// Jobs returns the job board surface of c.
func (c *Client) Jobs() *Jobs { return &Jobs{c: c} }

type userRef struct {
	UserID string `json:"user_id,omitempty"`
}

// Overview lists jobs with the given status.
func (j *Jobs) Overview(ctx context.Context, sess domainauth.Session, status job.StatusFilter) ([]job.Job, error) {
	q := url.Values{"status": {string(status)}}
	var out []job.Job
	err := j.c.doList(ctx, sess, call{
		method: http.MethodGet,
		url:    j.c.endpoint(q, "api", "users", "jobs-overview"),
		op:     "fetch jobs",
	}, &out)
	return out, err
}

// Get fetches one job.
func (j *Jobs) Get(ctx context.Context, sess domainauth.Session, id string) (job.Job, error) {
	var q url.Values
	if sess.UserID != "" {
		q = url.Values{"user_id": {sess.UserID}}
	}
	var out job.Job
	err := j.c.doJSON(ctx, sess, call{
		method: http.MethodGet,
		url:    j.c.endpoint(q, "api", "users", "jobs", id),
		op:     "fetch job",
	}, &out)
	return out, err
}

// Save bookmarks a job for the session's user.
func (j *Jobs) Save(ctx context.Context, sess domainauth.Session, id string) error {
	return j.post(ctx, sess, id, "save", "save job")
}

// Unsave removes a bookmark.
func (j *Jobs) Unsave(ctx context.Context, sess domainauth.Session, id string) error {
	return j.post(ctx, sess, id, "unsave", "unsave job")
}

// RecordView increments the job's view counter.
func (j *Jobs) RecordView(ctx context.Context, sess domainauth.Session, id string) error {
	return j.post(ctx, sess, id, "view", "record job view")
}

func (j *Jobs) post(ctx context.Context, sess domainauth.Session, id, action, op string) error {
	req, err := jsonCall(http.MethodPost, j.c.endpoint(nil, "api", "users", "jobs", id, action), op,
		userRef{UserID: sess.UserID})
	if err != nil {
		return err
	}
	return j.c.doJSON(ctx, sess, req, nil)
}

// Saved lists the session user's bookmarked jobs.
func (j *Jobs) Saved(ctx context.Context, sess domainauth.Session) ([]job.Job, error) {
	var out []job.Job
	err := j.c.doList(ctx, sess, call{
		method: http.MethodGet,
		url:    j.c.endpoint(nil, "api", "users", "saved-jobs", sess.UserID),
		op:     "fetch saved jobs",
	}, &out)
	return out, err
}
