package ports

import (
	"context"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/domain/material"
)

// Every call takes the caller's session explicitly; its token authenticates
// the request and its user id scopes per-user resources.

// JobsAPI is the user-facing job board surface of the remote API.
type JobsAPI interface {
	Overview(ctx context.Context, sess domainauth.Session, status job.StatusFilter) ([]job.Job, error)
	Get(ctx context.Context, sess domainauth.Session, id string) (job.Job, error)
	Save(ctx context.Context, sess domainauth.Session, id string) error
	Unsave(ctx context.Context, sess domainauth.Session, id string) error
	RecordView(ctx context.Context, sess domainauth.Session, id string) error
	Saved(ctx context.Context, sess domainauth.Session) ([]job.Job, error)
}

// AdminJobsAPI is the canonical admin job surface.
type AdminJobsAPI interface {
	List(ctx context.Context, sess domainauth.Session) ([]job.Job, error)
	Get(ctx context.Context, sess domainauth.Session, id string) (job.Job, error)
	Create(ctx context.Context, sess domainauth.Session, in job.Input) (job.Job, error)
	Update(ctx context.Context, sess domainauth.Session, id string, in job.Input) (job.Job, error)
	Delete(ctx context.Context, sess domainauth.Session, id string) error
	TogglePin(ctx context.Context, sess domainauth.Session, id string) (bool, error)
}

// MaterialsAPI is the study-material surface of the remote API.
type MaterialsAPI interface {
	List(ctx context.Context, sess domainauth.Session, q material.Query) ([]material.StudyMaterial, error)
	AdminList(ctx context.Context, sess domainauth.Session) ([]material.StudyMaterial, error)
	Get(ctx context.Context, sess domainauth.Session, id string) (material.StudyMaterial, error)
	Create(ctx context.Context, sess domainauth.Session, env material.Envelope) (material.StudyMaterial, error)
	Update(ctx context.Context, sess domainauth.Session, id string, env material.Envelope) (material.StudyMaterial, error)
	Delete(ctx context.Context, sess domainauth.Session, id string) error
}

// FormGuard records the submit phase of a form instance so a double click
// cannot issue the same create or update twice.
type FormGuard interface {
	// Begin moves the form identified by token to submitting, failing with
	// material.ErrSubmitInFlight or material.ErrFormClosed when it may not submit.
	Begin(ctx context.Context, token string) error
	// Finish records the outcome: closed on success, back to editable on failure.
	Finish(ctx context.Context, token string, success bool) error
}
