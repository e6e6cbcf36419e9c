package service

import (
	"context"
	"fmt"
	"log/slog"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/ports"
)

// AdminJobServiceOptions groups dependencies for AdminJobService.
type AdminJobServiceOptions struct {
	API    ports.AdminJobsAPI
	Logger *slog.Logger // optional
}

// AdminJobService backs the admin job dashboard.
type AdminJobService struct {
	api    ports.AdminJobsAPI
	logger *slog.Logger
}

// NewAdminJobService constructs a new AdminJobService.
func NewAdminJobService(opts AdminJobServiceOptions) *AdminJobService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminJobService{api: opts.API, logger: logger.With("component", "admin_job_service")}
}

// List returns every job, pinned first and then newest first.
func (s *AdminJobService) List(ctx context.Context, sess domainauth.Session) ([]job.Job, error) {
	jobs, err := s.api.List(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}
	job.SortForAdmin(jobs)
	return jobs, nil
}

// Get returns one job.
func (s *AdminJobService) Get(ctx context.Context, sess domainauth.Session, id string) (job.Job, error) {
	j, err := s.api.Get(ctx, sess, id)
	if err != nil {
		return job.Job{}, fmt.Errorf("fetch job: %w", err)
	}
	return j, nil
}

// Create validates in and posts it. Field messages are returned as a wrapped
// validation.Errors without contacting the API.
func (s *AdminJobService) Create(ctx context.Context, sess domainauth.Session, in job.Input) (job.Job, error) {
	if err := validateInput(&in); err != nil {
		return job.Job{}, err
	}
	created, err := s.api.Create(ctx, sess, in)
	if err != nil {
		return job.Job{}, fmt.Errorf("create job: %w", err)
	}
	s.logger.InfoContext(ctx, "job created", "job_id", created.ID, "user_id", sess.UserID)
	return created, nil
}

// Update validates in and replaces the job's fields.
func (s *AdminJobService) Update(ctx context.Context, sess domainauth.Session, id string, in job.Input) (job.Job, error) {
	if err := validateInput(&in); err != nil {
		return job.Job{}, err
	}
	updated, err := s.api.Update(ctx, sess, id, in)
	if err != nil {
		return job.Job{}, fmt.Errorf("update job: %w", err)
	}
	return updated, nil
}

// Delete removes a job. Callers reach it only from the confirmation dialog.
func (s *AdminJobService) Delete(ctx context.Context, sess domainauth.Session, id string) error {
	if err := s.api.Delete(ctx, sess, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	s.logger.InfoContext(ctx, "job deleted", "job_id", id, "user_id", sess.UserID)
	return nil
}

// TogglePin flips the pinned flag. prior is the value the page showed; on
// failure the returned toggle is failed and the page keeps prior.
func (s *AdminJobService) TogglePin(ctx context.Context, sess domainauth.Session, id string, prior bool) (job.Toggle, error) {
	pinned, err := s.api.TogglePin(ctx, sess, id)
	if err != nil {
		return job.Toggle{ID: id, Prior: prior, State: job.ToggleFailed}, fmt.Errorf("toggle pin: %w", err)
	}
	// The API reports the resulting value; trust it over the page's view.
	return job.Toggle{ID: id, Prior: !pinned, State: job.ToggleCommitted}, nil
}

func validateInput(in *job.Input) error {
	if verrs := in.Validate(); len(verrs) > 0 {
		return apperrors.Wrap(verrs, apperrors.ErrCodeValidation, "invalid job")
	}
	return nil
}
