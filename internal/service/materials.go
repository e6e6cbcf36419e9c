package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/material"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/ports"
)

// MaterialServiceOptions groups dependencies for MaterialService.
type MaterialServiceOptions struct {
	API    ports.MaterialsAPI
	Guard  ports.FormGuard
	Logger *slog.Logger // optional
}

// MaterialService backs study-material browsing and the admin table.
type MaterialService struct {
	api    ports.MaterialsAPI
	guard  ports.FormGuard
	logger *slog.Logger
}

// NewMaterialService constructs a new MaterialService.
func NewMaterialService(opts MaterialServiceOptions) *MaterialService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MaterialService{
		api:    opts.API,
		guard:  opts.Guard,
		logger: logger.With("component", "material_service"),
	}
}

// List returns materials matching q. An empty category lists the whole type.
func (s *MaterialService) List(ctx context.Context, sess domainauth.Session, q material.Query) ([]material.StudyMaterial, error) {
	if q.Category != "" && q.Type != "" && !q.Type.Allows(q.Category) {
		return nil, apperrors.Validationf("category %q does not apply to %s materials", q.Category, q.Type)
	}
	items, err := s.api.List(ctx, sess, q)
	if err != nil {
		return nil, fmt.Errorf("fetch study materials: %w", err)
	}
	return items, nil
}

// AdminList returns every material for the admin table.
func (s *MaterialService) AdminList(ctx context.Context, sess domainauth.Session) ([]material.StudyMaterial, error) {
	items, err := s.api.AdminList(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("fetch study materials: %w", err)
	}
	return items, nil
}

// Get returns one material.
func (s *MaterialService) Get(ctx context.Context, sess domainauth.Session, id string) (material.StudyMaterial, error) {
	m, err := s.api.Get(ctx, sess, id)
	if err != nil {
		return material.StudyMaterial{}, fmt.Errorf("fetch study material: %w", err)
	}
	return m, nil
}

// Submission is one submit of the admin material form.
type Submission struct {
	// Token identifies the form instance; repeated submits of the same
	// instance are rejected while one is pending or after one succeeded.
	Token string
	// ID is empty for create.
	ID    string
	Draft material.Draft
	// File is nil to keep the stored file.
	File *material.Upload
}

// Submit validates the draft and creates or updates the material through the
// shared envelope. The form guard moves the token to closed on success and
// back to editable on any failure after it was claimed.
func (s *MaterialService) Submit(ctx context.Context, sess domainauth.Session, sub Submission) (material.StudyMaterial, error) {
	if verrs := sub.Draft.Validate(); len(verrs) > 0 {
		return material.StudyMaterial{}, apperrors.Wrap(verrs, apperrors.ErrCodeValidation, "invalid study material")
	}

	if err := s.guard.Begin(ctx, sub.Token); err != nil {
		if errors.Is(err, material.ErrSubmitInFlight) || errors.Is(err, material.ErrFormClosed) {
			return material.StudyMaterial{}, apperrors.Wrap(err, apperrors.ErrCodeConflict, "duplicate submit")
		}
		return material.StudyMaterial{}, fmt.Errorf("claim form: %w", err)
	}

	saved, err := s.send(ctx, sess, sub)
	if finishErr := s.guard.Finish(context.WithoutCancel(ctx), sub.Token, err == nil); finishErr != nil {
		s.logger.WarnContext(ctx, "release form guard failed", "error", finishErr)
	}
	return saved, err
}

func (s *MaterialService) send(ctx context.Context, sess domainauth.Session, sub Submission) (material.StudyMaterial, error) {
	env, err := material.NewEnvelope(sub.Draft, sub.File)
	if err != nil {
		return material.StudyMaterial{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode study material")
	}
	if sub.ID == "" {
		created, err := s.api.Create(ctx, sess, env)
		if err != nil {
			return material.StudyMaterial{}, fmt.Errorf("create study material: %w", err)
		}
		s.logger.InfoContext(ctx, "study material created", "material_id", created.ID, "with_file", env.HasFile())
		return created, nil
	}
	updated, err := s.api.Update(ctx, sess, sub.ID, env)
	if err != nil {
		return material.StudyMaterial{}, fmt.Errorf("update study material: %w", err)
	}
	return updated, nil
}

// Delete removes a material.
func (s *MaterialService) Delete(ctx context.Context, sess domainauth.Session, id string) error {
	if err := s.api.Delete(ctx, sess, id); err != nil {
		return fmt.Errorf("delete study material: %w", err)
	}
	return nil
}
