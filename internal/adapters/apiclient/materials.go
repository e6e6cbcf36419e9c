package apiclient

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/material"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/ports"
)

var _ ports.MaterialsAPI = (*Materials)(nil)

// Materials is the study-material surface.
type Materials struct {
	c *Client
}

// Materials returns the study-material surface of c.
func (c *Client) Materials() *Materials { return &Materials{c: c} }

// List returns materials matching q.
func (m *Materials) List(ctx context.Context, sess domainauth.Session, q material.Query) ([]material.StudyMaterial, error) {
	params := url.Values{}
	if q.Type != "" {
		params.Set("type", string(q.Type))
	}
	if q.Category != "" {
		params.Set("category", string(q.Category))
	}
	var out []material.StudyMaterial
	err := m.c.doList(ctx, sess, call{
		method: http.MethodGet,
		url:    m.c.endpoint(params, "api", "users", "study-materials"),
		op:     "fetch study materials",
	}, &out)
	return out, err
}

// AdminList returns every material for the admin table.
func (m *Materials) AdminList(ctx context.Context, sess domainauth.Session) ([]material.StudyMaterial, error) {
	var out []material.StudyMaterial
	err := m.c.doList(ctx, sess, call{
		method: http.MethodGet,
		url:    m.c.endpoint(nil, "api", "users", "admin", "study-materials"),
		op:     "fetch study materials",
	}, &out)
	return out, err
}

// Get fetches one material.
func (m *Materials) Get(ctx context.Context, sess domainauth.Session, id string) (material.StudyMaterial, error) {
	var out material.StudyMaterial
	err := m.c.doJSON(ctx, sess, call{
		method: http.MethodGet,
		url:    m.c.endpoint(nil, "api", "users", "study-materials", id),
		op:     "fetch study material",
	}, &out)
	return out, err
}

// Create uploads a new material.
func (m *Materials) Create(ctx context.Context, sess domainauth.Session, env material.Envelope) (material.StudyMaterial, error) {
	return m.send(ctx, sess, http.MethodPost, m.c.endpoint(nil, "api", "users", "study-materials", "add"), "add study material", env)
}

// Update replaces a material. The stored file is kept unless env carries one.
func (m *Materials) Update(ctx context.Context, sess domainauth.Session, id string, env material.Envelope) (material.StudyMaterial, error) {
	return m.send(ctx, sess, http.MethodPut, m.c.endpoint(nil, "api", "users", "study-materials", id), "update study material", env)
}

func (m *Materials) send(ctx context.Context, sess domainauth.Session, method, endpoint, op string, env material.Envelope) (material.StudyMaterial, error) {
	body, contentType, err := env.Encode()
	if err != nil {
		return material.StudyMaterial{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, op)
	}
	var out material.StudyMaterial
	err = m.c.doJSON(ctx, sess, call{
		method:      method,
		url:         endpoint,
		body:        body,
		contentType: contentType,
		op:          op,
	}, &out)
	return out, err
}

// Delete removes a material.
func (m *Materials) Delete(ctx context.Context, sess domainauth.Session, id string) error {
	return m.c.doJSON(ctx, sess, call{
		method: http.MethodDelete,
		url:    m.c.endpoint(nil, "api", "users", "study-materials", id),
		op:     "delete study material",
	}, nil)
}
