package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/mocks"
	"github.com/careerhub/portal/internal/validation"
)

var adminSession = domainauth.Session{ID: "a1", UserID: "admin-1", Token: "atok", Role: domainauth.RoleAdmin}

func validInput() job.Input {
	return job.Input{Title: "Engineer", CompanyName: "Acme", JobLocation: "Remote", WorkType: job.WorkTypeRemote}
}

func TestAdminJobService_ListSortsPinnedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminJobsAPI(ctrl)
	api.EXPECT().List(gomock.Any(), adminSession).Return([]job.Job{
		{ID: "1", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "2", CreatedAt: "2024-02-01T00:00:00Z"},
		{ID: "3", Pinned: true, CreatedAt: "2023-01-01T00:00:00Z"},
	}, nil)

	svc := NewAdminJobService(AdminJobServiceOptions{API: api})
	jobs, err := svc.List(context.Background(), adminSession)
	require.NoError(t, err)
	ids := []string{jobs[0].ID, jobs[1].ID, jobs[2].ID}
	assert.Equal(t, []string{"3", "2", "1"}, ids)
}

func TestAdminJobService_CreateValidatesBeforeCalling(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminJobsAPI(ctrl)

	svc := NewAdminJobService(AdminJobServiceOptions{API: api})
	_, err := svc.Create(context.Background(), adminSession, job.Input{Title: "x", ContactEmail: "bad"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "company_name")
	assert.Contains(t, verrs, "contact_email")
}

func TestAdminJobService_CreateAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminJobsAPI(ctrl)
	in := validInput()
	api.EXPECT().Create(gomock.Any(), adminSession, in).Return(job.Job{ID: "7", Title: in.Title}, nil)
	api.EXPECT().Update(gomock.Any(), adminSession, "7", in).Return(job.Job{ID: "7"}, nil)

	svc := NewAdminJobService(AdminJobServiceOptions{API: api})
	created, err := svc.Create(context.Background(), adminSession, in)
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID)

	_, err = svc.Update(context.Background(), adminSession, "7", in)
	require.NoError(t, err)
}

func TestAdminJobService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminJobsAPI(ctrl)
	api.EXPECT().Delete(gomock.Any(), adminSession, "1").Return(nil)
	api.EXPECT().Delete(gomock.Any(), adminSession, "2").Return(apperrors.NotFound("gone"))

	svc := NewAdminJobService(AdminJobServiceOptions{API: api})
	require.NoError(t, svc.Delete(context.Background(), adminSession, "1"))
	assert.True(t, apperrors.IsNotFound(svc.Delete(context.Background(), adminSession, "2")))
}

func TestAdminJobService_TogglePin(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAdminJobsAPI(ctrl)
	api.EXPECT().TogglePin(gomock.Any(), adminSession, "1").Return(true, nil)
	api.EXPECT().TogglePin(gomock.Any(), adminSession, "2").Return(false, errors.New("boom"))

	svc := NewAdminJobService(AdminJobServiceOptions{API: api})

	tog, err := svc.TogglePin(context.Background(), adminSession, "1", false)
	require.NoError(t, err)
	assert.Equal(t, job.ToggleCommitted, tog.State)
	assert.True(t, tog.Target())

	tog, err = svc.TogglePin(context.Background(), adminSession, "2", true)
	require.Error(t, err)
	assert.Equal(t, job.ToggleFailed, tog.State)
	assert.True(t, tog.Prior, "a failed pin keeps the value the page showed")
}
