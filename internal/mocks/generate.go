// Package mocks provides gomock doubles for the portal's ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockJobsAPI(ctrl)
//	api.EXPECT().Overview(gomock.Any(), gomock.Any(), job.FilterLive).Return(jobs, nil)
package mocks

// Remote API surfaces.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=jobs_api_mock.go github.com/careerhub/portal/internal/ports JobsAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=admin_jobs_api_mock.go github.com/careerhub/portal/internal/ports AdminJobsAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=materials_api_mock.go github.com/careerhub/portal/internal/ports MaterialsAPI

// Auth and state stores.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_provider_mock.go github.com/careerhub/portal/internal/ports AuthProvider
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/careerhub/portal/internal/ports SessionStore
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=form_guard_mock.go github.com/careerhub/portal/internal/ports FormGuard
