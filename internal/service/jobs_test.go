package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	apperrors "github.com/careerhub/portal/internal/errors"
	"github.com/careerhub/portal/internal/mocks"
)

var userSession = domainauth.Session{ID: "s1", UserID: "u1", Token: "tok", Role: domainauth.RoleUser}

func sampleJobs() []job.Job {
	return []job.Job{
		{ID: "1", Title: "Engineer", CompanyName: "Acme", RequiredSkills: "Go, SQL"},
		{ID: "2", Title: "Designer", CompanyName: "Globex"},
		{ID: "3", Title: "Staff Engineer", CompanyName: "Acme"},
	}
}

func TestJobService_FeedFiltersAndMarksSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)
	api.EXPECT().Overview(gomock.Any(), userSession, job.FilterLive).Return(sampleJobs(), nil)
	api.EXPECT().Saved(gomock.Any(), userSession).Return([]job.Job{{ID: "3"}}, nil)

	svc := NewJobService(JobServiceOptions{API: api})
	feed, err := svc.Feed(context.Background(), userSession, FeedQuery{Filter: job.Filter{Query: "eng"}})
	require.NoError(t, err)

	require.Len(t, feed.Jobs, 2)
	assert.Equal(t, "1", feed.Jobs[0].ID)
	assert.Equal(t, "3", feed.Jobs[1].ID)
	assert.Equal(t, []string{"Acme", "Globex"}, feed.Categories)
	assert.True(t, feed.Saved.Has("3"))
	assert.False(t, feed.Saved.Has("1"))
	assert.Equal(t, 2, feed.Page.Total)
}

func TestJobService_FeedNoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)
	api.EXPECT().Overview(gomock.Any(), gomock.Any(), job.FilterExpired).Return(sampleJobs(), nil)
	api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := NewJobService(JobServiceOptions{API: api})
	feed, err := svc.Feed(context.Background(), userSession, FeedQuery{
		Filter: job.Filter{Query: "xyz"},
		Status: job.FilterExpired,
	})
	require.NoError(t, err)
	assert.Empty(t, feed.Jobs)
	assert.Len(t, feed.Categories, 2)
}

func TestJobService_FeedPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)
	api.EXPECT().Overview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.Wrap(errors.New("dial"), apperrors.ErrCodeNetwork, "fetch"))
	api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	svc := NewJobService(JobServiceOptions{API: api})
	_, err := svc.Feed(context.Background(), userSession, FeedQuery{})
	require.Error(t, err)
	assert.Equal(t, apperrors.CategoryNetwork, apperrors.CategoryOf(err))
}

func TestJobService_FeedSharesConcurrentOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)

	release := make(chan struct{})
	api.EXPECT().Overview(gomock.Any(), gomock.Any(), job.FilterLive).
		DoAndReturn(func(context.Context, domainauth.Session, job.StatusFilter) ([]job.Job, error) {
			<-release
			return sampleJobs(), nil
		}).Times(1)
	api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	svc := NewJobService(JobServiceOptions{API: api})
	var wg sync.WaitGroup
	results := make([]*Feed, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feed, err := svc.Feed(context.Background(), userSession, FeedQuery{})
			assert.NoError(t, err)
			results[i] = feed
		}()
	}
	// Give both callers time to join the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, f := range results {
		require.NotNil(t, f)
		assert.Len(t, f.Jobs, 3)
	}
}

func TestJobService_FeedSurvivesFirstCallerCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	fetchErr := make(chan error, 1)
	api.EXPECT().Overview(gomock.Any(), gomock.Any(), job.FilterLive).
		DoAndReturn(func(ctx context.Context, _ domainauth.Session, _ job.StatusFilter) ([]job.Job, error) {
			close(entered)
			<-release
			fetchErr <- ctx.Err()
			return sampleJobs(), nil
		}).Times(1)
	api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	svc := NewJobService(JobServiceOptions{API: api, FetchTimeout: 5 * time.Second})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Feed(firstCtx, userSession, FeedQuery{})
		firstErr <- err
	}()
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("overview fetch never started")
	}

	second := make(chan *Feed, 1)
	secondErr := make(chan error, 1)
	go func() {
		feed, err := svc.Feed(context.Background(), userSession, FeedQuery{})
		secondErr <- err
		second <- feed
	}()
	// Let the second caller join the in-flight fetch before the first leaves.
	time.Sleep(50 * time.Millisecond)
	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	require.NoError(t, <-secondErr)
	assert.Len(t, (<-second).Jobs, 3)
	assert.NoError(t, <-fetchErr, "the shared fetch keeps running after the first caller cancels")
}

func TestJobService_DetailRecordsViewAndSavedFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().RecordView(gomock.Any(), userSession, "1").Return(nil),
		api.EXPECT().Get(gomock.Any(), userSession, "1").Return(sampleJobs()[0], nil),
	)
	api.EXPECT().Saved(gomock.Any(), userSession).Return([]job.Job{{ID: "1"}}, nil)

	svc := NewJobService(JobServiceOptions{API: api})
	d, err := svc.Detail(context.Background(), userSession, "1")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", d.Job.Title)
	assert.True(t, d.Saved)
}

func TestJobService_DetailIgnoresViewFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)
	api.EXPECT().RecordView(gomock.Any(), gomock.Any(), "2").Return(errors.New("boom"))
	api.EXPECT().Get(gomock.Any(), gomock.Any(), "2").Return(sampleJobs()[1], nil)
	api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := NewJobService(JobServiceOptions{API: api})
	d, err := svc.Detail(context.Background(), userSession, "2")
	require.NoError(t, err)
	assert.False(t, d.Saved)
}

func TestJobService_DetailNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockJobsAPI(ctrl)
	api.EXPECT().RecordView(gomock.Any(), gomock.Any(), "9").Return(nil)
	api.EXPECT().Get(gomock.Any(), gomock.Any(), "9").Return(job.Job{}, apperrors.NotFound("Job not found"))
	api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	svc := NewJobService(JobServiceOptions{API: api})
	_, err := svc.Detail(context.Background(), userSession, "9")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_ToggleSave(t *testing.T) {
	tests := []struct {
		name      string
		saved     []job.Job
		expect    func(api *mocks.MockJobsAPI)
		wantState job.ToggleState
		wantPrior bool
		wantErr   bool
	}{
		{
			name:  "unsaved job is saved",
			saved: nil,
			expect: func(api *mocks.MockJobsAPI) {
				api.EXPECT().Save(gomock.Any(), gomock.Any(), "1").Return(nil)
			},
			wantState: job.ToggleCommitted,
			wantPrior: false,
		},
		{
			name:  "saved job is unsaved",
			saved: []job.Job{{ID: "1"}},
			expect: func(api *mocks.MockJobsAPI) {
				api.EXPECT().Unsave(gomock.Any(), gomock.Any(), "1").Return(nil)
			},
			wantState: job.ToggleCommitted,
			wantPrior: true,
		},
		{
			name:  "failed save rolls back",
			saved: nil,
			expect: func(api *mocks.MockJobsAPI) {
				api.EXPECT().Save(gomock.Any(), gomock.Any(), "1").Return(errors.New("nope"))
			},
			wantState: job.ToggleFailed,
			wantPrior: false,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockJobsAPI(ctrl)
			api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(tt.saved, nil)
			tt.expect(api)

			svc := NewJobService(JobServiceOptions{API: api})
			tog, err := svc.ToggleSave(context.Background(), userSession, "1", tt.wantPrior)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, tog.State)
			assert.Equal(t, tt.wantPrior, tog.Prior)
		})
	}
}

func TestJobService_ToggleSaveKeepsShownStateWhenSavedListFails(t *testing.T) {
	for _, shown := range []bool{true, false} {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockJobsAPI(ctrl)
		api.EXPECT().Saved(gomock.Any(), gomock.Any()).Return(nil, apperrors.Wrap(errors.New("dial"), apperrors.ErrCodeNetwork, "fetch"))

		svc := NewJobService(JobServiceOptions{API: api})
		tog, err := svc.ToggleSave(context.Background(), userSession, "1", shown)

		require.Error(t, err)
		assert.Equal(t, job.ToggleFailed, tog.State)
		assert.Equal(t, shown, tog.Current(), "a failed toggle leaves the displayed state unchanged")
	}
}
