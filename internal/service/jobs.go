package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/ports"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	API ports.JobsAPI
	// FetchTimeout bounds a shared overview fetch, which outlives the
	// cancellation of any one caller. Defaults to defaultFetchTimeout.
	FetchTimeout time.Duration
	Logger       *slog.Logger // optional
}

const defaultFetchTimeout = 15 * time.Second

// JobService serves the user-facing job board: the filtered feed, detail
// pages and the saved-job toggle.
type JobService struct {
	api          ports.JobsAPI
	logger       *slog.Logger
	feeds        singleflight.Group
	fetchTimeout time.Duration
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &JobService{api: opts.API, logger: logger.With("component", "job_service"), fetchTimeout: timeout}
}

// FeedQuery selects one page of the dashboard list.
type FeedQuery struct {
	Filter   job.Filter
	Status   job.StatusFilter
	Page     int
	PageSize int
}

// Feed is one rendered page of the dashboard.
type Feed struct {
	Jobs []job.Job
	Page PageInfo
	// Categories come from the unfiltered list so the select keeps every option.
	Categories []string
	Saved      *job.SavedSet
}

// Feed fetches the overview and the saved set concurrently, then filters and
// paginates. Identical overview fetches in flight for the same token share one
// upstream call.
func (s *JobService) Feed(ctx context.Context, sess domainauth.Session, q FeedQuery) (*Feed, error) {
	status := q.Status
	if status == "" {
		status = job.FilterLive
	}

	var (
		all   []job.Job
		saved []job.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.overview(gctx, sess, status)
		return err
	})
	g.Go(func() error {
		var err error
		saved, err = s.api.Saved(gctx, sess)
		if err != nil {
			return fmt.Errorf("fetch saved jobs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := job.Apply(all, q.Filter)
	page, info := Paginate(filtered, q.Page, q.PageSize)
	return &Feed{
		Jobs:       page,
		Page:       info,
		Categories: job.Categories(all),
		Saved:      job.SavedSetFromJobs(saved),
	}, nil
}

func (s *JobService) overview(ctx context.Context, sess domainauth.Session, status job.StatusFilter) ([]job.Job, error) {
	key := sess.Token + "|" + string(status)
	ch := s.feeds.DoChan(key, func() (any, error) {
		// Joined callers must not fail because the first one went away.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.api.Overview(fctx, sess, status)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("fetch jobs: %w", res.Err)
		}
		shared := res.Val.([]job.Job)
		// Callers filter and sort; never hand them the shared backing array.
		return append([]job.Job(nil), shared...), nil
	}
}

// Detail is a job with the caller's saved flag.
type Detail struct {
	Job   job.Job
	Saved bool
}

// Detail records a view, then fetches the job and the saved set concurrently.
// A failed view increment is logged and does not fail the page.
func (s *JobService) Detail(ctx context.Context, sess domainauth.Session, id string) (*Detail, error) {
	if err := s.api.RecordView(ctx, sess, id); err != nil {
		s.logger.WarnContext(ctx, "record job view failed", "job_id", id, "error", err)
	}

	var (
		j     job.Job
		saved []job.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		j, err = s.api.Get(gctx, sess, id)
		if err != nil {
			return fmt.Errorf("fetch job: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		saved, err = s.api.Saved(gctx, sess)
		if err != nil {
			return fmt.Errorf("fetch saved jobs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Detail{Job: j, Saved: job.SavedSetFromJobs(saved).Has(id)}, nil
}

// SavedJobs lists the caller's bookmarked jobs.
func (s *JobService) SavedJobs(ctx context.Context, sess domainauth.Session) ([]job.Job, error) {
	jobs, err := s.api.Saved(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("fetch saved jobs: %w", err)
	}
	return jobs, nil
}

// ToggleSave flips the saved flag of id. The returned toggle is committed on
// success; on failure it is failed, its Prior is the unchanged membership, and
// the error is returned alongside it. shown is the state the page displayed; it
// stands in for the membership when the saved list cannot be fetched.
func (s *JobService) ToggleSave(ctx context.Context, sess domainauth.Session, id string, shown bool) (job.Toggle, error) {
	saved, err := s.api.Saved(ctx, sess)
	if err != nil {
		return job.Toggle{ID: id, Prior: shown, State: job.ToggleFailed}, fmt.Errorf("fetch saved jobs: %w", err)
	}
	set := job.SavedSetFromJobs(saved)
	return s.toggle(ctx, sess, set, id)
}

func (s *JobService) toggle(ctx context.Context, sess domainauth.Session, set *job.SavedSet, id string) (job.Toggle, error) {
	t, ok := set.Begin(id)
	if !ok {
		return job.Toggle{ID: id, Prior: set.Has(id), State: job.TogglePending}, nil
	}

	var err error
	if t.Target() {
		err = s.api.Save(ctx, sess, id)
	} else {
		err = s.api.Unsave(ctx, sess, id)
	}
	if err != nil {
		return set.Fail(id), fmt.Errorf("toggle saved job: %w", err)
	}
	return set.Commit(id), nil
}
