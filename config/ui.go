package config

import "time"

const (
	minFeedRefresh = 5 * time.Second
	maxPageSize    = 100
)

// UIConfig holds presentation settings for the portal pages.
type UIConfig struct {
	// FeedRefresh is how often the job dashboard polls for a fresh list.
	FeedRefresh time.Duration `env:"FEED_REFRESH" envDefault:"30s"`

	// JobsPageSize is the default number of job cards per page.
	JobsPageSize int `env:"JOBS_PAGE_SIZE" envDefault:"12"`

	// SiteName is shown in the page header and titles.
	SiteName string `env:"SITE_NAME" envDefault:"CareerHub"`
}

// Sanitize clamps presentation settings to supported ranges.
func (u *UIConfig) Sanitize() {
	if u.FeedRefresh < minFeedRefresh {
		u.FeedRefresh = minFeedRefresh
	}
	if u.JobsPageSize <= 0 {
		u.JobsPageSize = 12
	}
	if u.JobsPageSize > maxPageSize {
		u.JobsPageSize = maxPageSize
	}
	if u.SiteName == "" {
		u.SiteName = "CareerHub"
	}
}
