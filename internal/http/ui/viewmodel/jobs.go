package viewmodel

import (
	"time"

	"github.com/careerhub/portal/internal/domain/job"
)

// JobCard is a job as listed on the dashboard and saved pages.
type JobCard struct {
	job.Job
	Saved    bool
	Skills   []string
	Deadline time.Time
	Posted   time.Time
	Expired  bool
}

// NewJobCard derives the display fields of j.
func NewJobCard(j job.Job, saved bool) JobCard {
	c := JobCard{Job: j, Saved: saved, Skills: j.SkillChips(), Expired: j.Status == job.StatusExpired}
	if t, ok := j.Deadline(); ok {
		c.Deadline = t
	}
	if t, ok := j.Created(); ok {
		c.Posted = t
	}
	return c
}

// JobCards builds cards for jobs, marking those in saved.
func JobCards(jobs []job.Job, saved func(id string) bool) []JobCard {
	out := make([]JobCard, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobCard(j, saved != nil && saved(j.ID)))
	}
	return out
}

// Toggle is the state of a save or pin button after a toggle request.
type Toggle struct {
	ID     string
	On     bool
	Failed bool
}

// Option is one entry of a select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// SaveButton is the initial state of the card's save toggle.
func (c JobCard) SaveButton() Toggle { return Toggle{ID: c.ID, On: c.Saved} }

// PinButton is the initial state of the card's pin toggle.
func (c JobCard) PinButton() Toggle { return Toggle{ID: c.ID, On: c.Pinned} }
