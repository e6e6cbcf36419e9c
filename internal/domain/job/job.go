// Package job holds the job-posting entity and the pure rules the portal applies to it:
// search, category filtering, skill chips and the saved-job toggle.
package job

import (
	"sort"
	"strings"
	"time"
)

// WorkType is where the work happens.
type WorkType string

const (
	WorkTypeRemote WorkType = "remote"
	WorkTypeHybrid WorkType = "hybrid"
	WorkTypeOnSite WorkType = "on-site"
)

// WorkTypes lists the supported work types in display order.
func WorkTypes() []WorkType {
	return []WorkType{WorkTypeRemote, WorkTypeHybrid, WorkTypeOnSite}
}

// Valid reports whether the work type is supported.
func (w WorkType) Valid() bool {
	switch w {
	case WorkTypeRemote, WorkTypeHybrid, WorkTypeOnSite:
		return true
	default:
		return false
	}
}

// Status is the lifecycle state the API reports for a job. Values other than
// the known ones are kept verbatim.
type Status string

const (
	StatusLive    Status = "live"
	StatusExpired Status = "expired"
)

// StatusFilter selects which jobs the overview endpoint returns.
type StatusFilter string

const (
	FilterLive    StatusFilter = "live"
	FilterExpired StatusFilter = "expired"
	FilterAll     StatusFilter = "all"
)

// ParseStatusFilter normalizes a query value, defaulting to live.
func ParseStatusFilter(v string) StatusFilter {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(v))); f {
	case FilterLive, FilterExpired, FilterAll:
		return f
	default:
		return FilterLive
	}
}

// DateLayout is the wire format of application deadlines.
const DateLayout = "2006-01-02"

// Job is a job posting as served by the API.
type Job struct {
	ID                      string   `json:"_id"`
	Title                   string   `json:"title"`
	CompanyName             string   `json:"company_name"`
	CompanyOverview         string   `json:"company_overview"`
	RoleSummary             string   `json:"role_summary"`
	KeyResponsibilities     string   `json:"key_responsibilities"`
	RequiredSkills          string   `json:"required_skills"`
	EducationRequirements   string   `json:"education_requirements"`
	ExperienceLevel         string   `json:"experience_level"`
	SalaryRange             string   `json:"salary_range"`
	Benefits                string   `json:"benefits"`
	JobLocation             string   `json:"job_location"`
	WorkType                WorkType `json:"work_type"`
	WorkSchedule            string   `json:"work_schedule"`
	ApplicationInstructions string   `json:"application_instructions"`
	ApplicationDeadline     string   `json:"application_deadline"`
	ContactEmail            string   `json:"contact_email"`
	ContactPhone            string   `json:"contact_phone"`
	Views                   int      `json:"views"`
	Pinned                  bool     `json:"pinned"`
	Status                  Status   `json:"status"`
	CreatedAt               string   `json:"created_at,omitempty"`
	UpdatedAt               string   `json:"updated_at,omitempty"`
}

// SkillChips splits the comma-joined skill string into trimmed display chips.
// Empty entries are dropped; duplicates are kept as the API sent them.
func (j Job) SkillChips() []string {
	return SplitSkills(j.RequiredSkills)
}

// SplitSkills splits a comma-joined skill list into trimmed non-empty entries.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Deadline parses the application deadline. ok is false when it is empty or malformed.
func (j Job) Deadline() (time.Time, bool) {
	return parseDate(j.ApplicationDeadline)
}

// Created parses the creation timestamp. ok is false when it is absent or malformed.
func (j Job) Created() (time.Time, bool) {
	return parseDate(j.CreatedAt)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	DateLayout,
}

func parseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortForAdmin orders jobs pinned first, then newest first. Jobs without a
// parseable timestamp keep their relative order after dated ones.
func SortForAdmin(jobs []Job) {
	sort.SliceStable(jobs, func(a, b int) bool {
		if jobs[a].Pinned != jobs[b].Pinned {
			return jobs[a].Pinned
		}
		ta, okA := jobs[a].Created()
		tb, okB := jobs[b].Created()
		switch {
		case okA && okB:
			return ta.After(tb)
		case okA != okB:
			return okA
		default:
			return false
		}
	})
}
