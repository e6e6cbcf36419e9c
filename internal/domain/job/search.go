package job

import "strings"

// Filter is the dashboard's client-side narrowing of a fetched job list.
// Category matches CompanyName exactly; the API has no dedicated category field.
type Filter struct {
	Query    string
	Category string
}

// IsZero reports whether the filter selects every job.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Category == ""
}

// Matches reports whether j passes the filter. The query is a case-insensitive
// substring match over title, role summary, company name, location and skills.
// Surrounding whitespace is part of the query.
func (f Filter) Matches(j Job) bool {
	if f.Category != "" && j.CompanyName != f.Category {
		return false
	}
	q := strings.ToLower(f.Query)
	if q == "" {
		return true
	}
	for _, field := range searchableFields(j) {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func searchableFields(j Job) [5]string {
	return [5]string{j.Title, j.RoleSummary, j.CompanyName, j.JobLocation, j.RequiredSkills}
}

// Apply returns the jobs that match f, preserving order.
func Apply(jobs []Job, f Filter) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

// Categories returns the distinct non-empty company names in first-seen order.
func Categories(jobs []Job) []string {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if j.CompanyName == "" {
			continue
		}
		if _, ok := seen[j.CompanyName]; ok {
			continue
		}
		seen[j.CompanyName] = struct{}{}
		out = append(out, j.CompanyName)
	}
	return out
}
