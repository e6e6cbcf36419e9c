package job

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleJobs() []Job {
	return []Job{
		{ID: "1", Title: "Engineer", CompanyName: "Acme"},
		{ID: "2", Title: "Accountant", CompanyName: "Globex", JobLocation: "Pune", RequiredSkills: "Tally, GST"},
		{ID: "3", Title: "Analyst", CompanyName: "Acme", RoleSummary: "Own the ENGINEERING metrics"},
		{ID: "4", Title: "Designer", CompanyName: "Initech", RequiredSkills: "Figma,  Go "},
	}
}

func ids(jobs []Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestApply_Scenario(t *testing.T) {
	jobs := []Job{{ID: "1", Title: "Engineer", CompanyName: "Acme"}}

	assert.Equal(t, []string{"1"}, ids(Apply(jobs, Filter{Query: "eng"})))
	assert.Empty(t, Apply(jobs, Filter{Query: "xyz"}))
}

func TestApply_IsExactlyTheSubstringSubset(t *testing.T) {
	jobs := sampleJobs()
	queries := []string{"", "eng", "ACME", "pune", "gst", "go", " figma ", "zzz", "a"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			got := Apply(jobs, Filter{Query: q})
			want := make([]Job, 0)
			needle := strings.ToLower(q)
			for _, j := range jobs {
				hay := strings.ToLower(strings.Join([]string{
					j.Title, j.RoleSummary, j.CompanyName, j.JobLocation, j.RequiredSkills,
				}, "\x00"))
				if strings.Contains(hay, needle) {
					want = append(want, j)
				}
			}
			assert.Equal(t, ids(want), ids(got))
		})
	}
}

func TestApply_WhitespaceIsPartOfTheQuery(t *testing.T) {
	jobs := sampleJobs()

	assert.Empty(t, Apply(jobs, Filter{Query: " figma"}))
	assert.Equal(t, []string{"4"}, ids(Apply(jobs, Filter{Query: "go "})))
	assert.Equal(t, []string{"2", "3", "4"}, ids(Apply(jobs, Filter{Query: " "})))
}

func TestApply_CategoryIsExactCompanyMatch(t *testing.T) {
	jobs := sampleJobs()

	assert.Equal(t, []string{"1", "3"}, ids(Apply(jobs, Filter{Category: "Acme"})))
	assert.Empty(t, Apply(jobs, Filter{Category: "acme"}))
	assert.Equal(t, []string{"3"}, ids(Apply(jobs, Filter{Category: "Acme", Query: "analyst"})))
}

func TestCategories(t *testing.T) {
	jobs := append(sampleJobs(), Job{ID: "5"})
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, Categories(jobs))
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Query: "  "}.IsZero())
	assert.False(t, Filter{Category: "Acme"}.IsZero())
}
