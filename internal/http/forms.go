package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/careerhub/portal/internal/domain/job"
	"github.com/careerhub/portal/internal/domain/material"
)

// parseJobInput reads the admin job form. Field names follow the API's JSON names.
func parseJobInput(r *http.Request) job.Input {
	v := r.PostFormValue
	return job.Input{
		Title:                   v("title"),
		CompanyName:             v("company_name"),
		CompanyOverview:         v("company_overview"),
		RoleSummary:             v("role_summary"),
		KeyResponsibilities:     v("key_responsibilities"),
		RequiredSkills:          v("required_skills"),
		EducationRequirements:   v("education_requirements"),
		ExperienceLevel:         v("experience_level"),
		SalaryRange:             v("salary_range"),
		Benefits:                v("benefits"),
		JobLocation:             v("job_location"),
		WorkType:                job.WorkType(v("work_type")),
		WorkSchedule:            v("work_schedule"),
		ApplicationInstructions: v("application_instructions"),
		ApplicationDeadline:     v("application_deadline"),
		ContactEmail:            v("contact_email"),
		ContactPhone:            v("contact_phone"),
	}
}

// parseDraft rebuilds a material draft from the posted form. Scalar fields
// use their dotted path as input name; list rows use name[i] pairs.
func parseDraft(r *http.Request) material.Draft {
	d := material.Draft{}
	// Type first so a posted category is judged against the posted type.
	mustSet(&d, material.FieldType, r.PostFormValue(material.FieldType.String()))
	for _, p := range material.FieldPaths() {
		if p == material.FieldType {
			continue
		}
		mustSet(&d, p, r.PostFormValue(p.String()))
	}

	questions, answers := r.PostForm["faq_question"], r.PostForm["faq_answer"]
	for i := range max(len(questions), len(answers)) {
		d.FAQs = append(d.FAQs, material.FAQ{Question: at(questions, i), Answer: at(answers, i)})
	}
	names, topics := r.PostForm["subject_name"], r.PostForm["subject_topics"]
	for i := range max(len(names), len(topics)) {
		d.Syllabus.Subjects = append(d.Syllabus.Subjects, material.Subject{Name: at(names, i), Topics: at(topics, i)})
	}
	events, dates := r.PostForm["date_event"], r.PostForm["date_value"]
	for i := range max(len(events), len(dates)) {
		d.Dates = append(d.Dates, material.DateEntry{Event: at(events, i), Date: at(dates, i)})
	}

	if len(d.FAQs) == 0 {
		d.AddFAQ()
	}
	if len(d.Syllabus.Subjects) == 0 {
		d.AddSubject()
	}
	return d
}

// mustSet assigns a field the form always carries. An error means FieldPaths
// and Draft.Set disagree, which is a programming error.
func mustSet(d *material.Draft, p material.FieldPath, value string) {
	if err := d.Set(p, value); err != nil {
		panic(fmt.Sprintf("draft field %s: %v", p, err))
	}
}

func at(vals []string, i int) string {
	if i < len(vals) {
		return vals[i]
	}
	return ""
}

// formIndex parses the row index carried by list operation buttons, either in
// the body or in the button's formaction query.
func formIndex(r *http.Request) int {
	i, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		return -1
	}
	return i
}
