package job

import (
	"strings"

	"github.com/careerhub/portal/internal/validation"
)

// Input is the admin create/edit payload for the canonical jobs surface.
type Input struct {
	Title                   string   `json:"title"                    validate:"required,max=200"`
	CompanyName             string   `json:"company_name"             validate:"required,max=200"`
	CompanyOverview         string   `json:"company_overview"`
	RoleSummary             string   `json:"role_summary"`
	KeyResponsibilities     string   `json:"key_responsibilities"`
	RequiredSkills          string   `json:"required_skills"`
	EducationRequirements   string   `json:"education_requirements"`
	ExperienceLevel         string   `json:"experience_level"`
	SalaryRange             string   `json:"salary_range"`
	Benefits                string   `json:"benefits"`
	JobLocation             string   `json:"job_location"             validate:"required,max=200"`
	WorkType                WorkType `json:"work_type"                validate:"required,oneof=remote hybrid on-site"`
	WorkSchedule            string   `json:"work_schedule"`
	ApplicationInstructions string   `json:"application_instructions"`
	ApplicationDeadline     string   `json:"application_deadline"     validate:"omitempty,datetime=2006-01-02"`
	ContactEmail            string   `json:"contact_email"            validate:"omitempty,email"`
	ContactPhone            string   `json:"contact_phone"            validate:"omitempty,max=40"`
}

// InputFromJob seeds an edit form from a fetched job.
func InputFromJob(j Job) Input {
	return Input{
		Title:                   j.Title,
		CompanyName:             j.CompanyName,
		CompanyOverview:         j.CompanyOverview,
		RoleSummary:             j.RoleSummary,
		KeyResponsibilities:     j.KeyResponsibilities,
		RequiredSkills:          j.RequiredSkills,
		EducationRequirements:   j.EducationRequirements,
		ExperienceLevel:         j.ExperienceLevel,
		SalaryRange:             j.SalaryRange,
		Benefits:                j.Benefits,
		JobLocation:             j.JobLocation,
		WorkType:                j.WorkType,
		WorkSchedule:            j.WorkSchedule,
		ApplicationInstructions: j.ApplicationInstructions,
		ApplicationDeadline:     deadlineDate(j.ApplicationDeadline),
		ContactEmail:            j.ContactEmail,
		ContactPhone:            j.ContactPhone,
	}
}

// deadlineDate reduces a timestamp to the date part accepted by date inputs.
func deadlineDate(v string) string {
	t, ok := parseDate(v)
	if !ok {
		return v
	}
	return t.Format(DateLayout)
}

// Normalize trims whitespace and rejoins the skill list with single ", " separators.
func (in *Input) Normalize() {
	for _, f := range []*string{
		&in.Title, &in.CompanyName, &in.CompanyOverview, &in.RoleSummary,
		&in.KeyResponsibilities, &in.EducationRequirements, &in.ExperienceLevel,
		&in.SalaryRange, &in.Benefits, &in.JobLocation, &in.WorkSchedule,
		&in.ApplicationInstructions, &in.ApplicationDeadline, &in.ContactEmail, &in.ContactPhone,
	} {
		*f = strings.TrimSpace(*f)
	}
	in.WorkType = WorkType(strings.ToLower(strings.TrimSpace(string(in.WorkType))))
	in.RequiredSkills = strings.Join(SplitSkills(in.RequiredSkills), ", ")
}

// Validate normalizes the input and returns per-field messages.
func (in *Input) Validate() validation.Errors {
	in.Normalize()
	return validation.Struct(in)
}
