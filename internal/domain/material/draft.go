package material

import (
	"errors"
	"fmt"
	"strings"

	"github.com/careerhub/portal/internal/validation"
)

// Default rows of the important-dates table in a new draft.
var defaultDateEvents = []string{"Application Start", "Application End", "Exam Date", "Result Date"}

var (
	// ErrUnknownField is returned for a field path the draft does not have.
	ErrUnknownField = errors.New("unknown draft field")
	// ErrNestingTooDeep is returned for paths with more than one level of nesting.
	ErrNestingTooDeep = errors.New("draft field paths support one level of nesting")
	// ErrIndexOutOfRange is returned by indexed list setters.
	ErrIndexOutOfRange = errors.New("list index out of range")
)

// Draft is the editable form state of a study material. It never carries a
// stored file reference: a new file travels beside it in the Envelope.
type Draft struct {
	Title          string      `json:"title"          validate:"required,max=200"`
	Type           Type        `json:"type"           validate:"required,oneof=job exam"`
	Category       Category    `json:"category"       validate:"required"`
	ConductingBody string      `json:"conductingBody"`
	ExamType       string      `json:"examType"`
	Eligibility    Eligibility `json:"eligibility"`
	Pattern        Pattern     `json:"pattern"`
	Dates          []DateEntry `json:"dates"`
	Content        Content     `json:"content"`
	Resources      Resources   `json:"resources"`
	Community      Community   `json:"community"`
	FAQs           []FAQ       `json:"faqs"           validate:"min=1"`
	Syllabus       Syllabus    `json:"syllabus"`
}

// NewDraft returns the empty draft used for creation.
func NewDraft() Draft {
	dates := make([]DateEntry, 0, len(defaultDateEvents))
	for _, ev := range defaultDateEvents {
		dates = append(dates, DateEntry{Event: ev})
	}
	return Draft{
		Type:     TypeJob,
		Dates:    dates,
		FAQs:     []FAQ{{}},
		Syllabus: Syllabus{Subjects: []Subject{{}}},
	}
}

// DraftFromMaterial seeds an edit draft from a fetched material. The stored
// file reference is always dropped; lists are padded to one element.
func DraftFromMaterial(m StudyMaterial) Draft {
	d := Draft{
		Title:          m.Title,
		Type:           m.Type,
		Category:       m.Category,
		ConductingBody: m.ConductingBody,
		ExamType:       m.ExamType,
		Eligibility:    m.Eligibility,
		Pattern:        m.Pattern,
		Dates:          append([]DateEntry(nil), m.Dates...),
		Content:        Content{Text: m.Content.Text, YouTube: m.Content.YouTube},
		Resources:      m.Resources,
		Community:      m.Community,
		FAQs:           append([]FAQ(nil), m.FAQs...),
		Syllabus:       Syllabus{Subjects: append([]Subject(nil), m.Syllabus.Subjects...)},
	}
	if len(d.FAQs) == 0 {
		d.FAQs = []FAQ{{}}
	}
	if len(d.Syllabus.Subjects) == 0 {
		d.Syllabus.Subjects = []Subject{{}}
	}
	return d
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	c := d
	c.Dates = append([]DateEntry(nil), d.Dates...)
	c.FAQs = append([]FAQ(nil), d.FAQs...)
	c.Syllabus.Subjects = append([]Subject(nil), d.Syllabus.Subjects...)
	return c
}

// FieldPath names one scalar field of a draft: either a top-level field or a
// field of exactly one section.
type FieldPath uint8

const (
	FieldTitle FieldPath = iota + 1
	FieldType
	FieldCategory
	FieldConductingBody
	FieldExamType
	FieldEligibilityEducation
	FieldEligibilityAgeLimit
	FieldEligibilityOtherRequirements
	FieldPatternQuestionCount
	FieldPatternQuestionTypes
	FieldPatternMarkingScheme
	FieldContentText
	FieldContentYouTube
	FieldResourcesMockTests
	FieldResourcesStudyMaterials
	FieldResourcesPreviousYearPapers
	FieldCommunityForum
	FieldCommunityDoubts
	FieldCommunityFeedback
)

var fieldPathNames = map[FieldPath]string{
	FieldTitle:                        "title",
	FieldType:                         "type",
	FieldCategory:                     "category",
	FieldConductingBody:               "conductingBody",
	FieldExamType:                     "examType",
	FieldEligibilityEducation:         "eligibility.education",
	FieldEligibilityAgeLimit:          "eligibility.ageLimit",
	FieldEligibilityOtherRequirements: "eligibility.otherRequirements",
	FieldPatternQuestionCount:         "pattern.questionCount",
	FieldPatternQuestionTypes:         "pattern.questionTypes",
	FieldPatternMarkingScheme:         "pattern.markingScheme",
	FieldContentText:                  "content.text",
	FieldContentYouTube:               "content.youtube",
	FieldResourcesMockTests:           "resources.mockTests",
	FieldResourcesStudyMaterials:      "resources.studyMaterials",
	FieldResourcesPreviousYearPapers:  "resources.previousYearPapers",
	FieldCommunityForum:               "community.forum",
	FieldCommunityDoubts:              "community.doubts",
	FieldCommunityFeedback:            "community.feedback",
}

var fieldPathsByName = func() map[string]FieldPath {
	m := make(map[string]FieldPath, len(fieldPathNames))
	for p, name := range fieldPathNames {
		m[name] = p
	}
	return m
}()

// FieldPaths returns every scalar field path in declaration order.
func FieldPaths() []FieldPath {
	out := make([]FieldPath, 0, len(fieldPathNames))
	for p := FieldTitle; p <= FieldCommunityFeedback; p++ {
		out = append(out, p)
	}
	return out
}

// String returns the dotted form used as the HTML input name.
func (p FieldPath) String() string {
	if name, ok := fieldPathNames[p]; ok {
		return name
	}
	return fmt.Sprintf("FieldPath(%d)", uint8(p))
}

// Section returns the section part of a nested path, or "" for a top-level field.
func (p FieldPath) Section() string {
	section, _, found := strings.Cut(p.String(), ".")
	if !found {
		return ""
	}
	return section
}

// ParseFieldPath parses "field" or "section.field".
func ParseFieldPath(s string) (FieldPath, error) {
	if strings.Count(s, ".") > 1 {
		return 0, fmt.Errorf("%w: %q", ErrNestingTooDeep, s)
	}
	p, ok := fieldPathsByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return p, nil
}

// Set assigns value to the field at p. Setting the type clears a category
// the new type does not offer.
func (d *Draft) Set(p FieldPath, value string) error {
	if target := d.scalar(p); target != nil {
		*target = value
		return nil
	}
	switch p {
	case FieldType:
		d.SetType(Type(strings.ToLower(strings.TrimSpace(value))))
	case FieldCategory:
		d.Category = ParseCategory(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, p)
	}
	return nil
}

// With returns a copy of d with the field at p set, leaving d untouched.
func (d Draft) With(p FieldPath, value string) (Draft, error) {
	c := d.Clone()
	if err := c.Set(p, value); err != nil {
		return d, err
	}
	return c, nil
}

// Get returns the current value of the field at p.
func (d *Draft) Get(p FieldPath) string {
	if target := d.scalar(p); target != nil {
		return *target
	}
	switch p {
	case FieldType:
		return string(d.Type)
	case FieldCategory:
		return string(d.Category)
	default:
		return ""
	}
}

func (d *Draft) scalar(p FieldPath) *string {
	switch p {
	case FieldTitle:
		return &d.Title
	case FieldConductingBody:
		return &d.ConductingBody
	case FieldExamType:
		return &d.ExamType
	case FieldEligibilityEducation:
		return &d.Eligibility.Education
	case FieldEligibilityAgeLimit:
		return &d.Eligibility.AgeLimit
	case FieldEligibilityOtherRequirements:
		return &d.Eligibility.OtherRequirements
	case FieldPatternQuestionCount:
		return &d.Pattern.QuestionCount
	case FieldPatternQuestionTypes:
		return &d.Pattern.QuestionTypes
	case FieldPatternMarkingScheme:
		return &d.Pattern.MarkingScheme
	case FieldContentText:
		return &d.Content.Text
	case FieldContentYouTube:
		return &d.Content.YouTube
	case FieldResourcesMockTests:
		return &d.Resources.MockTests
	case FieldResourcesStudyMaterials:
		return &d.Resources.StudyMaterials
	case FieldResourcesPreviousYearPapers:
		return &d.Resources.PreviousYearPapers
	case FieldCommunityForum:
		return &d.Community.Forum
	case FieldCommunityDoubts:
		return &d.Community.Doubts
	case FieldCommunityFeedback:
		return &d.Community.Feedback
	default:
		return nil
	}
}

// SetType changes the material type and clears an incompatible category.
func (d *Draft) SetType(t Type) {
	d.Type = t
	if d.Category != "" && !t.Allows(d.Category) {
		d.Category = ""
	}
}

// CategoryOptions returns the categories offered for the draft's current type.
func (d Draft) CategoryOptions() []Category {
	return CategoryOptions(d.Type)
}

// AddFAQ appends an empty FAQ.
func (d *Draft) AddFAQ() { d.FAQs = append(d.FAQs, FAQ{}) }

// CanRemoveFAQ reports whether a FAQ may be removed.
func (d Draft) CanRemoveFAQ() bool { return len(d.FAQs) > 1 }

// RemoveFAQ deletes the FAQ at i. It is a no-op returning false when i is out
// of range or the list would become empty.
func (d *Draft) RemoveFAQ(i int) bool {
	if !d.CanRemoveFAQ() || i < 0 || i >= len(d.FAQs) {
		return false
	}
	d.FAQs = append(d.FAQs[:i:i], d.FAQs[i+1:]...)
	return true
}

// SetFAQ replaces the FAQ at i.
func (d *Draft) SetFAQ(i int, question, answer string) error {
	if i < 0 || i >= len(d.FAQs) {
		return fmt.Errorf("faq %d: %w", i, ErrIndexOutOfRange)
	}
	d.FAQs[i] = FAQ{Question: question, Answer: answer}
	return nil
}

// AddSubject appends an empty syllabus subject.
func (d *Draft) AddSubject() { d.Syllabus.Subjects = append(d.Syllabus.Subjects, Subject{}) }

// CanRemoveSubject reports whether a subject may be removed.
func (d Draft) CanRemoveSubject() bool { return len(d.Syllabus.Subjects) > 1 }

// RemoveSubject deletes the subject at i under the same rule as RemoveFAQ.
func (d *Draft) RemoveSubject(i int) bool {
	subjects := d.Syllabus.Subjects
	if !d.CanRemoveSubject() || i < 0 || i >= len(subjects) {
		return false
	}
	d.Syllabus.Subjects = append(subjects[:i:i], subjects[i+1:]...)
	return true
}

// SetSubject replaces the subject at i.
func (d *Draft) SetSubject(i int, name, topics string) error {
	if i < 0 || i >= len(d.Syllabus.Subjects) {
		return fmt.Errorf("subject %d: %w", i, ErrIndexOutOfRange)
	}
	d.Syllabus.Subjects[i] = Subject{Name: name, Topics: topics}
	return nil
}

// AddDate appends an empty important-date row.
func (d *Draft) AddDate() { d.Dates = append(d.Dates, DateEntry{}) }

// RemoveDate deletes the date row at i. Dates may become empty.
func (d *Draft) RemoveDate(i int) bool {
	if i < 0 || i >= len(d.Dates) {
		return false
	}
	d.Dates = append(d.Dates[:i:i], d.Dates[i+1:]...)
	return true
}

// SetDate replaces the date row at i.
func (d *Draft) SetDate(i int, event, date string) error {
	if i < 0 || i >= len(d.Dates) {
		return fmt.Errorf("date %d: %w", i, ErrIndexOutOfRange)
	}
	d.Dates[i] = DateEntry{Event: event, Date: date}
	return nil
}

// Validate returns per-field messages keyed by input name.
func (d Draft) Validate() validation.Errors {
	errs := validation.Struct(d)
	if d.Category != "" && d.Type.Valid() && !d.Type.Allows(d.Category) {
		if errs == nil {
			errs = validation.Errors{}
		}
		errs["category"] = fmt.Sprintf("Category %q is not offered for %s.", d.Category, d.Type.Label())
	}
	return errs
}
