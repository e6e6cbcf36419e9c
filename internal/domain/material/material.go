// Package material models study materials and the editable draft the admin
// form works on.
package material

import "strings"

// Type discriminates job-preparation material from exam material.
type Type string

const (
	TypeJob  Type = "job"
	TypeExam Type = "exam"
)

// Types lists the material types in display order.
func Types() []Type { return []Type{TypeJob, TypeExam} }

// Valid reports whether t is a known type.
func (t Type) Valid() bool { return t == TypeJob || t == TypeExam }

// Label is the display name of the type.
func (t Type) Label() string {
	switch t {
	case TypeJob:
		return "Job Materials"
	case TypeExam:
		return "Exam Materials"
	default:
		return string(t)
	}
}

// Category is a type-dependent grouping of materials.
type Category string

const (
	CategoryMNC         Category = "mnc"
	CategoryState       Category = "state"
	CategoryCentral     Category = "central"
	CategoryCompetitive Category = "competitive"
	CategoryEntrance    Category = "entrance"
	CategoryOthers      Category = "others"
)

var categoriesByType = map[Type][]Category{
	TypeJob:  {CategoryMNC, CategoryState, CategoryCentral, CategoryOthers},
	TypeExam: {CategoryCompetitive, CategoryEntrance, CategoryOthers},
}

// CategoryOptions returns the closed set of categories offered for t.
// Unknown types have no options.
func CategoryOptions(t Type) []Category {
	opts := categoriesByType[t]
	out := make([]Category, len(opts))
	copy(out, opts)
	return out
}

// Allows reports whether c is a valid category for t.
func (t Type) Allows(c Category) bool {
	for _, opt := range categoriesByType[t] {
		if opt == c {
			return true
		}
	}
	return false
}

// ParseCategory normalizes user input to a category.
func ParseCategory(v string) Category {
	return Category(strings.ToLower(strings.TrimSpace(v)))
}

// Label is the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryMNC:
		return "MNC"
	case CategoryState:
		return "State Government"
	case CategoryCentral:
		return "Central Government"
	case CategoryCompetitive:
		return "Competitive"
	case CategoryEntrance:
		return "Entrance"
	case CategoryOthers:
		return "Others"
	default:
		return string(c)
	}
}

// Eligibility describes who may sit an exam.
type Eligibility struct {
	Education         string `json:"education"`
	AgeLimit          string `json:"ageLimit"`
	OtherRequirements string `json:"otherRequirements"`
}

// Pattern describes the exam paper.
type Pattern struct {
	QuestionCount string `json:"questionCount"`
	QuestionTypes string `json:"questionTypes"`
	MarkingScheme string `json:"markingScheme"`
}

// DateEntry is one row of the important-dates table.
type DateEntry struct {
	Event string `json:"event"`
	Date  string `json:"date"`
}

// Content is the body of a material. File is a URL when read from the API.
type Content struct {
	Text    string `json:"text"`
	YouTube string `json:"youtube" validate:"omitempty,url"`
	File    string `json:"file,omitempty"`
}

// Resources are links to further preparation material.
type Resources struct {
	MockTests          string `json:"mockTests"          validate:"omitempty,url"`
	StudyMaterials     string `json:"studyMaterials"     validate:"omitempty,url"`
	PreviousYearPapers string `json:"previousYearPapers" validate:"omitempty,url"`
}

// Community links the exam's discussion channels.
type Community struct {
	Forum    string `json:"forum"    validate:"omitempty,url"`
	Doubts   string `json:"doubts"   validate:"omitempty,url"`
	Feedback string `json:"feedback" validate:"omitempty,url"`
}

// FAQ is one question and answer.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Subject is one syllabus entry.
type Subject struct {
	Name   string `json:"name"`
	Topics string `json:"topics"`
}

// Syllabus groups the exam subjects.
type Syllabus struct {
	Subjects []Subject `json:"subjects" validate:"min=1"`
}

// StudyMaterial is a study material as served by the API.
type StudyMaterial struct {
	ID             string      `json:"_id"`
	Title          string      `json:"title"`
	Type           Type        `json:"type"`
	Category       Category    `json:"category"`
	ConductingBody string      `json:"conductingBody"`
	ExamType       string      `json:"examType"`
	Eligibility    Eligibility `json:"eligibility"`
	Pattern        Pattern     `json:"pattern"`
	Dates          []DateEntry `json:"dates"`
	Content        Content     `json:"content"`
	Resources      Resources   `json:"resources"`
	Community      Community   `json:"community"`
	FAQs           []FAQ       `json:"faqs"`
	Syllabus       Syllabus    `json:"syllabus"`
	CreatedAt      string      `json:"created_at,omitempty"`
	UpdatedAt      string      `json:"updated_at,omitempty"`
}

// Query selects materials from the listing endpoint. Empty fields are not sent.
type Query struct {
	Type     Type
	Category Category
}
