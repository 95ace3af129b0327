package dto

import (
	"strings"

	"gorm.io/datatypes"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// Patch merges the fields it carries into an entity. Nil fields are left unchanged.
type Patch[T any] interface {
	Apply(target *T)
}

// ListOptions controls content list queries.
type ListOptions struct {
	IncludeUnpublished bool   `query:"include_unpublished"`
	IncludeDeleted     bool   `query:"include_deleted"`
	Category           string `query:"category"`
}

// ServicePatch is the create/update payload for a service.
type ServicePatch struct {
	Title       *string   `json:"title,omitempty"`
	Subtitle    *string   `json:"subtitle,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Benefits    *[]string `json:"benefits,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

func (p ServicePatch) Apply(s *model.Service) {
	setString(&s.Title, p.Title)
	setString(&s.Subtitle, p.Subtitle)
	setString(&s.Description, p.Description)
	setString(&s.Category, p.Category)
	setStatus(&s.Status, p.Status)
	if p.Benefits != nil {
		s.Benefits = cleanList(*p.Benefits)
	}
}

// JobOpeningPatch is the create/update payload for a job opening.
type JobOpeningPatch struct {
	Title        *string   `json:"title,omitempty"`
	Department   *string   `json:"department,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Status       *string   `json:"status,omitempty"`
}

func (p JobOpeningPatch) Apply(j *model.JobOpening) {
	setString(&j.Title, p.Title)
	setString(&j.Department, p.Department)
	setString(&j.Location, p.Location)
	setString(&j.Description, p.Description)
	setStatus(&j.Status, p.Status)
	if p.Type != nil {
		j.Type = normalizeJobType(*p.Type)
	}
	if p.Requirements != nil {
		j.Requirements = cleanList(*p.Requirements)
	}
}

// ProgramPatch is the create/update payload for a program.
type ProgramPatch struct {
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (p ProgramPatch) Apply(pr *model.Program) {
	setString(&pr.Title, p.Title)
	setString(&pr.Subtitle, p.Subtitle)
	setString(&pr.Description, p.Description)
	setString(&pr.Category, p.Category)
	setStatus(&pr.Status, p.Status)
}

// StatusPatch changes only the publish status of any content entity.
type StatusPatch[T any, P model.ContentPtr[T]] struct {
	Status string
}

func (p StatusPatch[T, P]) Apply(target *T) {
	P(target).SetStatus(strings.ToLower(strings.TrimSpace(p.Status)))
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setStatus(dst *string, src *string) {
	if src != nil {
		*dst = strings.ToLower(strings.TrimSpace(*src))
	}
}

// normalizeJobType accepts the console's "Full-time" spelling as well as "full_time".
func normalizeJobType(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.ReplaceAll(v, "_", "-")
}

// cleanList trims entries and drops blank lines.
func cleanList(items []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Strings returns a pointer to v.
func Strings(v ...string) *[]string {
	return &v
}
