package model

import "gorm.io/datatypes"

// Employment types
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Defaults used by the hiring desk when a field is left empty.
const (
	DefaultJobDepartment = "IT Division"
	DefaultJobLocation   = "Remote"
)

// JobOpening is a position listed on the careers page.
type JobOpening struct {
	ContentBase
	Title        string                      `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Department   string                      `gorm:"size:100" json:"department" validate:"max=100"`
	Location     string                      `gorm:"size:100" json:"location" validate:"max=100"`
	Type         string                      `gorm:"column:type;size:20;not null" json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Description  string                      `gorm:"type:text" json:"description"`
	Requirements datatypes.JSONSlice[string] `json:"requirements" validate:"dive,max=500"`
}

func (JobOpening) TableName() string { return "job_openings" }

func (j *JobOpening) GetTitle() string   { return j.Title }
func (j *JobOpening) EntityType() string { return EntityJobOpening }

func (j *JobOpening) ApplyDefaults() {
	j.ContentBase.ApplyDefaults()
	if j.Department == "" {
		j.Department = DefaultJobDepartment
	}
	if j.Location == "" {
		j.Location = DefaultJobLocation
	}
	if j.Type == "" {
		j.Type = JobTypeFullTime
	}
	if j.Requirements == nil {
		j.Requirements = datatypes.JSONSlice[string]{}
	}
}
