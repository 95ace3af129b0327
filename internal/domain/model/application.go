package model

import "time"

// Application statuses. Any status may follow any other.
const (
	ApplicationStatusNew       = "new"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// ApplicationStatuses lists every valid application status.
var ApplicationStatuses = []string{
	ApplicationStatusNew,
	ApplicationStatusReviewing,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// Application is an inbound inquiry or job application.
type Application struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName  string    `gorm:"size:100;not null" json:"first_name"`
	LastName   string    `gorm:"size:100;not null" json:"last_name"`
	Email      string    `gorm:"size:255;not null;index" json:"email"`
	Phone      string    `gorm:"size:40" json:"phone,omitempty"`
	Message    string    `gorm:"type:text" json:"message,omitempty"`
	ResumeURL  string    `gorm:"column:resume_url;size:1000" json:"resume_url,omitempty"`
	SourceType string    `gorm:"size:200;index" json:"source_type"`
	Status     string    `gorm:"size:20;not null;default:'new';index" json:"status"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// IsValidApplicationStatus reports whether status is a known application status.
func IsValidApplicationStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}
