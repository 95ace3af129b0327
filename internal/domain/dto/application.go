package dto

// SubmitApplicationRequest is a public application submission.
type SubmitApplicationRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Message    string `json:"message,omitempty" validate:"omitempty,max=5000"`
	ResumeURL  string `json:"resume_url,omitempty" validate:"omitempty,url,max=1000"`
	SourceType string `json:"source_type" validate:"required,max=200"`
}

// UpdateApplicationStatusRequest moves an application to another status.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewing accepted rejected"`
}

// ApplicationFilter narrows an application listing.
type ApplicationFilter struct {
	Status     string `query:"status"`
	SourceType string `query:"source_type"`
}
