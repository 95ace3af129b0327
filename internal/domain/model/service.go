package model

import "gorm.io/datatypes"

// Service is an offering shown on the products & services pages.
type Service struct {
	ContentBase
	Title       string                      `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Subtitle    string                      `gorm:"size:300" json:"subtitle" validate:"max=300"`
	Description string                      `gorm:"type:text" json:"description"`
	Category    string                      `gorm:"size:100;index" json:"category" validate:"max=100"`
	Benefits    datatypes.JSONSlice[string] `json:"benefits" validate:"dive,max=500"`
}

func (Service) TableName() string { return "services" }

func (s *Service) GetTitle() string    { return s.Title }
func (s *Service) GetCategory() string { return s.Category }
func (s *Service) EntityType() string  { return EntityService }

func (s *Service) ApplyDefaults() {
	s.ContentBase.ApplyDefaults()
	if s.Benefits == nil {
		s.Benefits = datatypes.JSONSlice[string]{}
	}
}
