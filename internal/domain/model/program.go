package model

// Program is a student, career or research offering.
type Program struct {
	ContentBase
	Title       string `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Subtitle    string `gorm:"size:300" json:"subtitle" validate:"max=300"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:100;index" json:"category" validate:"max=100"`
}

func (Program) TableName() string { return "programs" }

func (p *Program) GetTitle() string    { return p.Title }
func (p *Program) GetCategory() string { return p.Category }
func (p *Program) EntityType() string  { return EntityProgram }
