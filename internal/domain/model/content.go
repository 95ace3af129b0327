package model

import (
	"time"

	"gorm.io/gorm"
)

// Publish lifecycle
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Entity types recorded in the activity log
const (
	EntityService     = "service"
	EntityJobOpening  = "job_opening"
	EntityProgram     = "program"
	EntityApplication = "application"
	EntitySetting     = "setting"
)

// Content is implemented by every publishable entity.
type Content interface {
	GetID() string
	SetID(id string)
	GetTitle() string
	GetSlug() string
	SetSlug(slug string)
	GetStatus() string
	SetStatus(status string)
	GetCreatedAt() time.Time
	IsDeleted() bool
	EntityType() string
	ApplyDefaults()
}

// ContentPtr constrains a pointer to a content model.
type ContentPtr[T any] interface {
	*T
	Content
}

// Categorized is implemented by content grouped into categories.
type Categorized interface {
	GetCategory() string
}

// ContentBase holds the columns shared by publishable entities.
type ContentBase struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Slug      string         `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Status    string         `gorm:"size:20;not null;default:'draft';index" json:"status" validate:"required,oneof=draft published"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (b *ContentBase) GetID() string { return b.ID }
func (b *ContentBase) SetID(id string) { b.ID = id }
func (b *ContentBase) GetSlug() string { return b.Slug }
func (b *ContentBase) SetSlug(slug string) { b.Slug = slug }
func (b *ContentBase) GetStatus() string { return b.Status }
func (b *ContentBase) SetStatus(status string) { b.Status = status }
func (b *ContentBase) GetCreatedAt() time.Time { return b.CreatedAt }
func (b *ContentBase) IsDeleted() bool { return b.DeletedAt.Valid }
func (b *ContentBase) IsPublished() bool { return b.Status == StatusPublished }

// ApplyDefaults fills fields that were left empty on create.
func (b *ContentBase) ApplyDefaults() {
	if b.Status == "" {
		b.Status = StatusDraft
	}
}
