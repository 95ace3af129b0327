package model

import "time"

// Profile is the row that carries a user's role.
type Profile struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Email     string    `gorm:"size:255"`
	FullName  string    `gorm:"size:200"`
	Role      string    `gorm:"size:20;not null;default:'viewer'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string { return "profiles" }
