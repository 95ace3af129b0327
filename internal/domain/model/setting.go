package model

import (
	"time"

	"gorm.io/datatypes"
)

// Setting is one key of the site settings mapping.
type Setting struct {
	Key       string         `gorm:"column:key;primaryKey;size:100" json:"key"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Setting) TableName() string { return "settings" }
