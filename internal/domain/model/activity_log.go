package model

import (
	"time"

	"gorm.io/datatypes"
)

// Activity actions
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ActivityLog is an append-only audit entry for a content change.
type ActivityLog struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	Action     string            `gorm:"size:10;not null" json:"action"`
	EntityType string            `gorm:"size:50;not null;index:idx_activity_logs_entity" json:"entity_type"`
	EntityID   string            `gorm:"size:36;index:idx_activity_logs_entity" json:"entity_id,omitempty"`
	ActorID    string            `gorm:"size:36" json:"actor_id,omitempty"`
	Metadata   datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt  time.Time         `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
