package repository

import (
	"context"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// ActivityLogRepository appends and reads audit entries.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]*model.ActivityLog, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*model.ActivityLog, error)
}
