package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// DefaultActivityLimit bounds activity reads when the caller gives no limit.
const DefaultActivityLimit = 20

const maxActivityLimit = 200

// ActivityService records and reads the audit trail.
type ActivityService struct {
	repo   repository.ActivityLogRepository
	gate   AccessChecker
	logger *zap.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityLogRepository, gate AccessChecker, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		repo:   repo,
		gate:   gate,
		logger: logger,
	}
}

// Record appends an entry. Failures are logged and never returned: the
// change being recorded has already been applied.
func (s *ActivityService) Record(ctx context.Context, access *entity.Access, action, entityType, entityID string, metadata map[string]interface{}) {
	entry := &model.ActivityLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		CreatedAt:  time.Now().UTC(),
	}
	if access != nil {
		entry.ActorID = access.UserID
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Warn("Failed to record activity",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}

// Recent returns the newest entries, newest first. Admin only.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*model.ActivityLog, error) {
	if _, err := s.gate.RequireAdmin(ctx, "activity.list"); err != nil {
		return nil, err
	}
	return s.repo.Recent(ctx, clampLimit(limit, DefaultActivityLimit))
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxActivityLimit {
		return maxActivityLimit
	}
	return limit
}
