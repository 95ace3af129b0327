package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

const activityEntity = "activity_log"

// activityLogRepository implements the ActivityLogRepository interface
type activityLogRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewActivityLogRepository creates a new activity log repository instance
func NewActivityLogRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ActivityLogRepository {
	return &activityLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return storeError(activityEntity, entry.ID, err)
	}
	return nil
}

func (r *activityLogRepository) Recent(ctx context.Context, limit int) ([]*model.ActivityLog, error) {
	if limit <= 0 {
		return []*model.ActivityLog{}, nil
	}

	var entries []*model.ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		r.logger.Error("Failed to load recent activity", zap.Int("limit", limit), zap.Error(err))
		return nil, storeError(activityEntity, "", err)
	}
	return entries, nil
}

func (r *activityLogRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*model.ActivityLog, error) {
	var entries []*model.ActivityLog
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, storeError(activityEntity, entityID, err)
	}
	return entries, nil
}
