package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// ContentRepository is the gorm implementation shared by every content model.
type ContentRepository[T any, P model.ContentPtr[T]] struct {
	db         *gorm.DB
	logger     *zap.Logger
	entityType string
}

// NewContentRepository creates a repository for content model T.
func NewContentRepository[T any, P model.ContentPtr[T]](db *gorm.DB, logger *zap.Logger) domainRepo.ContentRepository[T] {
	return &ContentRepository[T, P]{
		db:         db,
		logger:     logger,
		entityType: P(new(T)).EntityType(),
	}
}

func (r *ContentRepository[T, P]) List(ctx context.Context, filter domainRepo.ContentFilter) ([]*T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Category != "" {
		if _, ok := any(P(new(T))).(model.Categorized); ok {
			query = query.Where("category = ?", filter.Category)
		}
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var items []*T
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		r.logger.Error("Failed to list content",
			zap.String("entity_type", r.entityType),
			zap.Error(err))
		return nil, storeError(r.entityType, "", err)
	}
	return items, nil
}

func (r *ContentRepository[T, P]) GetByID(ctx context.Context, id string, includeDeleted bool) (*T, error) {
	query := r.db.WithContext(ctx)
	if includeDeleted {
		query = query.Unscoped()
	}

	item := new(T)
	if err := query.Where("id = ?", id).First(item).Error; err != nil {
		return nil, storeError(r.entityType, id, err)
	}
	return item, nil
}

func (r *ContentRepository[T, P]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	item := new(T)
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(item).Error; err != nil {
		return nil, storeError(r.entityType, slug, err)
	}
	return item, nil
}

// SlugExists also checks soft-deleted rows since they keep their unique slug.
func (r *ContentRepository[T, P]) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(new(T)).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, storeError(r.entityType, slug, err)
	}
	return count > 0, nil
}

func (r *ContentRepository[T, P]) Create(ctx context.Context, entity *T) error {
	p := P(entity)
	if p.GetID() == "" {
		p.SetID(uuid.NewString())
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		r.logger.Error("Failed to create content",
			zap.String("entity_type", r.entityType),
			zap.String("id", p.GetID()),
			zap.Error(err))
		return storeError(r.entityType, p.GetID(), err)
	}
	return nil
}

// Update writes every column of entity, including zero values.
func (r *ContentRepository[T, P]) Update(ctx context.Context, entity *T) error {
	id := P(entity).GetID()
	result := r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(entity)
	if result.Error != nil {
		r.logger.Error("Failed to update content",
			zap.String("entity_type", r.entityType),
			zap.String("id", id),
			zap.Error(result.Error))
		return storeError(r.entityType, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domainErrors.NewNotFoundError(r.entityType, id)
	}
	return nil
}

// SoftDelete sets deleted_at; the row stays in the table.
func (r *ContentRepository[T, P]) SoftDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return storeError(r.entityType, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domainErrors.NewNotFoundError(r.entityType, id)
	}
	return nil
}
