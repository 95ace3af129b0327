package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// applicationRepository implements the ApplicationRepository interface
type applicationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewApplicationRepository creates a new application repository instance
func NewApplicationRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ApplicationRepository {
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

// List returns applications newest first
func (r *applicationRepository) List(ctx context.Context, filter dto.ApplicationFilter) ([]*model.Application, error) {
	query := r.db.WithContext(ctx).Model(&model.Application{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SourceType != "" {
		query = query.Where("source_type = ?", filter.SourceType)
	}

	var applications []*model.Application
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		r.logger.Error("Failed to list applications", zap.Error(err))
		return nil, storeError(model.EntityApplication, "", err)
	}
	return applications, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, storeError(model.EntityApplication, id, err)
	}
	return &application, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	if application.Status == "" {
		application.Status = model.ApplicationStatusNew
	}

	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		r.logger.Error("Failed to create application",
			zap.String("source_type", application.SourceType),
			zap.Error(err))
		return storeError(model.EntityApplication, application.ID, err)
	}
	return nil
}

// UpdateStatus sets the status and returns the updated row
func (r *applicationRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Application, error) {
	var application model.Application
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Application{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainErrors.NewNotFoundError(model.EntityApplication, id)
		}
		return tx.Where("id = ?", id).First(&application).Error
	})
	if err != nil {
		if domainErrors.IsNotFound(err) {
			return nil, err
		}
		r.logger.Error("Failed to update application status",
			zap.String("application_id", id),
			zap.String("status", status),
			zap.Error(err))
		return nil, storeError(model.EntityApplication, id, err)
	}
	return &application, nil
}
