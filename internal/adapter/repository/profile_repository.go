package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

const profileEntity = "profile"

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ProfileRepository {
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	var row model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, storeError(profileEntity, id, err)
	}
	return toProfileEntity(&row), nil
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	row := toProfileModel(profile)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Failed to create profile",
			zap.String("user_id", profile.ID),
			zap.Error(err))
		return storeError(profileEntity, profile.ID, err)
	}
	return nil
}

func (r *profileRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	result := r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Update("role", string(role))
	if result.Error != nil {
		return storeError(profileEntity, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domainErrors.NewNotFoundError(profileEntity, id)
	}
	return nil
}

func toProfileEntity(row *model.Profile) *entity.Profile {
	return &entity.Profile{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
		Role:     entity.Role(row.Role),
	}
}

func toProfileModel(profile *entity.Profile) *model.Profile {
	role := profile.Role
	if role == "" {
		role = entity.RoleViewer
	}
	return &model.Profile{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     string(role),
	}
}
