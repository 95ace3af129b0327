package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// settingsRepository implements the SettingsRepository interface
type settingsRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a new settings repository instance
func NewSettingsRepository(db *gorm.DB, logger *zap.Logger) domainRepo.SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	var rows []model.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		r.logger.Error("Failed to load settings", zap.Error(err))
		return nil, storeError(model.EntitySetting, "", err)
	}

	values := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		values[row.Key] = json.RawMessage(row.Value)
	}
	return values, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	if err := upsertSetting(r.db.WithContext(ctx), key, value); err != nil {
		r.logger.Error("Failed to save setting",
			zap.String("key", key),
			zap.Error(err))
		return storeError(model.EntitySetting, key, err)
	}
	return nil
}

func (r *settingsRepository) UpsertMany(ctx context.Context, values map[string]json.RawMessage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := upsertSetting(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save settings",
			zap.Int("count", len(values)),
			zap.Error(err))
		return storeError(model.EntitySetting, "", err)
	}
	return nil
}

func upsertSetting(tx *gorm.DB, key string, value json.RawMessage) error {
	row := model.Setting{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now().UTC(),
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}
