package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// SettingsService reads and writes the site settings.
type SettingsService struct {
	repo     repository.SettingsRepository
	activity *ActivityService
	gate     AccessChecker
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	repo repository.SettingsRepository,
	activity *ActivityService,
	gate AccessChecker,
	validate *validator.Validate,
	logger *zap.Logger,
) *SettingsService {
	return &SettingsService{
		repo:     repo,
		activity: activity,
		gate:     gate,
		validate: validate,
		logger:   logger,
	}
}

// GetSettings returns the defaults overlaid with every stored value.
func (s *SettingsService) GetSettings(ctx context.Context) (entity.Settings, error) {
	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]interface{}, len(stored))
	for key, raw := range stored {
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			s.logger.Warn("Ignoring unreadable setting", zap.String("key", key), zap.Error(err))
			continue
		}
		overrides[key] = value
	}
	return entity.DefaultSettings().Overlay(overrides), nil
}

// Site returns the typed settings.
func (s *SettingsService) Site(ctx context.Context) (entity.SiteSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return entity.SiteSettings{}, err
	}
	return settings.Decode()
}

// UpdateSetting upserts one key. Admin only.
func (s *SettingsService) UpdateSetting(ctx context.Context, key string, value json.RawMessage) error {
	access, err := s.gate.RequireAdmin(ctx, "settings.update")
	if err != nil {
		return err
	}

	value, err = s.checkValue(key, value)
	if err != nil {
		return domainErrors.NewValidationError(model.EntitySetting, map[string]string{key: err.Error()})
	}

	if err := s.repo.Upsert(ctx, key, value); err != nil {
		return err
	}

	s.activity.Record(ctx, access, model.ActionUpdate, model.EntitySetting, key, nil)
	return nil
}

// UpdateSettings upserts every key in one transaction. Nothing is written
// if any value is invalid.
func (s *SettingsService) UpdateSettings(ctx context.Context, values map[string]json.RawMessage) error {
	access, err := s.gate.RequireAdmin(ctx, "settings.update")
	if err != nil {
		return err
	}

	clean, err := s.checkValues(values)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertMany(ctx, clean); err != nil {
		return err
	}

	for key := range clean {
		s.activity.Record(ctx, access, model.ActionUpdate, model.EntitySetting, key, nil)
	}
	return nil
}

// Import writes values with the same checks as UpdateSettings but without
// an access check. Used by operator tooling that already holds the store.
func (s *SettingsService) Import(ctx context.Context, values map[string]json.RawMessage) error {
	clean, err := s.checkValues(values)
	if err != nil {
		return err
	}
	if err := s.repo.UpsertMany(ctx, clean); err != nil {
		return err
	}

	s.logger.Info("Settings imported", zap.Int("count", len(clean)))
	for key := range clean {
		s.activity.Record(ctx, nil, model.ActionUpdate, model.EntitySetting, key, nil)
	}
	return nil
}

func (s *SettingsService) checkValues(values map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	if len(values) == 0 {
		return nil, domainErrors.NewValidationError(model.EntitySetting, map[string]string{"_": "no settings given"})
	}

	clean := make(map[string]json.RawMessage, len(values))
	fields := make(map[string]string)
	for key, raw := range values {
		value, err := s.checkValue(key, raw)
		if err != nil {
			fields[key] = err.Error()
			continue
		}
		clean[key] = value
	}
	if len(fields) > 0 {
		return nil, domainErrors.NewValidationError(model.EntitySetting, fields)
	}
	return clean, nil
}

// checkValue rejects unknown keys and values of the wrong shape and
// returns the value re-encoded in canonical form.
func (s *SettingsService) checkValue(key string, raw json.RawMessage) (json.RawMessage, error) {
	if !entity.IsKnownSetting(key) {
		return nil, fmt.Errorf("unknown setting")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("is required")
	}

	var value interface{}
	switch key {
	case entity.SettingSiteName:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("must be a string")
		}
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("is required")
		}
		value = strings.TrimSpace(v)
	case entity.SettingContactEmail, entity.SettingNotificationEmail:
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("must be a string")
		}
		if err := s.validate.Var(v, "required,email"); err != nil {
			return nil, fmt.Errorf("must be a valid email address")
		}
		value = v
	case entity.SettingMaintenanceMode, entity.SettingEnableApplications:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("must be true or false")
		}
		value = v
	case entity.SettingSocialLinks:
		var v map[string]string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("must be an object of strings")
		}
		for name, link := range v {
			if link != "" && s.validate.Var(link, "url") != nil {
				return nil, fmt.Errorf("%s must be a valid URL", name)
			}
		}
		value = v
	case entity.SettingServiceCategories, entity.SettingProgramCategories:
		var v []entity.CategoryDescriptor
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("must be a list of categories")
		}
		seen := make(map[string]bool, len(v))
		for i, c := range v {
			id := strings.TrimSpace(c.ID)
			if id == "" {
				return nil, fmt.Errorf("category %d needs an id", i)
			}
			if seen[id] {
				return nil, fmt.Errorf("duplicate category id %q", id)
			}
			seen[id] = true
			v[i].ID = id
		}
		value = v
	}

	out, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return out, nil
}
