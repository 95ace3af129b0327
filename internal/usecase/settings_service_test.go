package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

func newSettingsService(repo *MockSettingsRepository, gate *fakeGate) *usecase.SettingsService {
	activityRepo := new(MockActivityLogRepository)
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	activity := usecase.NewActivityService(activityRepo, gate, zap.NewNop())
	return usecase.NewSettingsService(repo, activity, gate, usecase.NewValidator(), zap.NewNop())
}

func TestSettingsService_GetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults overlaid with stored values", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetAll", ctx).Return(map[string]json.RawMessage{
			"site_name":          json.RawMessage(`"Acme"`),
			"maintenance_mode":   json.RawMessage(`true`),
			"service_categories": json.RawMessage(`[{"id":"cloud","label":"Cloud","tag":"t","description":"d"}]`),
		}, nil)
		svc := newSettingsService(repo, &fakeGate{})

		settings, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Acme", settings[entity.SettingSiteName])
		assert.Equal(t, "hello@jivitsolutions.com", settings[entity.SettingContactEmail])

		site, err := svc.Site(ctx)
		require.NoError(t, err)
		assert.True(t, site.MaintenanceMode)
		assert.True(t, site.EnableApplications)
		require.Len(t, site.ServiceCategories, 1)
		assert.Equal(t, "cloud", site.ServiceCategories[0].ID)
		assert.Len(t, site.ProgramCategories, 2)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetAll", ctx).Return(nil, domainErrors.NewStoreUnavailableError("setting", errors.New("down")))
		svc := newSettingsService(repo, &fakeGate{})

		_, err := svc.GetSettings(ctx)
		assert.True(t, domainErrors.IsStoreUnavailable(err))
	})
}

func TestSettingsService_UpdateSetting(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		key       string
		value     string
		stored    string
		wantField bool
	}{
		{name: "site name", key: "site_name", value: `"  JivIT  "`, stored: `"JivIT"`},
		{name: "toggle", key: "enable_applications", value: `false`, stored: `false`},
		{name: "email", key: "contact_email", value: `"ops@example.com"`, stored: `"ops@example.com"`},
		{name: "social links", key: "social_links", value: `{"linkedin":"https://linkedin.com/x","twitter":""}`, stored: `{"linkedin":"https://linkedin.com/x","twitter":""}`},
		{name: "unknown key", key: "theme", value: `"dark"`, wantField: true},
		{name: "wrong type", key: "maintenance_mode", value: `"yes"`, wantField: true},
		{name: "bad email", key: "notification_email", value: `"nope"`, wantField: true},
		{name: "category without id", key: "program_categories", value: `[{"label":"x"}]`, wantField: true},
		{name: "duplicate category", key: "service_categories", value: `[{"id":"a"},{"id":"a"}]`, wantField: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSettingsRepository)
			svc := newSettingsService(repo, &fakeGate{admin: true, userID: "admin-1"})

			if !tt.wantField {
				repo.On("Upsert", ctx, tt.key, mock.MatchedBy(func(v json.RawMessage) bool {
					return assert.JSONEq(t, tt.stored, string(v))
				})).Return(nil)
			}

			err := svc.UpdateSetting(ctx, tt.key, json.RawMessage(tt.value))
			if tt.wantField {
				require.Error(t, err)
				var contentErr *domainErrors.ContentError
				require.ErrorAs(t, err, &contentErr)
				assert.Contains(t, contentErr.Fields, tt.key)
				repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}

	t.Run("non-admin is forbidden", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := newSettingsService(repo, &fakeGate{})

		err := svc.UpdateSetting(ctx, "site_name", json.RawMessage(`"x"`))
		assert.True(t, domainErrors.IsForbidden(err))
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("writes every key at once", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := newSettingsService(repo, &fakeGate{admin: true, userID: "admin-1"})
		repo.On("UpsertMany", ctx, mock.MatchedBy(func(values map[string]json.RawMessage) bool {
			return len(values) == 2
		})).Return(nil)

		err := svc.UpdateSettings(ctx, map[string]json.RawMessage{
			"site_name":        json.RawMessage(`"Acme"`),
			"maintenance_mode": json.RawMessage(`true`),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("one bad value writes nothing", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := newSettingsService(repo, &fakeGate{admin: true, userID: "admin-1"})

		err := svc.UpdateSettings(ctx, map[string]json.RawMessage{
			"site_name":        json.RawMessage(`"Acme"`),
			"maintenance_mode": json.RawMessage(`"on"`),
		})
		assert.True(t, domainErrors.IsValidation(err))
		repo.AssertNotCalled(t, "UpsertMany", mock.Anything, mock.Anything)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := newSettingsService(repo, &fakeGate{admin: true, userID: "admin-1"})
		repo.On("UpsertMany", ctx, mock.Anything).Return(domainErrors.NewStoreUnavailableError("setting", errors.New("down")))

		err := svc.UpdateSettings(ctx, map[string]json.RawMessage{"site_name": json.RawMessage(`"Acme"`)})
		assert.True(t, domainErrors.IsStoreUnavailable(err))
	})
}

func TestSettingsService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("no admin needed", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := newSettingsService(repo, &fakeGate{})
		repo.On("UpsertMany", ctx, mock.Anything).Return(nil)

		err := svc.Import(ctx, map[string]json.RawMessage{"enable_applications": json.RawMessage(`false`)})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("same checks as the console", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := newSettingsService(repo, &fakeGate{})

		err := svc.Import(ctx, map[string]json.RawMessage{"favourite_colour": json.RawMessage(`"teal"`)})
		assert.True(t, domainErrors.IsValidation(err))

		err = svc.Import(ctx, nil)
		assert.True(t, domainErrors.IsValidation(err))
		repo.AssertNotCalled(t, "UpsertMany", mock.Anything, mock.Anything)
	})
}
