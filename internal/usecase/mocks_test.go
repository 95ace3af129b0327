package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository[T any] struct {
	mock.Mock
}

func (m *MockContentRepository[T]) List(ctx context.Context, filter repository.ContentFilter) ([]*T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *MockContentRepository[T]) GetByID(ctx context.Context, id string, includeDeleted bool) (*T, error) {
	args := m.Called(ctx, id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository[T]) Create(ctx context.Context, e *T) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockContentRepository[T]) Update(ctx context.Context, e *T) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockContentRepository[T]) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockApplicationRepository is a mock implementation of ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) List(ctx context.Context, filter dto.ApplicationFilter) ([]*model.Application, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]json.RawMessage), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockSettingsRepository) UpsertMany(ctx context.Context, values map[string]json.RawMessage) error {
	return m.Called(ctx, values).Error(0)
}

// MockActivityLogRepository is a mock implementation of ActivityLogRepository
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockActivityLogRepository) Recent(ctx context.Context, limit int) ([]*model.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*model.ActivityLog, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ActivityLog), args.Error(1)
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

// MockIdentityProvider is a mock implementation of IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) GetCurrentUser(ctx context.Context, accessToken string) (*entity.UserIdentity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserIdentity), args.Error(1)
}

func (m *MockIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password string, fields entity.ProfileFields) (*entity.Session, error) {
	args := m.Called(ctx, email, password, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockIdentityProvider) SignOut(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

// MockNotifier is a mock implementation of ApplicationNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyNewApplication(ctx context.Context, to string, application *model.Application) error {
	return m.Called(ctx, to, application).Error(0)
}

// fakeGate grants admin when admin is set.
type fakeGate struct {
	admin  bool
	userID string
}

func (g *fakeGate) ResolveAccess(ctx context.Context, token string) (*entity.Access, error) {
	if !g.admin {
		return nil, domainErrors.NewUnauthenticatedError("no session")
	}
	return g.access(), nil
}

func (g *fakeGate) RequireAdmin(ctx context.Context, operation string) (*entity.Access, error) {
	if !g.admin {
		return nil, domainErrors.NewForbiddenError(g.userID, operation, nil)
	}
	return g.access(), nil
}

func (g *fakeGate) IsAdmin(ctx context.Context) bool {
	return g.admin
}

func (g *fakeGate) access() *entity.Access {
	profile := &entity.Profile{ID: g.userID, Role: entity.RoleAdmin}
	return &entity.Access{UserID: g.userID, Role: entity.RoleAdmin, Profile: profile}
}
