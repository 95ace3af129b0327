package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/adapter/repository"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/cache"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

type gateFixture struct {
	identity *MockIdentityProvider
	profiles *MockProfileRepository
	gate     *usecase.AccessGate
}

func newGateFixture() *gateFixture {
	identity := new(MockIdentityProvider)
	profiles := new(MockProfileRepository)
	gate := usecase.NewAccessGate(identity, profiles, cache.NewMemoryRepository(), repository.NewLocalAuthEventBus(), time.Minute, zap.NewNop())
	return &gateFixture{identity: identity, profiles: profiles, gate: gate}
}

func TestAccessGate_ResolveAccess(t *testing.T) {
	ctx := context.Background()
	user := &entity.UserIdentity{ID: "user-1", Email: "a@b.c", ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name     string
		token    string
		setup    func(f *gateFixture)
		role     entity.Role
		isAdmin  bool
		checkErr func(error) bool
	}{
		{
			name:     "no token",
			token:    "",
			setup:    func(f *gateFixture) {},
			checkErr: domainErrors.IsUnauthenticated,
		},
		{
			name:  "invalid session",
			token: "bad",
			setup: func(f *gateFixture) {
				f.identity.On("GetCurrentUser", mock.Anything, "bad").Return(nil, nil)
			},
			checkErr: domainErrors.IsUnauthenticated,
		},
		{
			name:  "admin",
			token: "good",
			setup: func(f *gateFixture) {
				f.identity.On("GetCurrentUser", mock.Anything, "good").Return(user, nil)
				f.profiles.On("GetByID", mock.Anything, "user-1").Return(&entity.Profile{ID: "user-1", Role: entity.RoleAdmin}, nil)
			},
			role:    entity.RoleAdmin,
			isAdmin: true,
		},
		{
			name:  "viewer",
			token: "good",
			setup: func(f *gateFixture) {
				f.identity.On("GetCurrentUser", mock.Anything, "good").Return(user, nil)
				f.profiles.On("GetByID", mock.Anything, "user-1").Return(&entity.Profile{ID: "user-1", Role: entity.RoleViewer}, nil)
			},
			role: entity.RoleViewer,
		},
		{
			name:  "no profile",
			token: "good",
			setup: func(f *gateFixture) {
				f.identity.On("GetCurrentUser", mock.Anything, "good").Return(user, nil)
				f.profiles.On("GetByID", mock.Anything, "user-1").Return(nil, domainErrors.NewNotFoundError("profile", "user-1"))
			},
			checkErr: domainErrors.IsProfileNotFound,
		},
		{
			name:  "profile store down",
			token: "good",
			setup: func(f *gateFixture) {
				f.identity.On("GetCurrentUser", mock.Anything, "good").Return(user, nil)
				f.profiles.On("GetByID", mock.Anything, "user-1").Return(nil, domainErrors.NewStoreUnavailableError("profile", errors.New("timeout")))
			},
			checkErr: domainErrors.IsStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGateFixture()
			tt.setup(f)

			access, err := f.gate.ResolveAccess(ctx, tt.token)
			if tt.checkErr != nil {
				require.Error(t, err)
				assert.True(t, tt.checkErr(err), "unexpected error: %v", err)
				assert.Nil(t, access)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.role, access.Role)
				assert.Equal(t, tt.isAdmin, access.IsAdmin())
			}

			assert.Equal(t, tt.isAdmin, f.gate.IsAdmin(entity.ContextWithSessionToken(ctx, tt.token)))
		})
	}
}

func TestAccessGate_RequireAdmin(t *testing.T) {
	user := &entity.UserIdentity{ID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("missing profile is forbidden", func(t *testing.T) {
		f := newGateFixture()
		ctx := entity.ContextWithSessionToken(context.Background(), "tok")
		f.identity.On("GetCurrentUser", ctx, "tok").Return(user, nil)
		f.profiles.On("GetByID", ctx, "user-1").Return(nil, domainErrors.NewNotFoundError("profile", "user-1"))

		_, err := f.gate.RequireAdmin(ctx, "service.create")
		assert.True(t, domainErrors.IsForbidden(err))

		var inner *domainErrors.AccessError
		require.ErrorAs(t, errors.Unwrap(err), &inner)
		assert.Equal(t, domainErrors.ErrTypeProfileNotFound, inner.Type)
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		f := newGateFixture()
		_, err := f.gate.RequireAdmin(context.Background(), "service.create")
		assert.True(t, domainErrors.IsForbidden(err))
	})

	t.Run("viewer is forbidden", func(t *testing.T) {
		f := newGateFixture()
		ctx := entity.ContextWithSessionToken(context.Background(), "tok")
		f.identity.On("GetCurrentUser", ctx, "tok").Return(user, nil)
		f.profiles.On("GetByID", ctx, "user-1").Return(&entity.Profile{ID: "user-1", Role: entity.RoleViewer}, nil)

		_, err := f.gate.RequireAdmin(ctx, "service.create")
		assert.True(t, domainErrors.IsForbidden(err))
	})

	t.Run("identity provider failure is not forbidden", func(t *testing.T) {
		f := newGateFixture()
		ctx := entity.ContextWithSessionToken(context.Background(), "tok")
		f.identity.On("GetCurrentUser", ctx, "tok").Return(nil, domainErrors.NewIdentityProviderError(errors.New("down")))

		_, err := f.gate.RequireAdmin(ctx, "service.create")
		require.Error(t, err)
		assert.False(t, domainErrors.IsForbidden(err))
	})
}

func TestAccessGate_CachesProfileAndSignOutClearsIt(t *testing.T) {
	f := newGateFixture()
	ctx := context.Background()
	user := &entity.UserIdentity{ID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}

	f.identity.On("GetCurrentUser", mock.Anything, "tok").Return(user, nil)
	f.identity.On("GetCurrentUser", mock.Anything, "tok-2").Return(user, nil)
	f.identity.On("SignOut", mock.Anything, "tok").Return(nil)
	f.profiles.On("GetByID", mock.Anything, "user-1").Return(&entity.Profile{ID: "user-1", Role: entity.RoleAdmin}, nil)

	for i := 0; i < 3; i++ {
		access, err := f.gate.ResolveAccess(ctx, "tok")
		require.NoError(t, err)
		assert.True(t, access.IsAdmin())
	}
	f.profiles.AssertNumberOfCalls(t, "GetByID", 1)

	require.NoError(t, f.gate.SignOut(ctx, "tok"))

	// the signed-out token is rejected immediately
	_, err := f.gate.ResolveAccess(ctx, "tok")
	assert.True(t, domainErrors.IsUnauthenticated(err))

	// a fresh session re-reads the profile
	_, err = f.gate.ResolveAccess(ctx, "tok-2")
	require.NoError(t, err)
	f.profiles.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestAccessGate_OnAuthStateChange(t *testing.T) {
	f := newGateFixture()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan entity.AuthEvent, 1)
	f.gate.OnAuthStateChange(func(event entity.AuthEvent) {
		received <- event
	})
	require.NoError(t, f.gate.Start(ctx))

	f.gate.NotifyRoleChanged(ctx, "user-9")

	select {
	case event := <-received:
		assert.Equal(t, entity.AuthEventRoleChanged, event.Type)
		assert.Equal(t, "user-9", event.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("callback not invoked")
	}
}
