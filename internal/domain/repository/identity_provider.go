package repository

import (
	"context"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
)

// IdentityProvider authenticates users.
type IdentityProvider interface {
	// GetCurrentUser returns nil without error when the token is not a valid session.
	GetCurrentUser(ctx context.Context, accessToken string) (*entity.UserIdentity, error)
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)
	SignUp(ctx context.Context, email, password string, fields entity.ProfileFields) (*entity.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// AuthEventBus carries auth state changes between processes.
type AuthEventBus interface {
	Publish(ctx context.Context, event entity.AuthEvent) error
	// Subscribe delivers events until ctx is done.
	Subscribe(ctx context.Context) (<-chan entity.AuthEvent, error)
}
