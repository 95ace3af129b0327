package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// Cache key prefixes
const (
	RevokedTokenPrefix = "revoked_token:"
	AccessCachePrefix  = "access:"
)

const defaultRevocationTTL = time.Hour

// AccessChecker gates protected operations.
type AccessChecker interface {
	// ResolveAccess maps a session token to the caller's role and profile.
	ResolveAccess(ctx context.Context, token string) (*entity.Access, error)
	// RequireAdmin resolves the token carried by ctx and fails with a
	// FORBIDDEN access error unless the caller is an admin.
	RequireAdmin(ctx context.Context, operation string) (*entity.Access, error)
	IsAdmin(ctx context.Context) bool
}

// AccessGate resolves sessions to roles. A resolved profile is cached for
// AccessTTL; signing out drops the cache entry before returning.
type AccessGate struct {
	identity  repository.IdentityProvider
	profiles  repository.ProfileRepository
	cache     repository.CacheRepository
	events    repository.AuthEventBus
	accessTTL time.Duration
	logger    *zap.Logger

	mu        sync.RWMutex
	listeners []func(entity.AuthEvent)
}

// NewAccessGate creates a new access gate
func NewAccessGate(
	identity repository.IdentityProvider,
	profiles repository.ProfileRepository,
	cache repository.CacheRepository,
	events repository.AuthEventBus,
	accessTTL time.Duration,
	logger *zap.Logger,
) *AccessGate {
	return &AccessGate{
		identity:  identity,
		profiles:  profiles,
		cache:     cache,
		events:    events,
		accessTTL: accessTTL,
		logger:    logger,
	}
}

func (g *AccessGate) ResolveAccess(ctx context.Context, token string) (*entity.Access, error) {
	if token == "" {
		return nil, domainErrors.NewUnauthenticatedError("no session")
	}

	revoked, err := g.isRevoked(ctx, token)
	if err != nil {
		return nil, domainErrors.NewIdentityProviderError(err)
	}
	if revoked {
		return nil, domainErrors.NewUnauthenticatedError("session signed out")
	}

	user, err := g.identity.GetCurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.NewUnauthenticatedError("invalid or expired session")
	}

	profile, err := g.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Access{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    profile.Role,
		Profile: profile,
	}, nil
}

func (g *AccessGate) RequireAdmin(ctx context.Context, operation string) (*entity.Access, error) {
	access, err := g.ResolveAccess(ctx, entity.SessionTokenFromContext(ctx))
	if err != nil {
		if domainErrors.IsUnauthenticated(err) || domainErrors.IsProfileNotFound(err) {
			g.logger.Info("Admin operation denied",
				zap.String("operation", operation),
				zap.Error(err))
			return nil, domainErrors.NewForbiddenError("", operation, err)
		}
		g.logger.Error("Access check failed",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, err
	}

	if !access.IsAdmin() {
		g.logger.Info("Admin operation denied",
			zap.String("operation", operation),
			zap.String("user_id", access.UserID),
			zap.String("role", string(access.Role)))
		return nil, domainErrors.NewForbiddenError(access.UserID, operation, nil)
	}
	return access, nil
}

// IsAdmin never errors; any failure counts as "not admin".
func (g *AccessGate) IsAdmin(ctx context.Context) bool {
	access, err := g.ResolveAccess(ctx, entity.SessionTokenFromContext(ctx))
	return err == nil && access.IsAdmin()
}

// SignOut revokes token locally, clears the cached role of its user and
// signs the session out at the identity provider.
func (g *AccessGate) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	ttl := defaultRevocationTTL
	user, err := g.identity.GetCurrentUser(ctx, token)
	if err != nil {
		g.logger.Warn("Could not inspect token on sign-out", zap.Error(err))
	}
	if user != nil && !user.ExpiresAt.IsZero() {
		ttl = time.Until(user.ExpiresAt)
	}
	if ttl > 0 {
		if err := g.cache.Set(ctx, RevokedTokenPrefix+hashToken(token), "1", ttl); err != nil {
			g.logger.Error("Failed to revoke token", zap.Error(err))
		}
	}

	if user != nil {
		g.Invalidate(ctx, user.ID)
		g.emit(ctx, entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: user.ID, Time: time.Now().UTC()})
	}

	if err := g.identity.SignOut(ctx, token); err != nil {
		g.logger.Warn("Identity provider sign-out failed", zap.Error(err))
		return err
	}
	return nil
}

// Invalidate drops the cached role of userID.
func (g *AccessGate) Invalidate(ctx context.Context, userID string) {
	if err := g.cache.Delete(ctx, AccessCachePrefix+userID); err != nil {
		g.logger.Error("Failed to clear cached access",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

// NotifyRoleChanged clears the cached role everywhere after a role update.
func (g *AccessGate) NotifyRoleChanged(ctx context.Context, userID string) {
	g.Invalidate(ctx, userID)
	g.emit(ctx, entity.AuthEvent{Type: entity.AuthEventRoleChanged, UserID: userID, Time: time.Now().UTC()})
}

// NotifySignedIn announces a new session.
func (g *AccessGate) NotifySignedIn(ctx context.Context, userID string) {
	g.emit(ctx, entity.AuthEvent{Type: entity.AuthEventSignedIn, UserID: userID, Time: time.Now().UTC()})
}

// OnAuthStateChange registers cb for every auth event received by Start.
func (g *AccessGate) OnAuthStateChange(cb func(entity.AuthEvent)) {
	g.mu.Lock()
	g.listeners = append(g.listeners, cb)
	g.mu.Unlock()
}

// Start consumes auth events until ctx is done. Each event clears the
// cached role of its user before listeners run.
func (g *AccessGate) Start(ctx context.Context) error {
	if g.events == nil {
		return nil
	}

	events, err := g.events.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for event := range events {
			if event.UserID != "" {
				g.Invalidate(ctx, event.UserID)
			}

			g.mu.RLock()
			listeners := append([]func(entity.AuthEvent){}, g.listeners...)
			g.mu.RUnlock()

			for _, cb := range listeners {
				cb(event)
			}
		}
	}()
	return nil
}

func (g *AccessGate) emit(ctx context.Context, event entity.AuthEvent) {
	if g.events == nil {
		return
	}
	if err := g.events.Publish(ctx, event); err != nil {
		g.logger.Warn("Failed to publish auth event",
			zap.String("type", event.Type),
			zap.String("user_id", event.UserID),
			zap.Error(err))
	}
}

func (g *AccessGate) isRevoked(ctx context.Context, token string) (bool, error) {
	_, err := g.cache.Get(ctx, RevokedTokenPrefix+hashToken(token))
	if err == nil {
		return true, nil
	}
	if g.cache.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func (g *AccessGate) loadProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	key := AccessCachePrefix + userID

	if cached, err := g.cache.Get(ctx, key); err == nil {
		var profile entity.Profile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
	} else if !g.cache.IsNotFound(err) {
		g.logger.Warn("Access cache read failed", zap.String("user_id", userID), zap.Error(err))
	}

	profile, err := g.profiles.GetByID(ctx, userID)
	if err != nil {
		if domainErrors.IsNotFound(err) {
			return nil, domainErrors.NewProfileNotFoundError(userID)
		}
		return nil, err
	}

	if g.accessTTL > 0 {
		if payload, err := json.Marshal(profile); err == nil {
			if err := g.cache.Set(ctx, key, string(payload), g.accessTTL); err != nil {
				g.logger.Warn("Access cache write failed", zap.String("user_id", userID), zap.Error(err))
			}
		}
	}
	return profile, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
