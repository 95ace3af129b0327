package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JivitSolutions/JivIT-Solutions/internal/adapter/repository"
	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/cache"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/database"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/mail"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
	"github.com/JivitSolutions/JivIT-Solutions/pkg/messaging"
)

// Infrastructure holds the connections shared by the server and cmsctl.
type Infrastructure struct {
	DB    *gorm.DB
	Redis *redis.Client
	Repos *database.Repositories

	Cache  domainRepo.CacheRepository
	Events domainRepo.AuthEventBus

	logger *zap.Logger
}

// NewInfrastructure opens the database and, when enabled, Redis. Without
// Redis, token revocation and auth events stay in process and roles are
// not cached.
func NewInfrastructure(cfg *config.Config, logger *zap.Logger) (*Infrastructure, error) {
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	infra := &Infrastructure{
		DB:     db,
		Repos:  database.NewRepositories(db, logger),
		logger: logger,
	}

	if !cfg.Redis.Enabled {
		logger.Info("Redis disabled, roles are read from the store on every request")
		infra.Cache = cache.NewMemoryRepository()
		infra.Events = repository.NewLocalAuthEventBus()
		return infra, nil
	}

	client, err := cache.NewRedisClient(cfg.Redis, logger)
	if err != nil {
		_ = database.Close(db, logger)
		return nil, err
	}
	infra.Redis = client
	infra.Cache = cache.NewRedisRepository(client, logger)
	infra.Events = repository.NewRedisAuthEventBus(messaging.FromClient(client), logger)
	return infra, nil
}

// Ping reports whether the database answers.
func (i *Infrastructure) Ping(ctx context.Context) error {
	return database.Ping(ctx, i.DB)
}

// Dependencies builds usecase dependencies around identity and an
// optional notifier.
func (i *Infrastructure) Dependencies(cfg *config.Config, identity domainRepo.IdentityProvider) Dependencies {
	var notifier usecase.ApplicationNotifier
	if cfg.Mail.Enabled {
		notifier = mail.NewNotifier(cfg.Mail, i.logger.Named("mail"))
	}
	// An in-process role cache never hears a promote or demote made by
	// another process, so roles are only cached when Redis is shared.
	accessTTL := cfg.Redis.AccessTTL
	if i.Redis == nil {
		accessTTL = 0
	}
	return Dependencies{
		Repos:          i.Repos,
		Identity:       identity,
		Cache:          i.Cache,
		Events:         i.Events,
		Notifier:       notifier,
		AccessTTL:      accessTTL,
		RecentActivity: cfg.Dashboard.RecentActivity,
	}
}

// SupabaseIdentity is the identity provider configured in cfg.
func SupabaseIdentity(cfg *config.Config, logger *zap.Logger) domainRepo.IdentityProvider {
	return repository.NewSupabaseIdentityProvider(
		cfg.Supabase.URL,
		cfg.Supabase.APIKey,
		cfg.Supabase.JWTSecret,
		logger.Named("supabase"),
	)
}

// Close releases Redis and the database.
func (i *Infrastructure) Close() {
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			i.logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}
	if err := database.Close(i.DB, i.logger); err != nil {
		i.logger.Error("Failed to close database connection", zap.Error(err))
	}
}
