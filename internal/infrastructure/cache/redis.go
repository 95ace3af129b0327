package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// NewRedisClient connects to Redis and pings it
func NewRedisClient(cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis connection failed", zap.Error(err))
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("Redis connection established",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)
	return client, nil
}

// RedisRepository is a Redis backed CacheRepository
type RedisRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisRepository creates a cache repository on top of client
func NewRedisRepository(client *redis.Client, logger *zap.Logger) repository.CacheRepository {
	return &RedisRepository{
		client: client,
		logger: logger,
	}
}

func (r *RedisRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		r.logger.Error("Redis set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("Redis get failed", zap.String("key", key), zap.Error(err))
		}
		return "", err
	}
	return value, nil
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// IsNotFound reports whether err is a missing key
func (r *RedisRepository) IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
