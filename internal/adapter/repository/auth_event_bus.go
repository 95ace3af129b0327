package repository

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
	"github.com/JivitSolutions/JivIT-Solutions/pkg/messaging"
)

// AuthEventChannel is the pub/sub channel auth events are published on.
const AuthEventChannel = "cms:auth-events"

// redisAuthEventBus fans auth events out to every server instance.
type redisAuthEventBus struct {
	client messaging.RedisClient
	logger *zap.Logger
}

// NewRedisAuthEventBus creates an event bus on Redis pub/sub
func NewRedisAuthEventBus(client messaging.RedisClient, logger *zap.Logger) domainRepo.AuthEventBus {
	return &redisAuthEventBus{
		client: client,
		logger: logger,
	}
}

func (b *redisAuthEventBus) Publish(ctx context.Context, event entity.AuthEvent) error {
	if err := b.client.Publish(ctx, AuthEventChannel, event); err != nil {
		return fmt.Errorf("failed to publish auth event: %w", err)
	}
	return nil
}

func (b *redisAuthEventBus) Subscribe(ctx context.Context) (<-chan entity.AuthEvent, error) {
	return messaging.SubscribeJSON[entity.AuthEvent](ctx, b.client, AuthEventChannel, func(msg messaging.Message, err error) {
		b.logger.Warn("Dropping malformed auth event",
			zap.String("channel", msg.Channel),
			zap.Error(err))
	})
}

// localAuthEventBus delivers events inside one process.
type localAuthEventBus struct {
	mu          sync.Mutex
	subscribers map[chan entity.AuthEvent]struct{}
}

// NewLocalAuthEventBus creates an in-process event bus
func NewLocalAuthEventBus() domainRepo.AuthEventBus {
	return &localAuthEventBus{
		subscribers: make(map[chan entity.AuthEvent]struct{}),
	}
}

// Publish never blocks; a subscriber whose buffer is full misses the event.
func (b *localAuthEventBus) Publish(_ context.Context, event entity.AuthEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (b *localAuthEventBus) Subscribe(ctx context.Context) (<-chan entity.AuthEvent, error) {
	ch := make(chan entity.AuthEvent, 16)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subscribers, ch)
		close(ch)
		b.mu.Unlock()
	}()
	return ch, nil
}
