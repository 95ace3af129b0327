package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

var errCacheMiss = errors.New("cache: key not found")

type memoryItem struct {
	value     string
	expiresAt time.Time
}

// MemoryRepository is an in-process CacheRepository used when Redis is disabled.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

// NewMemoryRepository creates an empty in-process cache
func NewMemoryRepository() repository.CacheRepository {
	return &MemoryRepository{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

func (m *MemoryRepository) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	item := memoryItem{value: value}
	if expiration > 0 {
		item.expiresAt = m.now().Add(expiration)
	}

	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return "", errCacheMiss
	}
	if !item.expiresAt.IsZero() && m.now().After(item.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return "", errCacheMiss
	}
	return item.value, nil
}

func (m *MemoryRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) IsNotFound(err error) bool {
	return errors.Is(err, errCacheMiss)
}
