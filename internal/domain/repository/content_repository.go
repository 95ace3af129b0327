package repository

import (
	"context"
)

// ContentFilter narrows a content listing. Results are ordered newest first.
type ContentFilter struct {
	// Statuses limits results to these statuses; empty means any.
	Statuses       []string
	Category       string
	IncludeDeleted bool
	Limit          int
}

// ContentRepository persists one kind of publishable content.
type ContentRepository[T any] interface {
	List(ctx context.Context, filter ContentFilter) ([]*T, error)
	// GetByID returns a NOT_FOUND content error for missing or soft-deleted rows
	// unless includeDeleted is set.
	GetByID(ctx context.Context, id string, includeDeleted bool) (*T, error)
	GetBySlug(ctx context.Context, slug string) (*T, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	SoftDelete(ctx context.Context, id string) error
}
