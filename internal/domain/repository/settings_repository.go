package repository

import (
	"context"
	"encoding/json"
)

// SettingsRepository stores overrides of the site settings.
type SettingsRepository interface {
	// GetAll returns every stored key with its raw JSON value.
	GetAll(ctx context.Context) (map[string]json.RawMessage, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
	// UpsertMany writes every key in one transaction.
	UpsertMany(ctx context.Context, values map[string]json.RawMessage) error
}
