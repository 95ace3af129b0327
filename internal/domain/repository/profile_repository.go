package repository

import (
	"context"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
)

// ProfileRepository reads and writes user profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	UpdateRole(ctx context.Context, id string, role entity.Role) error
}
