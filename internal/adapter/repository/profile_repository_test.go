package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/adapter/repository"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
)

func TestProfileRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProfileRepository(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Profile{ID: "u1", Email: "u1@example.com", FullName: "User One"}))

	profile, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, profile.Role)
	assert.Equal(t, "User One", profile.FullName)

	require.NoError(t, repo.UpdateRole(ctx, "u1", entity.RoleAdmin))
	profile, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)

	_, err = repo.GetByID(ctx, "u2")
	assert.True(t, domainErrors.IsNotFound(err))
	assert.True(t, domainErrors.IsNotFound(repo.UpdateRole(ctx, "u2", entity.RoleAdmin)))
}
