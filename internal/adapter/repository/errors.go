package repository

import (
	"errors"

	"gorm.io/gorm"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
)

// storeError maps gorm errors onto content errors so callers can tell
// "absent" from "degraded".
func storeError(entityType, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErrors.NewNotFoundError(entityType, id)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainErrors.NewConflictError(entityType, "record already exists")
	}
	return domainErrors.NewStoreUnavailableError(entityType, err)
}
