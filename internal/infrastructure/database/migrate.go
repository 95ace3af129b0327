package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// Models lists every table owned by the content store.
func Models() []interface{} {
	return []interface{}{
		&model.Service{},
		&model.JobOpening{},
		&model.Program{},
		&model.Application{},
		&model.Setting{},
		&model.ActivityLog{},
		&model.Profile{},
	}
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := db.AutoMigrate(Models()...); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes adds the partial indexes behind the public listings
func createCustomIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_services_published ON services (created_at DESC) WHERE status = 'published' AND deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_job_openings_published ON job_openings (created_at DESC) WHERE status = 'published' AND deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_programs_published ON programs (created_at DESC) WHERE status = 'published' AND deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_applications_new ON applications (created_at DESC) WHERE status = 'new'`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
