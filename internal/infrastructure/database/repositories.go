package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JivitSolutions/JivIT-Solutions/internal/adapter/repository"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// Repositories holds all repository instances backed by the database
type Repositories struct {
	Services     domainRepo.ContentRepository[model.Service]
	JobOpenings  domainRepo.ContentRepository[model.JobOpening]
	Programs     domainRepo.ContentRepository[model.Program]
	Applications domainRepo.ApplicationRepository
	Settings     domainRepo.SettingsRepository
	Activity     domainRepo.ActivityLogRepository
	Profiles     domainRepo.ProfileRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Services:     repository.NewContentRepository[model.Service](db, logger),
		JobOpenings:  repository.NewContentRepository[model.JobOpening](db, logger),
		Programs:     repository.NewContentRepository[model.Program](db, logger),
		Applications: repository.NewApplicationRepository(db, logger),
		Settings:     repository.NewSettingsRepository(db, logger),
		Activity:     repository.NewActivityLogRepository(db, logger),
		Profiles:     repository.NewProfileRepository(db, logger),
	}
}
