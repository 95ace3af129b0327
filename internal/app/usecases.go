package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/database"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// Dependencies are the adapters the usecases are built from.
type Dependencies struct {
	Repos    *database.Repositories
	Identity repository.IdentityProvider
	Cache    repository.CacheRepository
	Events   repository.AuthEventBus
	Notifier usecase.ApplicationNotifier

	// AccessTTL bounds how long a resolved role stays cached.
	AccessTTL time.Duration
	// RecentActivity is the dashboard's default activity count.
	RecentActivity int
}

// UseCases holds every usecase of the service
type UseCases struct {
	Gate         *usecase.AccessGate
	Activity     *usecase.ActivityService
	Services     *usecase.ContentService[model.Service, *model.Service]
	Jobs         *usecase.ContentService[model.JobOpening, *model.JobOpening]
	Programs     *usecase.ContentService[model.Program, *model.Program]
	Settings     *usecase.SettingsService
	Applications *usecase.ApplicationService
	Catalog      *usecase.CatalogService
	Dashboard    *usecase.DashboardService
	Auth         *usecase.AuthService
}

// NewUseCases wires the usecases. The access gate is shared by all of them.
func NewUseCases(deps Dependencies, logger *zap.Logger) *UseCases {
	repos := deps.Repos
	validate := usecase.NewValidator()

	uc := &UseCases{}
	uc.Gate = usecase.NewAccessGate(
		deps.Identity,
		repos.Profiles,
		deps.Cache,
		deps.Events,
		deps.AccessTTL,
		logger.Named("access"),
	)
	uc.Activity = usecase.NewActivityService(repos.Activity, uc.Gate, logger)

	uc.Services = usecase.NewContentService[model.Service](repos.Services, uc.Activity, uc.Gate, validate, logger)
	uc.Jobs = usecase.NewContentService[model.JobOpening](repos.JobOpenings, uc.Activity, uc.Gate, validate, logger)
	uc.Programs = usecase.NewContentService[model.Program](repos.Programs, uc.Activity, uc.Gate, validate, logger)

	uc.Settings = usecase.NewSettingsService(repos.Settings, uc.Activity, uc.Gate, validate, logger)
	uc.Applications = usecase.NewApplicationService(repos.Applications, uc.Settings, deps.Notifier, uc.Gate, validate, logger)
	uc.Catalog = usecase.NewCatalogService(uc.Services, uc.Programs, uc.Settings, logger)
	uc.Dashboard = usecase.NewDashboardService(
		repos.Services,
		repos.JobOpenings,
		repos.Applications,
		repos.Activity,
		uc.Gate,
		deps.RecentActivity,
		logger.Named("dashboard"),
	)
	uc.Auth = usecase.NewAuthService(deps.Identity, repos.Profiles, uc.Gate, validate, logger.Named("auth"))

	return uc
}
