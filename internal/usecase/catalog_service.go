package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// CatalogService serves published content grouped by category.
type CatalogService struct {
	services *ContentService[model.Service, *model.Service]
	programs *ContentService[model.Program, *model.Program]
	settings *SettingsService
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	services *ContentService[model.Service, *model.Service],
	programs *ContentService[model.Program, *model.Program],
	settings *SettingsService,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		services: services,
		programs: programs,
		settings: settings,
		logger:   logger,
	}
}

// Services groups published services. A failed source yields an empty catalog.
func (s *CatalogService) Services(ctx context.Context) []entity.CategoryGroup[*model.Service] {
	items, err := s.services.List(ctx, dto.ListOptions{})
	if err != nil {
		s.logger.Error("Failed to load services for catalog", zap.Error(err))
		items = nil
	}

	categories := s.categories(ctx, func(site entity.SiteSettings) []entity.CategoryDescriptor {
		return site.ServiceCategories
	}, entity.DefaultServiceCategories)
	return GroupByCategory(items, categories, entity.DefaultServiceCategoryID)
}

// Programs groups published programs. A failed source yields an empty catalog.
func (s *CatalogService) Programs(ctx context.Context) []entity.CategoryGroup[*model.Program] {
	items, err := s.programs.List(ctx, dto.ListOptions{})
	if err != nil {
		s.logger.Error("Failed to load programs for catalog", zap.Error(err))
		items = nil
	}

	categories := s.categories(ctx, func(site entity.SiteSettings) []entity.CategoryDescriptor {
		return site.ProgramCategories
	}, entity.DefaultProgramCategories)
	return GroupByCategory(items, categories, entity.DefaultProgramCategoryID)
}

// categories falls back to the built-in list when settings are unreadable
// or configure none.
func (s *CatalogService) categories(
	ctx context.Context,
	pick func(entity.SiteSettings) []entity.CategoryDescriptor,
	defaults func() []entity.CategoryDescriptor,
) []entity.CategoryDescriptor {
	site, err := s.settings.Site(ctx)
	if err != nil {
		s.logger.Warn("Using default categories", zap.Error(err))
		return defaults()
	}
	if configured := pick(site); len(configured) > 0 {
		return configured
	}
	return defaults()
}
