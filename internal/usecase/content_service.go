package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// ContentService is the CRUD entry point for one kind of publishable content.
type ContentService[T any, P model.ContentPtr[T]] struct {
	repo       repository.ContentRepository[T]
	activity   *ActivityService
	gate       AccessChecker
	validate   *validator.Validate
	logger     *zap.Logger
	entityType string
}

// NewContentService creates a content service for T
func NewContentService[T any, P model.ContentPtr[T]](
	repo repository.ContentRepository[T],
	activity *ActivityService,
	gate AccessChecker,
	validate *validator.Validate,
	logger *zap.Logger,
) *ContentService[T, P] {
	return &ContentService[T, P]{
		repo:       repo,
		activity:   activity,
		gate:       gate,
		validate:   validate,
		logger:     logger,
		entityType: P(new(T)).EntityType(),
	}
}

// EntityType names the content kind, e.g. "service".
func (s *ContentService[T, P]) EntityType() string {
	return s.entityType
}

// List returns content newest first. Drafts and deleted rows are
// admin-only and must be asked for explicitly.
func (s *ContentService[T, P]) List(ctx context.Context, opts dto.ListOptions) ([]*T, error) {
	filter := repository.ContentFilter{
		Statuses: []string{model.StatusPublished},
		Category: opts.Category,
	}

	if opts.IncludeUnpublished || opts.IncludeDeleted {
		if _, err := s.gate.RequireAdmin(ctx, s.entityType+".list_unpublished"); err != nil {
			return nil, err
		}
		if opts.IncludeUnpublished {
			filter.Statuses = nil
		}
		filter.IncludeDeleted = opts.IncludeDeleted
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a live record. Drafts are reported as not found to non-admins.
func (s *ContentService[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	item, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if P(item).GetStatus() != model.StatusPublished && !s.gate.IsAdmin(ctx) {
		return nil, domainErrors.NewNotFoundError(s.entityType, id)
	}
	return item, nil
}

// GetBySlug returns a published record by slug.
func (s *ContentService[T, P]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	item, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if P(item).GetStatus() != model.StatusPublished {
		return nil, domainErrors.NewNotFoundError(s.entityType, slug)
	}
	return item, nil
}

// Create stores a new record as draft unless a status is given.
func (s *ContentService[T, P]) Create(ctx context.Context, patch dto.Patch[T]) (*T, error) {
	access, err := s.gate.RequireAdmin(ctx, s.entityType+".create")
	if err != nil {
		return nil, err
	}

	item := new(T)
	patch.Apply(item)
	p := P(item)
	p.ApplyDefaults()

	if err := validateEntity(s.validate, s.entityType, item); err != nil {
		return nil, err
	}

	slug, err := uniqueSlug(ctx, p.GetTitle(), s.repo.SlugExists)
	if err != nil {
		return nil, err
	}
	p.SetSlug(slug)

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Content created",
		zap.String("entity_type", s.entityType),
		zap.String("id", p.GetID()),
		zap.String("status", p.GetStatus()))
	s.activity.Record(ctx, access, model.ActionCreate, s.entityType, p.GetID(), map[string]interface{}{
		"title":  p.GetTitle(),
		"status": p.GetStatus(),
	})
	return item, nil
}

// Seed stores item unless content with the same slug already exists, so
// re-running a seed file is harmless. It does not consult the access gate.
func (s *ContentService[T, P]) Seed(ctx context.Context, item *T) (bool, error) {
	p := P(item)
	p.ApplyDefaults()

	if err := validateEntity(s.validate, s.entityType, item); err != nil {
		return false, err
	}

	slug := Slugify(p.GetTitle())
	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return false, err
	}
	if exists {
		s.logger.Debug("Seed skipped, slug exists",
			zap.String("entity_type", s.entityType),
			zap.String("slug", slug))
		return false, nil
	}
	p.SetSlug(slug)

	if err := s.repo.Create(ctx, item); err != nil {
		return false, err
	}
	s.activity.Record(ctx, nil, model.ActionCreate, s.entityType, p.GetID(), map[string]interface{}{
		"title":  p.GetTitle(),
		"status": p.GetStatus(),
		"seeded": true,
	})
	return true, nil
}

// Update merges patch into the stored record.
func (s *ContentService[T, P]) Update(ctx context.Context, id string, patch dto.Patch[T]) (*T, error) {
	access, err := s.gate.RequireAdmin(ctx, s.entityType+".update")
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	p := P(item)
	if err := validateEntity(s.validate, s.entityType, item); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, access, model.ActionUpdate, s.entityType, id, map[string]interface{}{
		"title":  p.GetTitle(),
		"status": p.GetStatus(),
	})
	return item, nil
}

// SetStatus toggles the publish status through the update path.
func (s *ContentService[T, P]) SetStatus(ctx context.Context, id, status string) (*T, error) {
	return s.Update(ctx, id, dto.StatusPatch[T, P]{Status: status})
}

// SoftDelete marks the record deleted. The row is kept.
func (s *ContentService[T, P]) SoftDelete(ctx context.Context, id string) error {
	access, err := s.gate.RequireAdmin(ctx, s.entityType+".delete")
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Content deleted",
		zap.String("entity_type", s.entityType),
		zap.String("id", id))
	s.activity.Record(ctx, access, model.ActionDelete, s.entityType, id, nil)
	return nil
}
