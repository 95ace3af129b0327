package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// ApplicationService handles inbound applications and their review status.
type ApplicationService struct {
	repo     repository.ApplicationRepository
	settings *SettingsService
	notifier ApplicationNotifier
	gate     AccessChecker
	validate *validator.Validate
	logger   *zap.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(
	repo repository.ApplicationRepository,
	settings *SettingsService,
	notifier ApplicationNotifier,
	gate AccessChecker,
	validate *validator.Validate,
	logger *zap.Logger,
) *ApplicationService {
	if notifier == nil {
		notifier = NewNoopNotifier()
	}
	return &ApplicationService{
		repo:     repo,
		settings: settings,
		notifier: notifier,
		gate:     gate,
		validate: validate,
		logger:   logger,
	}
}

// List returns applications newest first. Admin only.
func (s *ApplicationService) List(ctx context.Context, filter dto.ApplicationFilter) ([]*model.Application, error) {
	if _, err := s.gate.RequireAdmin(ctx, "application.list"); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus moves an application to any status. Admin only. Review is
// a workflow, so nothing is written to the activity log.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, req dto.UpdateApplicationStatusRequest) (*model.Application, error) {
	access, err := s.gate.RequireAdmin(ctx, "application.update_status")
	if err != nil {
		return nil, err
	}

	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := validateEntity(s.validate, model.EntityApplication, req); err != nil {
		return nil, err
	}

	application, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Application status updated",
		zap.String("application_id", id),
		zap.String("status", req.Status),
		zap.String("actor_id", access.UserID))
	return application, nil
}

// Submit stores a public application when applications are enabled and
// notifies the site owner. Notification failures are only logged.
func (s *ApplicationService) Submit(ctx context.Context, req dto.SubmitApplicationRequest) (*model.Application, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.SourceType = strings.TrimSpace(req.SourceType)
	if err := validateEntity(s.validate, model.EntityApplication, req); err != nil {
		return nil, err
	}

	site, err := s.settings.Site(ctx)
	if err != nil {
		return nil, err
	}
	if !site.EnableApplications {
		return nil, domainErrors.NewApplicationsClosedError()
	}

	application := &model.Application{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      strings.TrimSpace(req.Phone),
		Message:    strings.TrimSpace(req.Message),
		ResumeURL:  strings.TrimSpace(req.ResumeURL),
		SourceType: req.SourceType,
		Status:     model.ApplicationStatusNew,
	}
	if err := s.repo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info("Application received",
		zap.String("application_id", application.ID),
		zap.String("source_type", application.SourceType))

	if site.NotificationEmail != "" {
		if err := s.notifier.NotifyNewApplication(ctx, site.NotificationEmail, application); err != nil {
			s.logger.Warn("Failed to send application notice",
				zap.String("application_id", application.ID),
				zap.Error(err))
		}
	}
	return application, nil
}
