package app

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	handler "github.com/JivitSolutions/JivIT-Solutions/internal/adapter/handler/http"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/middleware/auth"
	"github.com/JivitSolutions/JivIT-Solutions/internal/middleware/maintenance"
)

// NewHandlers builds the HTTP handlers on top of uc.
func NewHandlers(uc *UseCases, sessions handler.SessionStore, logger *zap.Logger) *handler.Handlers {
	return &handler.Handlers{
		Services:     handler.NewContentHandler[model.Service, *model.Service, dto.ServicePatch](uc.Services, logger),
		Jobs:         handler.NewContentHandler[model.JobOpening, *model.JobOpening, dto.JobOpeningPatch](uc.Jobs, logger),
		Programs:     handler.NewContentHandler[model.Program, *model.Program, dto.ProgramPatch](uc.Programs, logger),
		Applications: handler.NewApplicationHandler(uc.Applications),
		Settings:     handler.NewSettingsHandler(uc.Settings),
		Catalog:      handler.NewCatalogHandler(uc.Catalog),
		Dashboard:    handler.NewDashboardHandler(uc.Dashboard, uc.Activity),
		Auth:         handler.NewAuthHandler(uc.Auth, sessions, logger),
	}
}

// MountAPI registers every API route on e with the session and
// maintenance middleware in place.
func MountAPI(e *echo.Echo, uc *UseCases, sessions *auth.SessionTokenMiddleware, logger *zap.Logger) {
	NewHandlers(uc, sessions, logger).Register(e, handler.Middleware{
		Session:     []echo.MiddlewareFunc{sessions.Store(), sessions.Handle()},
		Maintenance: maintenance.Middleware(uc.Settings, uc.Gate, logger),
	})
}
