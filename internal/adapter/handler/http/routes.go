package http

import (
	"github.com/labstack/echo/v4"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Services     *ContentHandler[model.Service, *model.Service, dto.ServicePatch]
	Jobs         *ContentHandler[model.JobOpening, *model.JobOpening, dto.JobOpeningPatch]
	Programs     *ContentHandler[model.Program, *model.Program, dto.ProgramPatch]
	Applications *ApplicationHandler
	Settings     *SettingsHandler
	Catalog      *CatalogHandler
	Dashboard    *DashboardHandler
	Auth         *AuthHandler
}

// Middleware applied by Register.
type Middleware struct {
	// Session runs on every API route and resolves the caller's token.
	Session []echo.MiddlewareFunc
	// Maintenance guards the public content routes.
	Maintenance echo.MiddlewareFunc
}

// Register mounts the API under /api/v1. Admin checks happen in the
// usecases, so the admin group carries no extra middleware.
func (h *Handlers) Register(e *echo.Echo, mw Middleware) {
	v1 := e.Group("/api/v1", mw.Session...)

	public := v1.Group("")
	if mw.Maintenance != nil {
		public.Use(mw.Maintenance)
	}
	public.GET("/services/catalog", h.Catalog.Services)
	public.GET("/programs/catalog", h.Catalog.Programs)
	h.Services.RegisterPublic(public, "/services")
	h.Jobs.RegisterPublic(public, "/jobs")
	h.Programs.RegisterPublic(public, "/programs")
	public.POST("/applications", h.Applications.Submit)

	v1.GET("/settings", h.Settings.GetPublic)
	v1.POST("/auth/login", h.Auth.Login)
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/logout", h.Auth.Logout)
	v1.GET("/auth/me", h.Auth.Me)
	v1.POST("/admin/login", h.Auth.AdminLogin)

	admin := v1.Group("/admin")
	h.Services.RegisterAdmin(admin, "/services")
	h.Jobs.RegisterAdmin(admin, "/jobs")
	h.Programs.RegisterAdmin(admin, "/programs")
	admin.GET("/applications", h.Applications.List)
	admin.PATCH("/applications/:id/status", h.Applications.UpdateStatus)
	admin.GET("/settings", h.Settings.GetAll)
	admin.PUT("/settings", h.Settings.UpdateAll)
	admin.PUT("/settings/:key", h.Settings.UpdateOne)
	admin.GET("/dashboard", h.Dashboard.Stats)
	admin.GET("/activity", h.Dashboard.Activity)
}
