package maintenance

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	apperrors "github.com/JivitSolutions/JivIT-Solutions/pkg/errors"
)

// SiteReader returns the typed site settings.
type SiteReader interface {
	Site(ctx context.Context) (entity.SiteSettings, error)
}

// AdminChecker reports whether the caller on ctx is an admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context) bool
}

// Message is returned to public callers while maintenance mode is on.
const Message = "The site is under maintenance. Please check back soon."

// Middleware answers 503 on the routes it wraps while maintenance_mode is
// on. Admins pass through so they can preview the site.
func Middleware(settings SiteReader, admins AdminChecker, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			site, err := settings.Site(ctx)
			if err != nil {
				logger.Warn("Could not read maintenance flag", zap.Error(err))
				return next(c)
			}
			if !site.MaintenanceMode || admins.IsAdmin(ctx) {
				return next(c)
			}

			c.Response().Header().Set("Retry-After", "300")
			return c.JSON(http.StatusServiceUnavailable, apperrors.ErrorResponse{
				Error: Message,
				Code:  apperrors.ErrUnavailable,
			})
		}
	}
}
