package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// SettingsHandler reads and writes site settings.
type SettingsHandler struct {
	service *usecase.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service *usecase.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetPublic returns every setting except the owner's notification address.
func (h *SettingsHandler) GetPublic(c echo.Context) error {
	settings, err := h.service.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	delete(settings, entity.SettingNotificationEmail)
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) GetAll(c echo.Context) error {
	settings, err := h.service.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateAll saves every key of the body in one transaction.
func (h *SettingsHandler) UpdateAll(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.service.UpdateSettings(ctx, req); err != nil {
		return err
	}

	settings, err := h.service.GetSettings(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateOne(c echo.Context) error {
	var req dto.UpdateSettingRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	key := c.Param("key")
	if err := h.service.UpdateSetting(c.Request().Context(), key, req.Value); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"key":   key,
		"value": req.Value,
	})
}
