package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// CatalogHandler serves published content grouped by category.
type CatalogHandler struct {
	service *usecase.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *usecase.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Services(c.Request().Context()))
}

func (h *CatalogHandler) Programs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Programs(c.Request().Context()))
}
