package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// ApplicationHandler serves public submissions and the admin review queue.
type ApplicationHandler struct {
	service *usecase.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(service *usecase.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Submit stores a public application. Answers 403 when applications are closed.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req dto.SubmitApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	application, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	var filter dto.ApplicationFilter
	if err := bind(c, &filter); err != nil {
		return err
	}

	applications, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateApplicationStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	application, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, application)
}
