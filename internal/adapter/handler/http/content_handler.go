package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// ContentHandler serves one content type. D is the create/update payload.
type ContentHandler[T any, P model.ContentPtr[T], D dto.Patch[T]] struct {
	service *usecase.ContentService[T, P]
	logger  *zap.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler[T any, P model.ContentPtr[T], D dto.Patch[T]](service *usecase.ContentService[T, P], logger *zap.Logger) *ContentHandler[T, P, D] {
	return &ContentHandler[T, P, D]{
		service: service,
		logger:  logger,
	}
}

// RegisterPublic adds the read routes under path.
func (h *ContentHandler[T, P, D]) RegisterPublic(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	g.GET(path+"/slug/:slug", h.GetBySlug)
}

// RegisterAdmin adds the full CRUD routes under path.
func (h *ContentHandler[T, P, D]) RegisterAdmin(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PATCH(path+"/:id", h.Update)
	g.PATCH(path+"/:id/status", h.SetStatus)
	g.DELETE(path+"/:id", h.Delete)
}

// List returns published records, newest first. Admins may pass
// include_unpublished and include_deleted.
func (h *ContentHandler[T, P, D]) List(c echo.Context) error {
	var opts dto.ListOptions
	if err := bind(c, &opts); err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ContentHandler[T, P, D]) Get(c echo.Context) error {
	item, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T, P, D]) GetBySlug(c echo.Context) error {
	item, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T, P, D]) Create(c echo.Context) error {
	var patch D
	if err := bind(c, &patch); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler[T, P, D]) Update(c echo.Context) error {
	var patch D
	if err := bind(c, &patch); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ContentHandler[T, P, D]) SetStatus(c echo.Context) error {
	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T, P, D]) Delete(c echo.Context) error {
	if err := h.service.SoftDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
