package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// DashboardHandler serves the admin dashboard and the activity feed.
type DashboardHandler struct {
	dashboard *usecase.DashboardService
	activity  *usecase.ActivityService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *usecase.DashboardService, activity *usecase.ActivityService) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		activity:  activity,
	}
}

// Stats answers 200 even when sources failed; see degraded_sources.
func (h *DashboardHandler) Stats(c echo.Context) error {
	recent, err := queryInt(c, "recent")
	if err != nil {
		return err
	}

	stats, err := h.dashboard.ComputeStats(c.Request().Context(), recent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Activity(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	entries, err := h.activity.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
