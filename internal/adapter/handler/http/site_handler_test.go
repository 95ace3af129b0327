package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

func TestSettingsRoutes(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{method: http.MethodGet, path: "/api/v1/settings"})
	require.Equal(t, http.StatusOK, rec.Code)
	public := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "JivIT Solutions", public[entity.SettingSiteName])
	assert.NotContains(t, public, entity.SettingNotificationEmail)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/settings", token: adminToken})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode[map[string]interface{}](t, rec), entity.SettingNotificationEmail)

	rec = api.do(t, request{
		method: http.MethodPut,
		path:   "/api/v1/admin/settings/site_name",
		token:  adminToken,
		body:   map[string]string{"value": "JivIT"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, request{
		method: http.MethodPut,
		path:   "/api/v1/admin/settings",
		token:  adminToken,
		body:   map[string]interface{}{"contact_email": "ops@example.com", "maintenance_mode": "yes"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[errorBody](t, rec).Fields, "maintenance_mode")

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/settings"})
	public = decode[map[string]interface{}](t, rec)
	assert.Equal(t, "JivIT", public[entity.SettingSiteName])
	assert.Equal(t, "hello@jivitsolutions.com", public[entity.SettingContactEmail])

	rec = api.do(t, request{
		method: http.MethodPut,
		path:   "/api/v1/admin/settings/theme",
		token:  viewerToken,
		body:   map[string]string{"value": "dark"},
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMaintenanceMode(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{
		method: http.MethodPut,
		path:   "/api/v1/admin/settings/maintenance_mode",
		token:  adminToken,
		body:   map[string]bool{"value": true},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tests := []struct {
		name   string
		req    request
		status int
	}{
		{name: "public content", req: request{method: http.MethodGet, path: "/api/v1/services"}, status: http.StatusServiceUnavailable},
		{name: "public catalog", req: request{method: http.MethodGet, path: "/api/v1/programs/catalog"}, status: http.StatusServiceUnavailable},
		{name: "viewer", req: request{method: http.MethodGet, path: "/api/v1/jobs", token: viewerToken}, status: http.StatusServiceUnavailable},
		{name: "admin preview", req: request{method: http.MethodGet, path: "/api/v1/jobs", token: adminToken}, status: http.StatusOK},
		{name: "settings stay readable", req: request{method: http.MethodGet, path: "/api/v1/settings"}, status: http.StatusOK},
		{name: "admin console", req: request{method: http.MethodGet, path: "/api/v1/admin/jobs", token: adminToken}, status: http.StatusOK},
		{name: "admin login", req: request{method: http.MethodPost, path: "/api/v1/admin/login", body: map[string]string{"email": "admin@example.com", "password": "secret"}}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, tt.req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestApplicationRoutes(t *testing.T) {
	api := newAPI(t)

	submission := map[string]string{
		"first_name":  "Ada",
		"last_name":   "Lovelace",
		"email":       "ada@example.com",
		"source_type": "Go Engineer",
	}

	rec := api.do(t, request{method: http.MethodPost, path: "/api/v1/applications", body: submission})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	application := decode[model.Application](t, rec)
	assert.Equal(t, model.ApplicationStatusNew, application.Status)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/applications", token: viewerToken})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, request{
		method: http.MethodPatch,
		path:   "/api/v1/admin/applications/" + application.ID + "/status",
		token:  adminToken,
		body:   map[string]string{"status": "accepted"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplicationStatusAccepted, decode[model.Application](t, rec).Status)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/applications?status=accepted", token: adminToken})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Application](t, rec), 1)

	rec = api.do(t, request{
		method: http.MethodPut,
		path:   "/api/v1/admin/settings",
		token:  adminToken,
		body:   map[string]bool{"enable_applications": false},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, request{method: http.MethodPost, path: "/api/v1/applications", body: submission})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode[errorBody](t, rec).Code)
}

func TestDashboardRoutes(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/admin/services",
		token:  adminToken,
		body:   map[string]string{"title": "Cloud Migration", "status": "published"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/dashboard?recent=5", token: adminToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := decode[entity.DashboardStats](t, rec)
	assert.Equal(t, 1, stats.ServiceCount)
	assert.Equal(t, 1, stats.PublishedServiceCount)
	assert.Equal(t, entity.SystemOperational, stats.SystemStatus)
	require.Len(t, stats.RecentActivity, 1)
	assert.Equal(t, model.ActionCreate, stats.RecentActivity[0].Action)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/dashboard?recent=abc", token: adminToken})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/dashboard", token: viewerToken})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/activity?limit=10", token: adminToken})
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]model.ActivityLog](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, model.EntityService, entries[0].EntityType)
	assert.Equal(t, "admin-1", entries[0].ActorID)
}
