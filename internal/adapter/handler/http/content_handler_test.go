package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

func TestContentRoutes_PublishFlow(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/admin/services",
		token:  adminToken,
		body:   map[string]interface{}{"title": "Cloud Migration", "category": "it-solutions", "benefits": []string{"Lower cost", " "}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Service](t, rec)
	assert.Equal(t, model.StatusDraft, created.Status)
	assert.Equal(t, "cloud-migration", created.Slug)
	assert.Equal(t, []string{"Lower cost"}, []string(created.Benefits))

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/services"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Service](t, rec))

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/services/" + created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, request{
		method: http.MethodPatch,
		path:   "/api/v1/admin/services/" + created.ID + "/status",
		token:  adminToken,
		body:   map[string]string{"status": "published"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/services"})
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]model.Service](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/services/slug/cloud-migration"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/services/catalog"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cloud Migration")

	rec = api.do(t, request{method: http.MethodDelete, path: "/api/v1/admin/services/" + created.ID, token: adminToken})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/services/" + created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, request{
		method: http.MethodGet,
		path:   "/api/v1/admin/services?include_unpublished=true&include_deleted=true",
		token:  adminToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]model.Service](t, rec)
	require.Len(t, all, 1)
	assert.True(t, all[0].DeletedAt.Valid)
}

func TestContentRoutes_Errors(t *testing.T) {
	api := newAPI(t)

	tests := []struct {
		name   string
		req    request
		status int
		code   string
		field  string
	}{
		{
			name:   "anonymous create",
			req:    request{method: http.MethodPost, path: "/api/v1/admin/jobs", body: map[string]string{"title": "Go Engineer"}},
			status: http.StatusForbidden,
			code:   "UNAUTHORIZED",
		},
		{
			name:   "viewer create",
			req:    request{method: http.MethodPost, path: "/api/v1/admin/jobs", token: viewerToken, body: map[string]string{"title": "Go Engineer"}},
			status: http.StatusForbidden,
			code:   "UNAUTHORIZED",
		},
		{
			name:   "viewer lists drafts",
			req:    request{method: http.MethodGet, path: "/api/v1/programs?include_unpublished=true", token: viewerToken},
			status: http.StatusForbidden,
			code:   "UNAUTHORIZED",
		},
		{
			name:   "missing title",
			req:    request{method: http.MethodPost, path: "/api/v1/admin/programs", token: adminToken, body: map[string]string{"subtitle": "x"}},
			status: http.StatusBadRequest,
			code:   "INVALID_ARGUMENT",
			field:  "title",
		},
		{
			name:   "bad job type",
			req:    request{method: http.MethodPost, path: "/api/v1/admin/jobs", token: adminToken, body: map[string]string{"title": "Go Engineer", "type": "gig"}},
			status: http.StatusBadRequest,
			code:   "INVALID_ARGUMENT",
			field:  "type",
		},
		{
			name:   "malformed body",
			req:    request{method: http.MethodPost, path: "/api/v1/admin/services", token: adminToken, rawBody: `{"title":`},
			status: http.StatusBadRequest,
			code:   "INVALID_ARGUMENT",
		},
		{
			name:   "unknown id",
			req:    request{method: http.MethodPatch, path: "/api/v1/admin/services/missing", token: adminToken, body: map[string]string{"title": "x"}},
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "status without value",
			req:    request{method: http.MethodPatch, path: "/api/v1/admin/services/missing/status", token: adminToken, body: map[string]string{}},
			status: http.StatusBadRequest,
			code:   "INVALID_ARGUMENT",
			field:  "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, tt.req)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			body := decode[errorBody](t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
			if tt.field != "" {
				assert.Contains(t, body.Fields, tt.field)
			}
		})
	}
}

func TestContentRoutes_JobDefaults(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/admin/jobs",
		token:  adminToken,
		body:   map[string]string{"title": "Go Engineer", "type": "Full_Time"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	job := decode[model.JobOpening](t, rec)
	assert.Equal(t, model.DefaultJobDepartment, job.Department)
	assert.Equal(t, model.DefaultJobLocation, job.Location)
	assert.Equal(t, model.JobTypeFullTime, job.Type)
}
