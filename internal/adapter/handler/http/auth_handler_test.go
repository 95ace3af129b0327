package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

func sessionCookie(t *testing.T, cookies []*http.Cookie) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == "jivit_session" {
			return c
		}
	}
	t.Fatalf("no session cookie in %v", cookies)
	return nil
}

func TestAuthRoutes_CookieSession(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/auth/login",
		body:   map[string]string{"email": "admin@example.com", "password": "secret"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decode[usecase.AuthResult](t, rec)
	require.NotNil(t, result.Access)
	assert.Equal(t, entity.RoleAdmin, result.Access.Role)
	cookie := sessionCookie(t, rec.Result().Cookies())

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/auth/me", cookies: []*http.Cookie{cookie}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleAdmin, decode[entity.Access](t, rec).Role)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/dashboard", cookies: []*http.Cookie{cookie}})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, request{method: http.MethodPost, path: "/api/v1/auth/logout", cookies: []*http.Cookie{cookie}})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Less(t, sessionCookie(t, rec.Result().Cookies()).MaxAge, 0)

	// The old cookie still carries the revoked token.
	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/auth/me", cookies: []*http.Cookie{cookie}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleAnonymous, decode[entity.Access](t, rec).Role)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/admin/dashboard", token: adminToken})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthRoutes_AdminLogin(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]string
		status  int
		message string
	}{
		{
			name:   "admin",
			body:   map[string]string{"email": "admin@example.com", "password": "secret"},
			status: http.StatusOK,
		},
		{
			name:    "viewer is turned away",
			body:    map[string]string{"email": "viewer@example.com", "password": "secret"},
			status:  http.StatusForbidden,
			message: "Access Denied",
		},
		{
			name:   "wrong password",
			body:   map[string]string{"email": "admin@example.com", "password": "nope"},
			status: http.StatusUnauthorized,
		},
		{
			name:   "missing email",
			body:   map[string]string{"password": "secret"},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newAPI(t)
			rec := api.do(t, request{method: http.MethodPost, path: "/api/v1/admin/login", body: tt.body})
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.message != "" {
				assert.Contains(t, decode[errorBody](t, rec).Error, tt.message)
			}
		})
	}
}

func TestAuthRoutes_ViewerRevokedAfterAdminLogin(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/admin/login",
		body:   map[string]string{"email": "viewer@example.com", "password": "secret"},
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, request{method: http.MethodGet, path: "/api/v1/auth/me", token: viewerToken})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleAnonymous, decode[entity.Access](t, rec).Role)
}

func TestAuthRoutes_Register(t *testing.T) {
	api := newAPI(t)

	rec := api.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/auth/register",
		body:   map[string]string{"email": "new@example.com", "password": "longenough", "full_name": "New User"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decode[usecase.AuthResult](t, rec)
	require.NotNil(t, result.Access)
	assert.Equal(t, entity.RoleViewer, result.Access.Role)

	rec = api.do(t, request{
		method: http.MethodPost,
		path:   "/api/v1/admin/services",
		token:  result.Session.AccessToken,
		body:   map[string]string{"title": "Cloud Migration"},
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
