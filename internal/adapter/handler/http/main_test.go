package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	handler "github.com/JivitSolutions/JivIT-Solutions/internal/adapter/handler/http"
	"github.com/JivitSolutions/JivIT-Solutions/internal/adapter/repository"
	"github.com/JivitSolutions/JivIT-Solutions/internal/app"
	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/cache"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/database"
	infrahttp "github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/http"
	"github.com/JivitSolutions/JivIT-Solutions/internal/middleware/auth"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

const (
	adminToken  = "token-admin-1"
	viewerToken = "token-viewer-1"
)

// stubIdentity signs in known users with the password "secret".
type stubIdentity struct {
	users map[string]*entity.UserIdentity
}

func newStubIdentity() *stubIdentity {
	expires := time.Now().Add(time.Hour)
	return &stubIdentity{users: map[string]*entity.UserIdentity{
		adminToken:  {ID: "admin-1", Email: "admin@example.com", ExpiresAt: expires},
		viewerToken: {ID: "viewer-1", Email: "viewer@example.com", ExpiresAt: expires},
	}}
}

func (s *stubIdentity) GetCurrentUser(_ context.Context, token string) (*entity.UserIdentity, error) {
	return s.users[token], nil
}

func (s *stubIdentity) SignInWithPassword(_ context.Context, email, password string) (*entity.Session, error) {
	for token, user := range s.users {
		if user.Email == email && password == "secret" {
			return &entity.Session{AccessToken: token, TokenType: "bearer", User: *user}, nil
		}
	}
	return nil, domainErrors.NewInvalidCredentialsError(nil)
}

func (s *stubIdentity) SignUp(_ context.Context, email, _ string, _ entity.ProfileFields) (*entity.Session, error) {
	user := &entity.UserIdentity{ID: "new-" + email, Email: email, ExpiresAt: time.Now().Add(time.Hour)}
	token := "token-" + user.ID
	s.users[token] = user
	return &entity.Session{AccessToken: token, User: *user}, nil
}

func (s *stubIdentity) SignOut(context.Context, string) error { return nil }

type apiFixture struct {
	e     *echo.Echo
	repos *database.Repositories
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	logger := zap.NewNop()

	db, err := database.NewConnection(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, logger)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, logger))
	t.Cleanup(func() { _ = database.Close(db, logger) })

	repos := database.NewRepositories(db, logger)
	ctx := context.Background()
	require.NoError(t, repos.Profiles.Create(ctx, &entity.Profile{ID: "admin-1", Email: "admin@example.com", Role: entity.RoleAdmin}))
	require.NoError(t, repos.Profiles.Create(ctx, &entity.Profile{ID: "viewer-1", Email: "viewer@example.com", Role: entity.RoleViewer}))

	uc := app.NewUseCases(app.Dependencies{
		Repos:          repos,
		Identity:       newStubIdentity(),
		Cache:          cache.NewMemoryRepository(),
		Events:         repository.NewLocalAuthEventBus(),
		AccessTTL:      time.Minute,
		RecentActivity: 8,
	}, logger)

	sessions := auth.NewSessionTokenMiddleware(config.SessionConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		CookieName: "jivit_session",
		MaxAge:     3600,
	}, logger)

	server := infrahttp.NewServer(
		infrahttp.WithLogger(logger),
		infrahttp.WithValidator(handler.NewCustomValidator(usecase.NewValidator())),
	)
	server.RegisterRoutes(func(e *echo.Echo) {
		app.MountAPI(e, uc, sessions, logger)
	})

	return &apiFixture{e: server.Echo(), repos: repos}
}

type request struct {
	method  string
	path    string
	token   string
	body    interface{}
	rawBody string
	cookies []*http.Cookie
}

func (f *apiFixture) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	switch {
	case r.rawBody != "":
		body.WriteString(r.rawBody)
	case r.body != nil:
		require.NoError(t, json.NewEncoder(&body).Encode(r.body))
	}

	req := httptest.NewRequest(r.method, r.path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if r.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+r.token)
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type errorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}
