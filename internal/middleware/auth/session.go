package auth

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
	userIDKey       = "user_id"
)

// SessionTokenMiddleware puts the caller's access token on the request
// context. The Authorization header wins over the session cookie.
type SessionTokenMiddleware struct {
	cfg    config.SessionConfig
	store  sessions.Store
	logger *zap.Logger
}

// NewSessionTokenMiddleware creates the middleware with a cookie store keyed by cfg.Secret
func NewSessionTokenMiddleware(cfg config.SessionConfig, logger *zap.Logger) *SessionTokenMiddleware {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionTokenMiddleware{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// Store installs the session store on the echo context.
func (m *SessionTokenMiddleware) Store() echo.MiddlewareFunc {
	return session.Middleware(m.store)
}

// Handle resolves the token and stores it with entity.ContextWithSessionToken.
func (m *SessionTokenMiddleware) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := m.Token(c); token != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(entity.ContextWithSessionToken(req.Context(), token)))
			}
			return next(c)
		}
	}
}

// Token returns the bearer token of the request, falling back to the cookie.
func (m *SessionTokenMiddleware) Token(c echo.Context) string {
	if token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); token != "" {
		return token
	}

	sess, err := session.Get(m.cfg.CookieName, c)
	if err != nil {
		m.logger.Debug("Ignoring unreadable session cookie",
			zap.String("ip", c.RealIP()),
			zap.Error(err))
		return ""
	}
	token, _ := sess.Values[accessTokenKey].(string)
	return token
}

// Save writes the signed-in session to the cookie.
func (m *SessionTokenMiddleware) Save(c echo.Context, s *entity.Session) error {
	if !s.HasToken() {
		return nil
	}
	sess, err := session.Get(m.cfg.CookieName, c)
	if err != nil && sess == nil {
		return err
	}
	sess.Values[accessTokenKey] = s.AccessToken
	sess.Values[refreshTokenKey] = s.RefreshToken
	sess.Values[userIDKey] = s.User.ID
	return sess.Save(c.Request(), c.Response())
}

// Clear expires the session cookie.
func (m *SessionTokenMiddleware) Clear(c echo.Context) error {
	sess, err := session.Get(m.cfg.CookieName, c)
	if err != nil && sess == nil {
		return err
	}
	sess.Values = make(map[interface{}]interface{})
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return sess.Save(c.Request(), c.Response())
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
