package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// SessionStore persists the signed-in session on the response.
type SessionStore interface {
	Save(c echo.Context, s *entity.Session) error
	Clear(c echo.Context) error
}

// AuthHandler signs users in and out.
type AuthHandler struct {
	service  *usecase.AuthService
	sessions SessionStore
	logger   *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *usecase.AuthService, sessions SessionStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.SignInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.service.SignIn(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, result)
}

// AdminLogin only succeeds for admins; anyone else is signed out and gets 403.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req dto.SignInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.service.AdminSignIn(c.Request().Context(), req)
	if err != nil {
		if clearErr := h.sessions.Clear(c); clearErr != nil {
			h.logger.Warn("Failed to clear session cookie", zap.Error(clearErr))
		}
		return err
	}
	return h.respond(c, http.StatusOK, result)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.SignUpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.service.SignUp(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, result)
}

// Logout always clears the cookie. The token is revoked locally even when
// the identity provider cannot be reached.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.service.SignOut(ctx, entity.SessionTokenFromContext(ctx)); err != nil {
		h.logger.Warn("Sign-out incomplete", zap.Error(err))
	}
	if err := h.sessions.Clear(c); err != nil {
		h.logger.Warn("Failed to clear session cookie", zap.Error(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	access, err := h.service.Me(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, access)
}

func (h *AuthHandler) respond(c echo.Context, status int, result *usecase.AuthResult) error {
	if err := h.sessions.Save(c, result.Session); err != nil {
		h.logger.Warn("Failed to save session cookie", zap.Error(err))
	}
	return c.JSON(status, result)
}
