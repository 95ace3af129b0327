package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/pkg/logger"
)

const healthTimeout = 2 * time.Second

// Server wraps the echo instance that serves the API.
type Server struct {
	echo         *echo.Echo
	logger       *zap.Logger
	host         string
	port         int
	allowOrigins []string
	health       func(ctx context.Context) error
	validator    echo.Validator
}

// ServerOption configures a Server.
type ServerOption func(*Server)

func WithAddress(host string, port int) ServerOption {
	return func(s *Server) {
		s.host = host
		s.port = port
	}
}

func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAllowOrigins restricts CORS to origins. The default allows any origin.
func WithAllowOrigins(origins ...string) ServerOption {
	return func(s *Server) {
		s.allowOrigins = origins
	}
}

// WithHealthCheck makes /health answer 503 whenever check fails.
func WithHealthCheck(check func(ctx context.Context) error) ServerOption {
	return func(s *Server) {
		s.health = check
	}
}

func WithValidator(v echo.Validator) ServerOption {
	return func(s *Server) {
		s.validator = v
	}
}

// NewServer creates the HTTP server
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		echo:   echo.New(),
		logger: zap.NewNop(),
		port:   8080,
	}
	for _, opt := range opts {
		opt(s)
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Validator = s.validator

	logger.WithEchoLogger(e, s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	corsConfig := middleware.DefaultCORSConfig
	corsConfig.AllowCredentials = len(s.allowOrigins) > 0
	if len(s.allowOrigins) > 0 {
		corsConfig.AllowOrigins = s.allowOrigins
	}
	e.Use(middleware.CORSWithConfig(corsConfig))
	e.Use(logger.NewEchoRequestLogger(s.logger))

	e.GET("/health", s.handleHealth)

	return s
}

func (s *Server) handleHealth(c echo.Context) error {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()
		if err := s.health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// RegisterRoutes hands the echo instance to registerFunc.
func (s *Server) RegisterRoutes(registerFunc func(e *echo.Echo)) {
	registerFunc(s.echo)
}

// Start blocks until the server stops. A clean shutdown returns nil.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := s.echo.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
