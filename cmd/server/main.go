package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	handler "github.com/JivitSolutions/JivIT-Solutions/internal/adapter/handler/http"
	"github.com/JivitSolutions/JivIT-Solutions/internal/app"
	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/database"
	grpcServer "github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/grpc"
	httpServer "github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/http"
	"github.com/JivitSolutions/JivIT-Solutions/internal/middleware/auth"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
	"github.com/JivitSolutions/JivIT-Solutions/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if _, err := config.LoadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	// Missing required settings stop the process here.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting CMS service",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.String("environment", cfg.Service.Environment),
	)

	infra, err := app.NewInfrastructure(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize infrastructure", zap.Error(err))
	}
	defer infra.Close()

	if err := database.Migrate(infra.DB, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	useCases := app.NewUseCases(infra.Dependencies(cfg, app.SupabaseIdentity(cfg, zapLogger)), zapLogger)
	if err := useCases.Gate.Start(ctx); err != nil {
		zapLogger.Fatal("Failed to subscribe to auth events", zap.Error(err))
	}

	sessionCfg := cfg.Session
	secret, fellBack := cfg.SessionSecret()
	if fellBack {
		zapLogger.Warn("session.secret is not set, signing session cookies with the Supabase JWT secret",
			zap.String("env", config.EnvName("session.secret")))
	}
	sessionCfg.Secret = secret
	sessions := auth.NewSessionTokenMiddleware(sessionCfg, zapLogger)

	httpSrv := httpServer.NewServer(
		httpServer.WithAddress(cfg.Server.HTTP.Host, cfg.Server.HTTP.Port),
		httpServer.WithLogger(zapLogger),
		httpServer.WithAllowOrigins(cfg.Service.ClientURL),
		httpServer.WithHealthCheck(infra.Ping),
		httpServer.WithValidator(handler.NewCustomValidator(usecase.NewValidator())),
	)
	httpSrv.RegisterRoutes(func(e *echo.Echo) {
		app.MountAPI(e, useCases, sessions, zapLogger)
	})

	grpcSrv := grpcServer.NewServer(
		grpcServer.WithAddress(cfg.Server.GRPC.Host, cfg.Server.GRPC.Port),
		grpcServer.WithLogger(zapLogger),
		grpcServer.WithServiceName(cfg.Service.Name),
		grpcServer.WithHealthCheck(infra.Ping, 15*time.Second),
	)

	go func() {
		if err := grpcSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start gRPC server", zap.Error(err))
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down servers...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := grpcSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown gRPC server", zap.Error(err))
	}

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Servers shut down successfully")
}
