package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/JivitSolutions/JivIT-Solutions/pkg/logger"
)

const (
	defaultCheckInterval = 15 * time.Second
	checkTimeout         = 2 * time.Second
)

// Server exposes grpc.health.v1.Health for the CMS process.
type Server struct {
	grpcServer  *grpc.Server
	health      *health.Server
	logger      *zap.Logger
	host        string
	port        int
	serviceName string
	check       func(ctx context.Context) error
	interval    time.Duration

	// ctx scopes the health watcher; Shutdown cancels it.
	ctx    context.Context
	cancel context.CancelFunc
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

// WithServiceName registers name next to the overall "" service.
func WithServiceName(name string) ServerOption {
	return func(s *Server) {
		s.serviceName = name
	}
}

// WithHealthCheck reports NOT_SERVING whenever check fails. check runs
// every interval while the server is up.
func WithHealthCheck(check func(ctx context.Context) error, interval time.Duration) ServerOption {
	return func(s *Server) {
		s.check = check
		if interval > 0 {
			s.interval = interval
		}
	}
}

// NewServer creates the gRPC server
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		logger:   zap.NewNop(),
		port:     9090,
		interval: defaultCheckInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.grpcServer = grpc.NewServer(
		grpc.UnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(s.logger)),
		grpc.StreamInterceptor(logger.NewGrpcStreamServerInterceptor(s.logger)),
	)

	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.health = health.NewServer()
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.setStatus(healthpb.HealthCheckResponse_SERVING)

	reflection.Register(s.grpcServer)

	return s
}

func (s *Server) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	if s.serviceName != "" {
		s.health.SetServingStatus(s.serviceName, status)
	}
}

// CheckNow runs the health check once and publishes the result.
func (s *Server) CheckNow(ctx context.Context) {
	if s.check == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if err := s.check(ctx); err != nil {
		s.logger.Warn("Health check failed", zap.Error(err))
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckNow(ctx)
		}
	}
}

// Start listens on the configured address and blocks until stopped.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.logger.Info("Starting gRPC server", zap.String("addr", addr))
	return s.Serve(lis)
}

// Serve runs the server on lis.
func (s *Server) Serve(lis net.Listener) error {
	s.CheckNow(s.ctx)
	if s.check != nil {
		go s.watch(s.ctx)
	}
	return s.grpcServer.Serve(lis)
}

// Shutdown stops gracefully, or forcibly once ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down gRPC server")
	s.cancel()
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.logger.Warn("Forcing gRPC server stop")
		s.grpcServer.Stop()
		return ctx.Err()
	case <-stopped:
		return nil
	}
}
