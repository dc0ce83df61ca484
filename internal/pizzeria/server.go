package pizzeria

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// RegisterFunc registers gRPC services on a server.
type RegisterFunc func(*grpc.Server)

// ServerConfig configures a gRPC server.
type ServerConfig struct {
	Name string
	Port string
}

// NewServer builds a gRPC server with the health service registered and set
// to SERVING, then lets register attach the application services.
func NewServer(register RegisterFunc) *grpc.Server {
	s := grpc.NewServer()
	register(s)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return s
}

// RunServer starts a gRPC server with health checks and blocks until ctx is
// cancelled or the server fails.
func RunServer(ctx context.Context, cfg ServerConfig, logger *zap.Logger, register RegisterFunc) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	s := NewServer(register)

	logger.Info("grpc server started",
		zap.String("name", cfg.Name),
		zap.String("port", cfg.Port),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("grpc server stopping", zap.String("name", cfg.Name))
		s.GracefulStop()
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	}
}
