package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"surfjobs-backend/internal/api/grpc/interceptor"
)

// ServiceName is the health service name clients may ask about besides "".
const ServiceName = "surfjobs.applications"

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer answers grpc.health.v1.Health/Check from a database ping.
type HealthServer struct {
	healthpb.UnimplementedHealthServer
	db      Pinger
	timeout time.Duration
	log     *slog.Logger
}

func NewHealthServer(db Pinger, log *slog.Logger) *HealthServer {
	return &HealthServer{db: db, timeout: 2 * time.Second, log: log}
}

func (s *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.db.Ping(ctx); err != nil {
		s.log.Warn("health check failed", "error", err)
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

// NewServer builds the gRPC server with health and reflection registered.
func NewServer(db Pinger, log *slog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor.NewLoggingInterceptor(log).Unary()),
	)
	healthpb.RegisterHealthServer(s, NewHealthServer(db, log))

	// Register reflection service for grpcurl
	reflection.Register(s)
	return s
}
