package interceptor

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type LoggingInterceptor struct {
	log *slog.Logger
}

func NewLoggingInterceptor(log *slog.Logger) *LoggingInterceptor {
	return &LoggingInterceptor{log: log}
}

// Unary returns a server interceptor that logs every unary RPC and turns a
// handler panic into codes.Internal.
func (i *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				i.log.Error("panic in gRPC handler", "method", info.FullMethod, "panic", r)
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
			code := status.Code(err)
			level := slog.LevelDebug
			if code != codes.OK {
				level = slog.LevelWarn
			}
			i.log.Log(ctx, level, "gRPC call", "method", info.FullMethod, "code", code.String(), "duration", time.Since(start))
		}()
		return handler(ctx, req)
	}
}
