package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// RecoveryInterceptor turns a handler panic into an Internal status.
func RecoveryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(ctx, "panic in rpc handler",
					logger.String("method", info.FullMethod),
					logger.String("panic", fmt.Sprint(r)),
					logger.String("stack", string(debug.Stack())),
				)
				err = apperr.Internal("panic", fmt.Errorf("%v", r))
			}
		}()
		return handler(ctx, req)
	}
}

// ErrorInterceptor logs unexpected failures with the method called, converts every error to a
// status and observes the call duration.
func ErrorInterceptor(log logger.Logger, m metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil && !apperr.IsExpected(err) && ctx.Err() == nil {
			log.Error(ctx, "rpc failed",
				logger.String("method", info.FullMethod),
				logger.WithError(err),
			)
		}
		err = toStatus(err)

		svc, method := splitMethod(info.FullMethod)
		m.ObserveGRPCRequestDuration(svc, method, status.Code(err).String(), time.Since(start).Seconds())
		return resp, err
	}
}

func splitMethod(fullMethod string) (string, string) {
	fullMethod = strings.TrimPrefix(fullMethod, "/")
	if i := strings.LastIndex(fullMethod, "/"); i >= 0 {
		return fullMethod[:i], fullMethod[i+1:]
	}
	return "unknown", fullMethod
}
