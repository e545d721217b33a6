// Package client holds the RPC clients one slice uses to reach another. Every call runs
// under a timeout and a circuit breaker, and every failure comes back in the apperr taxonomy.
package client

import (
	"context"
	"errors"
	"time"

	"github.com/DioGolang/GoSlices/internal/infra/grpc/pb"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const DefaultTimeout = 5 * time.Second

// Dial opens a lazily connecting client connection that speaks the JSON codec.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(pb.ContentSubtype)),
	}, opts...)
	return grpc.NewClient(target, opts...)
}

// caller runs the calls of one remote module.
type caller struct {
	module  string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker
	log     logger.Logger
	metrics metrics.Metrics
}

func newCaller(module string, timeout time.Duration, log logger.Logger, m metrics.Metrics) *caller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &caller{
		module:  module,
		timeout: timeout,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        module + "-rpc",
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// answers such as NotFound or InvalidArgument prove the remote is healthy
			IsSuccessful: func(err error) bool {
				return err == nil || !transportFault(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn(context.Background(), "circuit breaker state changed",
					logger.String("breaker", name),
					logger.String("from", from.String()),
					logger.String("to", to.String()),
				)
			},
		}),
		log:     log,
		metrics: m,
	}
}

func transportFault(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Internal, codes.Unknown,
		codes.ResourceExhausted, codes.Unimplemented:
		return true
	default:
		return false
	}
}

func call[T any](ctx context.Context, c *caller, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.cb.Execute(func() (any, error) {
		return fn(callCtx)
	})
	if err != nil {
		err = c.translate(ctx, op, err)
		c.metrics.RecordRPCClientCall(c.module, op, outcome(err))
		return zero, err
	}
	c.metrics.RecordRPCClientCall(c.module, op, "ok")
	return res.(T), nil
}

// translate maps a transport error onto the caller's taxonomy. Only faults of the
// transport become DependencyUnavailable; the remote's own answers keep their meaning.
func (c *caller) translate(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.log.Error(ctx, "rpc short-circuited",
			logger.String("module", c.module),
			logger.String("op", op),
			logger.WithError(err),
		)
		return apperr.Unavailable(c.module, op, err)
	}

	st := status.Convert(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return apperr.Validation(apperr.Violation{Message: st.Message()})
	case codes.NotFound:
		return &apperr.Error{Kind: apperr.KindNotFound, Entity: c.module, Message: st.Message()}
	case codes.AlreadyExists, codes.FailedPrecondition:
		return apperr.Conflict(c.module, st.Message())
	}
	c.log.Error(ctx, "rpc failed",
		logger.String("module", c.module),
		logger.String("op", op),
		logger.String("code", st.Code().String()),
		logger.WithError(err),
	)
	return apperr.Unavailable(c.module, op, err)
}

func outcome(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return "invalid"
	case apperr.KindNotFound:
		return "not_found"
	case apperr.KindConflict:
		return "conflict"
	default:
		return "unavailable"
	}
}
