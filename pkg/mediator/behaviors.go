package mediator

import (
	"context"
	"errors"
	"time"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/DioGolang/GoSlices/pkg/validation"
)

// ValidationBehavior runs the rules bound to the request type and never reaches the
// handler when one of them fails.
type ValidationBehavior struct {
	Validator *validation.Validator
}

func NewValidationBehavior(v *validation.Validator) *ValidationBehavior {
	return &ValidationBehavior{Validator: v}
}

func (b *ValidationBehavior) Handle(ctx context.Context, req any, next Next) (any, error) {
	if err := b.Validator.Check(req); err != nil {
		return nil, err
	}
	return next(ctx)
}

// LoggingBehavior observes the invocation. It returns exactly what the inner chain returned.
type LoggingBehavior struct {
	Logger logger.Logger
}

func NewLoggingBehavior(l logger.Logger) *LoggingBehavior {
	return &LoggingBehavior{Logger: l}
}

func (b *LoggingBehavior) Handle(ctx context.Context, req any, next Next) (any, error) {
	name := NameOf(req)
	start := time.Now()
	b.Logger.Debug(ctx, "handling request", logger.String("request", name))

	out, err := next(ctx)

	fields := []logger.Field{
		logger.String("request", name),
		logger.Duration("latency", time.Since(start)),
	}
	switch {
	case err == nil:
		b.Logger.Info(ctx, "request handled", fields...)
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		b.Logger.Info(ctx, "request cancelled", append(fields, logger.WithError(err))...)
	case apperr.IsExpected(err):
		b.Logger.Info(ctx, "request rejected",
			append(fields, logger.String("kind", apperr.KindOf(err).String()), logger.WithError(err))...)
	default:
		b.Logger.Error(ctx, "request failed",
			append(fields, logger.String("kind", apperr.KindOf(err).String()), logger.WithError(err))...)
	}
	return out, err
}

type MetricsBehavior struct {
	Metrics metrics.Metrics
}

func NewMetricsBehavior(m metrics.Metrics) *MetricsBehavior {
	return &MetricsBehavior{Metrics: m}
}

func (b *MetricsBehavior) Handle(ctx context.Context, req any, next Next) (any, error) {
	start := time.Now()
	out, err := next(ctx)
	b.Metrics.RecordRequest(NameOf(req), err == nil, time.Since(start))
	return out, err
}
