package event

import (
	"context"
	"time"

	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/sony/gobreaker"
)

// WrapResilientConsumer bounds each attempt by timeout and stops calling next while cb is open.
func WrapResilientConsumer(
	m metrics.Metrics,
	handlerName string,
	timeout time.Duration,
	cb *gobreaker.CircuitBreaker,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]any) error {
		start := time.Now()

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		_, err := cb.Execute(func() (any, error) {
			return nil, next(ctx, msg, headers)
		})
		m.RecordRequest(handlerName, err == nil, time.Since(start))
		return err
	}
}

// NewBreaker returns the breaker settings the consumers share.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}
