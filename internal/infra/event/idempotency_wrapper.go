package event

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
)

type IdempotencyStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// WrapIdempotency drops redeliveries of an event already handled by handlerName.
// The key is released when next fails, so a retry can run.
func WrapIdempotency(
	log logger.Logger,
	m metrics.Metrics,
	store IdempotencyStore,
	handlerName string,
	ttl time.Duration,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]any) error {
		var eventID string
		if v, ok := headers[HeaderEventID]; ok {
			eventID = fmt.Sprintf("%v", v)
		}
		if eventID == "" {
			hash := sha256.Sum256(msg)
			eventID = fmt.Sprintf("hash:%x", hash)
		}

		key := fmt.Sprintf("dedup:%s:%s", handlerName, eventID)
		saved, err := store.SetNX(ctx, key, "processing", ttl)
		if err != nil {
			// fail closed: duplicates are worse than a paused consumer
			log.Error(ctx, "idempotency store unavailable", logger.WithError(err))
			return fmt.Errorf("idempotency store unavailable: %w", err)
		}

		if !saved {
			m.IncDuplicateEvent(handlerName)
			log.Info(ctx, "duplicate event dropped",
				logger.String("handler", handlerName),
				logger.String("event_id", eventID),
			)
			return nil
		}

		err = next(ctx, msg, headers)
		if err != nil {
			log.Warn(ctx, "handler failed, releasing idempotency key",
				logger.String("key", key),
				logger.WithError(err),
			)
			if delErr := store.Del(context.WithoutCancel(ctx), key); delErr != nil {
				log.Error(ctx, "failed to release idempotency key",
					logger.String("key", key),
					logger.WithError(delErr),
				)
			}
		}
		return err
	}
}
