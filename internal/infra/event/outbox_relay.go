package event

import (
	"context"
	"strconv"
	"time"

	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

type RelayConfig struct {
	BatchSize int32
	Workers   int
	Interval  time.Duration
	// rows stuck in PROCESSING longer than StuckAfter go back to PENDING
	StuckAfter time.Duration
	Retention  time.Duration
	// a row that failed MaxAttempts publishes is parked as FAILED
	MaxAttempts int32
}

func (c RelayConfig) withDefaults() RelayConfig {
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.Workers <= 0 {
		c.Workers = 10
	}
	if c.Interval <= 0 {
		c.Interval = 100 * time.Millisecond
	}
	if c.StuckAfter <= 0 {
		c.StuckAfter = 5 * time.Minute
	}
	if c.Retention <= 0 {
		c.Retention = 7 * 24 * time.Hour
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 10
	}
	return c
}

// OutboxRelay publishes committed outbox rows to the broker, at least once.
type OutboxRelay struct {
	store     OutboxStore
	publisher Publisher
	logger    logger.Logger
	metrics   metrics.Metrics
	cfg       RelayConfig
	now       func() time.Time
}

func NewOutboxRelay(store OutboxStore, pub Publisher, log logger.Logger, m metrics.Metrics, cfg RelayConfig) *OutboxRelay {
	return &OutboxRelay{
		store:     store,
		publisher: pub,
		logger:    log,
		metrics:   m,
		cfg:       cfg.withDefaults(),
		now:       time.Now,
	}
}

func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch claims one batch and publishes it with at most Workers in flight.
// It returns the number of rows claimed.
func (r *OutboxRelay) ProcessBatch(ctx context.Context) int {
	rows, err := r.store.Claim(ctx, r.cfg.BatchSize)
	if err != nil {
		r.logger.Error(ctx, "failed to claim outbox batch", logger.WithError(err))
		return 0
	}
	if len(rows) == 0 {
		return 0
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for _, row := range rows {
		g.Go(func() error {
			return r.publishOne(gCtx, row)
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Error(ctx, "outbox batch had errors", logger.WithError(err))
	}
	return len(rows)
}

func (r *OutboxRelay) publishOne(ctx context.Context, row database.OutboxRow) error {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.publisher.Publish(pubCtx, row.Topic, row.Payload, map[string]string{
		HeaderEventVersion: strconv.FormatInt(int64(row.EventVersion), 10),
		HeaderEventID:      row.ID.String(),
		HeaderAggregateID:  row.AggregateID,
	})

	// state updates must land even when the batch is being cancelled
	stateCtx := context.WithoutCancel(ctx)
	if err != nil {
		giveUp := row.Attempts+1 >= r.cfg.MaxAttempts
		fields := []logger.Field{
			logger.String("id", row.ID.String()),
			logger.String("event", row.EventType),
			logger.Int("attempt", int(row.Attempts)+1),
			logger.WithError(err),
		}
		if giveUp {
			r.metrics.IncOutboxEventsProcessed("dead")
			r.logger.Error(ctx, "giving up on outbox event", fields...)
		} else {
			r.metrics.IncOutboxEventsProcessed("failed")
			r.logger.Warn(ctx, "failed to publish outbox event", fields...)
		}
		return r.store.MarkFailed(stateCtx, row.ID, err, giveUp)
	}
	r.metrics.IncOutboxEventsProcessed("published")
	return r.store.MarkPublished(stateCtx, row.ID)
}

// RunRescuer periodically returns stuck rows to the pool and prunes old published ones.
func (r *OutboxRelay) RunRescuer(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Rescue(ctx)
		}
	}
}

func (r *OutboxRelay) Rescue(ctx context.Context) {
	now := r.now()
	if n, err := r.store.ResetStuck(ctx, now.Add(-r.cfg.StuckAfter)); err != nil {
		r.logger.Error(ctx, "failed to reset stuck outbox events", logger.WithError(err))
	} else if n > 0 {
		r.logger.Warn(ctx, "reset stuck outbox events", logger.Int64("count", n))
	}

	if _, err := r.store.DeletePublished(ctx, now.Add(-r.cfg.Retention)); err != nil {
		r.logger.Error(ctx, "outbox cleanup failed", logger.WithError(err))
	}
}
