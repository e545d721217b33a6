package event

import (
	"context"
	"time"

	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/google/uuid"
)

// MessageHandler processes one broker message. A nil error acknowledges it.
type MessageHandler func(ctx context.Context, msg []byte, headers map[string]any) error

// Publisher sends an encoded event to the broker under topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte, headers map[string]string) error
}

// OutboxStore is what the relay needs of the outbox table.
type OutboxStore interface {
	Claim(ctx context.Context, limit int32) ([]database.OutboxRow, error)
	MarkPublished(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause error, giveUp bool) error
	ResetStuck(ctx context.Context, olderThan time.Time) (int64, error)
	DeletePublished(ctx context.Context, olderThan time.Time) (int64, error)
}

const (
	HeaderEventID      = "x-event-id"
	HeaderEventVersion = "x-event-version"
	HeaderAggregateID  = "x-aggregate-id"
)

var _ OutboxStore = (*database.PostgresOutbox)(nil)
