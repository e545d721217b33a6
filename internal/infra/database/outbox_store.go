package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// OutboxRow is an outbox event claimed for publishing.
type OutboxRow = FetchPendingOutboxEventsRow

// PostgresOutbox is the relay's view of the outbox_events table.
type PostgresOutbox struct {
	conn *sql.DB
	q    *Queries
}

func NewPostgresOutbox(conn *sql.DB) *PostgresOutbox {
	return &PostgresOutbox{conn: conn, q: New(conn)}
}

// Claim moves up to limit pending rows to PROCESSING in one short transaction, so
// concurrent relays never publish the same row.
func (o *PostgresOutbox) Claim(ctx context.Context, limit int32) ([]OutboxRow, error) {
	tx, err := o.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := o.q.WithTx(tx)
	rows, err := qtx.FetchPendingOutboxEvents(ctx, limit)
	if err != nil || len(rows) == 0 {
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	if err := qtx.MarkOutboxAsProcessing(ctx, ids); err != nil {
		return nil, err
	}
	return rows, tx.Commit()
}

func (o *PostgresOutbox) MarkPublished(ctx context.Context, id uuid.UUID) error {
	return o.q.MarkOutboxAsPublished(ctx, id)
}

// MarkFailed returns the row to PENDING, or parks it as FAILED when giveUp is set.
func (o *PostgresOutbox) MarkFailed(ctx context.Context, id uuid.UUID, cause error, giveUp bool) error {
	return o.q.MarkOutboxAsFailed(ctx, MarkOutboxAsFailedParams{
		ID:       id,
		ErrorMsg: sql.NullString{String: cause.Error(), Valid: true},
		GiveUp:   giveUp,
	})
}

func (o *PostgresOutbox) ResetStuck(ctx context.Context, olderThan time.Time) (int64, error) {
	return o.q.ResetStuckEvents(ctx, olderThan)
}

func (o *PostgresOutbox) DeletePublished(ctx context.Context, olderThan time.Time) (int64, error) {
	return o.q.DeleteOldOutboxEvents(ctx, olderThan)
}
