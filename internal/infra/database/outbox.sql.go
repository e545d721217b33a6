package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const saveOutboxEvent = `
INSERT INTO outbox_events (id, aggregate_id, event_type, event_version, payload, topic, status)
VALUES ($1, $2, $3, $4, $5, $6, 'PENDING')
`

type SaveOutboxEventParams struct {
	ID           uuid.UUID
	AggregateID  string
	EventType    string
	EventVersion int32
	Payload      []byte
	Topic        string
}

func (q *Queries) SaveOutboxEvent(ctx context.Context, arg SaveOutboxEventParams) error {
	_, err := q.db.ExecContext(ctx, saveOutboxEvent,
		arg.ID,
		arg.AggregateID,
		arg.EventType,
		arg.EventVersion,
		arg.Payload,
		arg.Topic,
	)
	return err
}

const fetchPendingOutboxEvents = `
SELECT id, aggregate_id, event_type, event_version, payload, topic, attempts
FROM outbox_events
WHERE status = 'PENDING'
ORDER BY created_at
LIMIT $1
FOR UPDATE SKIP LOCKED
`

type FetchPendingOutboxEventsRow struct {
	ID           uuid.UUID
	AggregateID  string
	EventType    string
	EventVersion int32
	Payload      []byte
	Topic        string
	Attempts     int32
}

func (q *Queries) FetchPendingOutboxEvents(ctx context.Context, limit int32) ([]FetchPendingOutboxEventsRow, error) {
	rows, err := q.db.QueryContext(ctx, fetchPendingOutboxEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FetchPendingOutboxEventsRow
	for rows.Next() {
		var i FetchPendingOutboxEventsRow
		if err := rows.Scan(
			&i.ID,
			&i.AggregateID,
			&i.EventType,
			&i.EventVersion,
			&i.Payload,
			&i.Topic,
			&i.Attempts,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxAsProcessing = `
UPDATE outbox_events SET status = 'PROCESSING', processed_at = NOW()
WHERE id = ANY($1::uuid[])
`

func (q *Queries) MarkOutboxAsProcessing(ctx context.Context, ids []uuid.UUID) error {
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	_, err := q.db.ExecContext(ctx, markOutboxAsProcessing, pq.Array(raw))
	return err
}

const markOutboxAsPublished = `
UPDATE outbox_events SET status = 'PUBLISHED', processed_at = NOW(), error_msg = NULL
WHERE id = $1
`

func (q *Queries) MarkOutboxAsPublished(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, markOutboxAsPublished, id)
	return err
}

const markOutboxAsFailed = `
UPDATE outbox_events
SET status = CASE WHEN $3 THEN 'FAILED' ELSE 'PENDING' END,
    error_msg = $2,
    attempts = attempts + 1
WHERE id = $1
`

type MarkOutboxAsFailedParams struct {
	ID       uuid.UUID
	ErrorMsg sql.NullString
	GiveUp   bool
}

// MarkOutboxAsFailed records the error and counts the attempt. The row returns to the
// pending pool unless GiveUp parks it as FAILED.
func (q *Queries) MarkOutboxAsFailed(ctx context.Context, arg MarkOutboxAsFailedParams) error {
	_, err := q.db.ExecContext(ctx, markOutboxAsFailed, arg.ID, arg.ErrorMsg, arg.GiveUp)
	return err
}

const resetStuckEvents = `
UPDATE outbox_events SET status = 'PENDING'
WHERE status = 'PROCESSING' AND processed_at < $1
`

func (q *Queries) ResetStuckEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, resetStuckEvents, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteOldOutboxEvents = `
DELETE FROM outbox_events
WHERE status = 'PUBLISHED' AND processed_at < $1
`

func (q *Queries) DeleteOldOutboxEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteOldOutboxEvents, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
