package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EventsExchange is the topic exchange the outbox relay publishes to; the routing key is the event name.
const EventsExchange = "domain.events"

// Migrate applies every embedded schema file in name order. The files are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		body, err := schemaFS.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
	}
	return nil
}

// Postgres is the lib/pq backend of the unit of work.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Handle() DBTX { return p.db }

func (p *Postgres) Begin(ctx context.Context) (Tx[DBTX], error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx}, nil
}

func (p *Postgres) AppendOutbox(ctx context.Context, h DBTX, evts []events.Event) error {
	q := New(h)
	for _, e := range evts {
		payload, err := events.Encode(e)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(e.EventID())
		if err != nil {
			return fmt.Errorf("event %s: %w", e.EventName(), err)
		}
		if err := q.SaveOutboxEvent(ctx, SaveOutboxEventParams{
			ID:           id,
			AggregateID:  e.AggregateID(),
			EventType:    e.EventName(),
			EventVersion: 1,
			Payload:      payload,
			Topic:        e.EventName(),
		}); err != nil {
			return err
		}
	}
	return nil
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Handle() DBTX    { return t.tx }
func (t sqlTx) Commit() error   { return t.tx.Commit() }
func (t sqlTx) Rollback() error { return t.tx.Rollback() }

const uniqueViolation = "23505"

// translate maps driver errors onto the application taxonomy.
func translate(entityName string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperr.Conflict(entityName, entityName+" already exists")
	}
	return err
}

// expectOne turns a version-checked write that touched nothing into a ConflictError.
func expectOne(entityName string, res sql.Result, err error) error {
	if err != nil {
		return translate(entityName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return apperr.Conflict(entityName, entityName+" was modified concurrently")
	}
	return nil
}
