package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const estruturaColumns = `id, name, description, type_code, external_code, valid_from, valid_until, version, status, created_at, updated_at, revision`

func scanEstrutura(row scanner) (Estrutura, error) {
	var i Estrutura
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.TypeCode,
		&i.ExternalCode,
		&i.ValidFrom,
		&i.ValidUntil,
		&i.Version,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Revision,
	)
	return i, err
}

const getEstrutura = `SELECT ` + estruturaColumns + ` FROM estruturas WHERE id = $1`

func (q *Queries) GetEstrutura(ctx context.Context, id uuid.UUID) (Estrutura, error) {
	return scanEstrutura(q.db.QueryRowContext(ctx, getEstrutura, id))
}

const listEstruturas = `
SELECT ` + estruturaColumns + ` FROM estruturas
WHERE ($1::smallint = 0 OR status = $1)
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

// ListEstruturasParams.Status zero means any status.
type ListEstruturasParams struct {
	Status int16
	Limit  int32
	Offset int32
}

func (q *Queries) ListEstruturas(ctx context.Context, arg ListEstruturasParams) ([]Estrutura, error) {
	rows, err := q.db.QueryContext(ctx, listEstruturas, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Estrutura
	for rows.Next() {
		i, err := scanEstrutura(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countEstruturas = `SELECT COUNT(*) FROM estruturas WHERE ($1::smallint = 0 OR status = $1)`

func (q *Queries) CountEstruturas(ctx context.Context, status int16) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countEstruturas, status).Scan(&n)
	return n, err
}

const insertEstrutura = `
INSERT INTO estruturas (id, name, description, type_code, external_code, valid_from, valid_until, version, status, created_at, updated_at, revision)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)
`

type InsertEstruturaParams struct {
	ID           uuid.UUID
	Name         string
	Description  sql.NullString
	TypeCode     int64
	ExternalCode string
	ValidFrom    time.Time
	ValidUntil   time.Time
	Version      int32
	Status       int16
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (q *Queries) InsertEstrutura(ctx context.Context, arg InsertEstruturaParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertEstrutura,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.TypeCode,
		arg.ExternalCode,
		arg.ValidFrom,
		arg.ValidUntil,
		arg.Version,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
}

const updateEstrutura = `
UPDATE estruturas
SET name = $3, description = $4, type_code = $5, external_code = $6, valid_from = $7, valid_until = $8,
    version = $9, status = $10, updated_at = $11, revision = revision + 1
WHERE id = $1 AND revision = $2
`

type UpdateEstruturaParams struct {
	ID           uuid.UUID
	Revision     int32
	Name         string
	Description  sql.NullString
	TypeCode     int64
	ExternalCode string
	ValidFrom    time.Time
	ValidUntil   time.Time
	Version      int32
	Status       int16
	UpdatedAt    sql.NullTime
}

func (q *Queries) UpdateEstrutura(ctx context.Context, arg UpdateEstruturaParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, updateEstrutura,
		arg.ID,
		arg.Revision,
		arg.Name,
		arg.Description,
		arg.TypeCode,
		arg.ExternalCode,
		arg.ValidFrom,
		arg.ValidUntil,
		arg.Version,
		arg.Status,
		arg.UpdatedAt,
	)
}

const deleteEstrutura = `DELETE FROM estruturas WHERE id = $1 AND revision = $2`

func (q *Queries) DeleteEstrutura(ctx context.Context, id uuid.UUID, revision int32) (sql.Result, error) {
	return q.db.ExecContext(ctx, deleteEstrutura, id, revision)
}
