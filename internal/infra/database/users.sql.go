package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, is_active, created_at, updated_at, revision`

func scanUser(row scanner) (User, error) {
	var i User
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.IsActive, &i.CreatedAt, &i.UpdatedAt, &i.Revision)
	return i, err
}

const getUser = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUser, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

const listUsers = `
SELECT ` + userColumns + ` FROM users
WHERE ($1::boolean = FALSE OR is_active)
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

type ListUsersParams struct {
	ActiveOnly bool
	Limit      int32
	Offset     int32
}

func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers, arg.ActiveOnly, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countUsers = `SELECT COUNT(*) FROM users WHERE ($1::boolean = FALSE OR is_active)`

func (q *Queries) CountUsers(ctx context.Context, activeOnly bool) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUsers, activeOnly).Scan(&n)
	return n, err
}

const insertUser = `
INSERT INTO users (id, name, email, is_active, created_at, updated_at, revision)
VALUES ($1, $2, $3, $4, $5, $6, 1)
`

type InsertUserParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertUser, arg.ID, arg.Name, arg.Email, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
}

const updateUser = `
UPDATE users SET name = $3, email = $4, is_active = $5, updated_at = $6, revision = revision + 1
WHERE id = $1 AND revision = $2
`

type UpdateUserParams struct {
	ID        uuid.UUID
	Revision  int32
	Name      string
	Email     string
	IsActive  bool
	UpdatedAt sql.NullTime
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, updateUser, arg.ID, arg.Revision, arg.Name, arg.Email, arg.IsActive, arg.UpdatedAt)
}
