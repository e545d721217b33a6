package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const customerColumns = `id, name, email, phone_number, is_active, created_at, updated_at, revision`

func scanCustomer(row scanner) (Customer, error) {
	var i Customer
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.PhoneNumber, &i.IsActive, &i.CreatedAt, &i.UpdatedAt, &i.Revision)
	return i, err
}

const getCustomer = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

func (q *Queries) GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error) {
	return scanCustomer(q.db.QueryRowContext(ctx, getCustomer, id))
}

const getCustomerByEmail = `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

func (q *Queries) GetCustomerByEmail(ctx context.Context, email string) (Customer, error) {
	return scanCustomer(q.db.QueryRowContext(ctx, getCustomerByEmail, email))
}

const listCustomers = `
SELECT ` + customerColumns + ` FROM customers
WHERE ($1::boolean = FALSE OR is_active)
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

type ListCustomersParams struct {
	ActiveOnly bool
	Limit      int32
	Offset     int32
}

func (q *Queries) ListCustomers(ctx context.Context, arg ListCustomersParams) ([]Customer, error) {
	rows, err := q.db.QueryContext(ctx, listCustomers, arg.ActiveOnly, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Customer
	for rows.Next() {
		i, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countCustomers = `SELECT COUNT(*) FROM customers WHERE ($1::boolean = FALSE OR is_active)`

func (q *Queries) CountCustomers(ctx context.Context, activeOnly bool) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countCustomers, activeOnly).Scan(&n)
	return n, err
}

const insertCustomer = `
INSERT INTO customers (id, name, email, phone_number, is_active, created_at, updated_at, revision)
VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
`

type InsertCustomerParams struct {
	ID          uuid.UUID
	Name        string
	Email       string
	PhoneNumber sql.NullString
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
}

func (q *Queries) InsertCustomer(ctx context.Context, arg InsertCustomerParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertCustomer,
		arg.ID, arg.Name, arg.Email, arg.PhoneNumber, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
}

const updateCustomer = `
UPDATE customers
SET name = $3, email = $4, phone_number = $5, is_active = $6, updated_at = $7, revision = revision + 1
WHERE id = $1 AND revision = $2
`

type UpdateCustomerParams struct {
	ID          uuid.UUID
	Revision    int32
	Name        string
	Email       string
	PhoneNumber sql.NullString
	IsActive    bool
	UpdatedAt   sql.NullTime
}

func (q *Queries) UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, updateCustomer,
		arg.ID, arg.Revision, arg.Name, arg.Email, arg.PhoneNumber, arg.IsActive, arg.UpdatedAt)
}
