package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const productColumns = `id, name, description, price, currency, stock_quantity, is_active, created_by, created_at, updated_at, revision`

func scanProduct(row scanner) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Currency,
		&i.StockQuantity,
		&i.IsActive,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Revision,
	)
	return i, err
}

const getProduct = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	return scanProduct(q.db.QueryRowContext(ctx, getProduct, id))
}

// productFilter is shared by listProducts and countProducts ($1..$4).
const productFilter = `
WHERE ($1::boolean = FALSE OR (is_active AND stock_quantity > 0))
  AND ($2::numeric IS NULL OR price >= $2)
  AND ($3::numeric IS NULL OR price <= $3)
  AND ($4::text = '' OR name ILIKE '%' || $4 || '%')
`

const listProducts = `SELECT ` + productColumns + ` FROM products` + productFilter + `
ORDER BY created_at, id
LIMIT $5 OFFSET $6
`

type ListProductsParams struct {
	AvailableOnly bool
	MinPrice      sql.NullFloat64
	MaxPrice      sql.NullFloat64
	Name          string
	Limit         int32
	Offset        int32
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listProducts,
		arg.AvailableOnly, arg.MinPrice, arg.MaxPrice, arg.Name, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countProducts = `SELECT COUNT(*) FROM products` + productFilter

type CountProductsParams struct {
	AvailableOnly bool
	MinPrice      sql.NullFloat64
	MaxPrice      sql.NullFloat64
	Name          string
}

func (q *Queries) CountProducts(ctx context.Context, arg CountProductsParams) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countProducts, arg.AvailableOnly, arg.MinPrice, arg.MaxPrice, arg.Name).Scan(&n)
	return n, err
}

const insertProduct = `
INSERT INTO products (id, name, description, price, currency, stock_quantity, is_active, created_by, created_at, updated_at, revision)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1)
`

type InsertProductParams struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         float64
	Currency      string
	StockQuantity int32
	IsActive      bool
	CreatedBy     uuid.NullUUID
	CreatedAt     time.Time
	UpdatedAt     sql.NullTime
}

func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Currency,
		arg.StockQuantity,
		arg.IsActive,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
}

const updateProduct = `
UPDATE products
SET name = $3, description = $4, price = $5, currency = $6, stock_quantity = $7, is_active = $8,
    updated_at = $9, revision = revision + 1
WHERE id = $1 AND revision = $2
`

type UpdateProductParams struct {
	ID            uuid.UUID
	Revision      int32
	Name          string
	Description   string
	Price         float64
	Currency      string
	StockQuantity int32
	IsActive      bool
	UpdatedAt     sql.NullTime
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, updateProduct,
		arg.ID,
		arg.Revision,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Currency,
		arg.StockQuantity,
		arg.IsActive,
		arg.UpdatedAt,
	)
}
