package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt sql.NullTime
	Revision  int32
}

type Product struct {
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
	Revision      int32
}

type Customer struct {
	ID          uuid.UUID
	Name        string
	Email       string
	PhoneNumber sql.NullString
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
	Revision    int32
}

type Estrutura struct {
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
	Revision     int32
}

type scanner interface {
	Scan(dest ...any) error
}
